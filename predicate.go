package xorbreak

import (
	"fmt"
	"strings"
)

// Predicate reports whether a decrypted byte looks like plaintext.
type Predicate func(b byte) bool

// Readable accepts ASCII letters and the space character.
func Readable(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == ' '
}

// Printable accepts printable ASCII and the common whitespace controls.
func Printable(b byte) bool {
	return 0x20 <= b && b <= 0x7e || b == '\t' || b == '\n' || b == '\r'
}

// Alphabet accepts exactly the bytes of chars.
func Alphabet(chars string) Predicate {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return func(b byte) bool {
		return set[b]
	}
}

// ParsePredicate resolves an alphabet name: "readable", "printable", or
// "=<chars>" for a literal set of bytes.
func ParsePredicate(name string) (Predicate, error) {
	switch name {
	case "", "readable":
		return Readable, nil
	case "printable":
		return Printable, nil
	}
	if chars, ok := strings.CutPrefix(name, "="); ok && len(chars) > 0 {
		return Alphabet(chars), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}
