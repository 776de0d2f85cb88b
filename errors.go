package xorbreak

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKeyLength         = errors.New("key length must be positive")
	ErrInsufficientPrefixLength = errors.New("plaintext prefix is shorter than the key")
	ErrShortCipher              = errors.New("cipher is shorter than the key")
	ErrEmptyCipher              = errors.New("cipher is empty")
	ErrUnknownAlphabet          = errors.New("unknown alphabet")
)

// PrefixLengthError reports a known plaintext prefix too short to derive
// every key byte. It matches ErrInsufficientPrefixLength.
type PrefixLengthError struct {
	Have, Need int
}

func (e *PrefixLengthError) Error() string {
	return fmt.Sprintf("plaintext prefix must be at least %d bytes long (got %d)", e.Need, e.Have)
}

func (e *PrefixLengthError) Is(target error) bool {
	return target == ErrInsufficientPrefixLength
}

func invalidKeyLength(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidKeyLength, n)
}
