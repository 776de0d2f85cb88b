package main

import (
	"encoding/hex"
	"fmt"
	"io"
)

type report struct {
	w io.Writer
}

func (r report) header(cipherLen, keyLen int) {
	fmt.Fprintf(r.w, "cipher length: %d\n", cipherLen)
	fmt.Fprintf(r.w, "key length: %d\n", keyLen)
}

func (r report) counts(counts []int) {
	for i, n := range counts {
		fmt.Fprintf(r.w, "possible keys at %d: %d\n", i, n)
	}
}

func (r report) partial(plain []byte) {
	fmt.Fprintln(r.w, "partly decrypted message:")
	fmt.Fprintf(r.w, "%s\n", plain)
}

func (r report) hint(exe string) {
	fmt.Fprintln(r.w, "give me the beginning of the plain text as an argument, like this:")
	fmt.Fprintf(r.w, "  %s \"hello world\"\n", exe)
}

func (r report) resolved() {
	fmt.Fprintln(r.w, "every key position has a single candidate")
}

func (r report) key(key, plain []byte) {
	fmt.Fprintf(r.w, "key: %s\n", hex.EncodeToString(key))
	fmt.Fprintf(r.w, "key as string: %s\n", key)
	fmt.Fprintln(r.w, "cipher decrypted with key:")
	fmt.Fprintf(r.w, "%s\n", plain)
}
