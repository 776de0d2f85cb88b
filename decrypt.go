package xorbreak

// DefaultPlaceholder marks plaintext bytes whose key byte is not known yet.
const DefaultPlaceholder = '_'

// DecryptPartial decrypts the bytes whose key position has exactly one
// candidate and writes placeholder for all others.
func DecryptPartial(cipher []byte, c Candidates, placeholder byte) []byte {
	out := make([]byte, len(cipher))
	for i := range cipher {
		if len(c) == 0 {
			out[i] = placeholder
			continue
		}
		if it := c[i%len(c)]; len(it) == 1 {
			out[i] = cipher[i] ^ it[0]
		} else {
			out[i] = placeholder
		}
	}
	return out
}

// Decrypt applies the repeating key to cipher. Since XOR is its own
// inverse, Decrypt also encrypts. It panics if key is empty.
func Decrypt(cipher, key []byte) []byte {
	if len(key) == 0 {
		panic("xorbreak: empty key")
	}
	out := make([]byte, len(cipher))
	for i := range cipher {
		out[i] = cipher[i] ^ key[i%len(key)]
	}
	return out
}
