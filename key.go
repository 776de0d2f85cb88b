package xorbreak

// DeriveKey recovers keyLen key bytes from a known plaintext prefix that
// starts at cipher offset 0. The alignment is not verified.
func DeriveKey(cipher, prefix []byte, keyLen int) ([]byte, error) {
	if keyLen <= 0 {
		return nil, invalidKeyLength(keyLen)
	}
	if len(prefix) < keyLen {
		return nil, &PrefixLengthError{Have: len(prefix), Need: keyLen}
	}
	if len(cipher) < keyLen {
		return nil, ErrShortCipher
	}
	key := make([]byte, keyLen)
	for i := range key {
		key[i] = prefix[i] ^ cipher[i]
	}
	return key, nil
}
