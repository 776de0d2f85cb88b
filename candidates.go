package xorbreak

// Candidates holds, for every key position, the key bytes that are still
// plausible in ascending order.
type Candidates [][]byte

// FindCandidates tries all 256 key bytes for each of the keyLen positions
// and keeps those that decrypt every cipher byte at that position (stride
// keyLen) into something plausible. A nil predicate means Readable.
//
// A position without any cipher bytes keeps all 256 values. A position
// where nothing survives gets an empty set.
func FindCandidates(cipher []byte, keyLen int, plausible Predicate) (Candidates, error) {
	if keyLen <= 0 {
		return nil, invalidKeyLength(keyLen)
	}
	if plausible == nil {
		plausible = Readable
	}
	res := make(Candidates, keyLen)
	for pos := range res {
		res[pos] = make([]byte, 0, 256)
		// Use an integer as the loop variable to avoid overflow.
		for k := 0; k <= 0xff; k++ {
			if readableAt(cipher, pos, keyLen, byte(k), plausible) {
				res[pos] = append(res[pos], byte(k))
			}
		}
	}
	return res, nil
}

// readableAt is vacuously true when pos is past the end of cipher.
func readableAt(cipher []byte, pos, keyLen int, k byte, plausible Predicate) bool {
	for i := pos; i < len(cipher); i += keyLen {
		if !plausible(cipher[i] ^ k) {
			return false
		}
	}
	return true
}

// Counts returns the number of candidates at each position.
func (c Candidates) Counts() []int {
	res := make([]int, len(c))
	for i, it := range c {
		res[i] = len(it)
	}
	return res
}

// Key returns the key when every position is down to a single candidate.
func (c Candidates) Key() ([]byte, bool) {
	if len(c) == 0 {
		return nil, false
	}
	key := make([]byte, len(c))
	for i, it := range c {
		if len(it) != 1 {
			return nil, false
		}
		key[i] = it[0]
	}
	return key, true
}
