package xorbreak

import "io"

// KeyStream applies a repeating key to consecutive chunks of a stream.
type KeyStream struct {
	key   []byte
	index int
}

// NewKeyStream panics if key is empty.
func NewKeyStream(key []byte) *KeyStream {
	if len(key) == 0 {
		panic("xorbreak: empty key")
	}
	return &KeyStream{key: key}
}

func (k *KeyStream) Reset() {
	k.index = 0
}

// Apply XORs data in place, continuing where the previous call stopped.
func (k *KeyStream) Apply(data []byte) {
	for i, it := range data {
		data[i] = it ^ k.key[k.index]
		k.index = (k.index + 1) % len(k.key)
	}
}

type streamWriter struct {
	w   io.Writer
	k   *KeyStream
	buf []byte
}

// NewWriter encrypts everything written to it with key before passing it on
// to out. The caller's buffers are left untouched.
func NewWriter(out io.Writer, key []byte) io.Writer {
	return &streamWriter{
		w: out,
		k: NewKeyStream(key),
	}
}

func (w *streamWriter) Write(data []byte) (int, error) {
	w.buf = append(w.buf[:0], data...)
	w.k.Apply(w.buf)
	return w.w.Write(w.buf)
}

type streamReader struct {
	r io.Reader
	k *KeyStream
}

// NewReader decrypts everything read from in with key.
func NewReader(in io.Reader, key []byte) io.Reader {
	return &streamReader{
		r: in,
		k: NewKeyStream(key),
	}
}

func (r *streamReader) Read(data []byte) (int, error) {
	n, err := r.r.Read(data)
	if n > 0 {
		r.k.Apply(data[:n])
	}
	return n, err
}
