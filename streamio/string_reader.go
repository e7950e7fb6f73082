package streamio

import (
	"context"
	"io"
)

// StringReader reads the bytes of a string.
type StringReader struct {
	data []byte
	off  int
}

func NewStringReader(s string) *StringReader {
	return &StringReader{data: []byte(s)}
}

func (r *StringReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

func (r *StringReader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.Read(p)
}

// Len is the number of bytes not yet read.
func (r *StringReader) Len() int {
	return len(r.data) - r.off
}

// Size is the length of the whole string.
func (r *StringReader) Size() int {
	return len(r.data)
}
