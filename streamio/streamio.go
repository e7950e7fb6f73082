// Package streamio moves bytes between readers and writers.
//
// Two families of endpoints are supported. The synchronous ones are plain
// io.Reader and io.Writer. The suspending ones, Reader and Writer, take a
// context on every call; the context is the only place an operation may
// suspend or be abandoned.
//
// Every implementation follows the same rules: a call returns
// 0 <= n <= len(p); (0, nil) means nothing happened and is not the end of
// the stream; the end of the stream is io.EOF; p is not retained after the
// call returns; a write that accepts fewer than len(p) bytes returns an
// error.
package streamio

import (
	"context"
	"io"
)

// DefaultBufSize is the staging buffer size of Copy and Iterate.
const DefaultBufSize = 32 * 1024

type Reader interface {
	ReadContext(ctx context.Context, p []byte) (int, error)
}

type Writer interface {
	WriteContext(ctx context.Context, p []byte) (int, error)
}

type ReaderSync = io.Reader

type WriterSync = io.Writer

// FromReader adapts r to Reader. If r already is a Reader it is returned
// as is.
func FromReader(r io.Reader) Reader {
	if rc, ok := r.(Reader); ok {
		return rc
	}
	return syncReader{r}
}

// FromWriter adapts w to Writer. If w already is a Writer it is returned
// as is.
func FromWriter(w io.Writer) Writer {
	if wc, ok := w.(Writer); ok {
		return wc
	}
	return syncWriter{w}
}

type syncReader struct {
	r io.Reader
}

func (s syncReader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.r.Read(p)
}

type syncWriter struct {
	w io.Writer
}

func (s syncWriter) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.w.Write(p)
}
