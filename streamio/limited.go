package streamio

import (
	"context"
	"io"
)

// LimitedReader reads from R but stops with io.EOF after N bytes.
// N <= 0 reports io.EOF without calling R, so a negative limit ends the
// stream on the first call.
type LimitedReader struct {
	R Reader
	N int64
}

func NewLimitedReader(r Reader, n int64) *LimitedReader {
	return &LimitedReader{R: r, N: n}
}

func (l *LimitedReader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.R.ReadContext(ctx, p)
	l.N -= int64(n)
	return n, err
}

func (l *LimitedReader) Remaining() int64 {
	return l.N
}

// LimitedReaderSync is the io.Reader form of LimitedReader.
type LimitedReaderSync struct {
	R io.Reader
	N int64
}

func NewLimitedReaderSync(r io.Reader, n int64) *LimitedReaderSync {
	return &LimitedReaderSync{R: r, N: n}
}

func (l *LimitedReaderSync) Read(p []byte) (int, error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.R.Read(p)
	l.N -= int64(n)
	return n, err
}

func (l *LimitedReaderSync) Remaining() int64 {
	return l.N
}

// remaining reports how many bytes a limited reader will still produce.
func remaining(r any) (int64, bool) {
	switch l := r.(type) {
	case interface{ Remaining() int64 }:
		return l.Remaining(), true
	case *io.LimitedReader:
		return l.N, true
	}
	return 0, false
}
