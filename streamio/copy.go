package streamio

import (
	"context"
	"io"
	"sync"
)

var bufPool *sync.Pool

func init() {
	bufPool = &sync.Pool{
		New: func() interface{} {
			buf := make([]byte, DefaultBufSize)
			return &buf
		},
	}
}

type copyOptions struct {
	size    int64
	hasSize bool
	buf     []byte
}

type CopyOption func(*copyOptions)

// WithSize makes the copy read at most n bytes and fail with io.EOF if the
// source ends before n bytes were written.
func WithSize(n int64) CopyOption {
	return func(o *copyOptions) {
		o.size = n
		o.hasSize = true
	}
}

// WithBuffer stages the copy through buf instead of an internal buffer.
// An empty buf is ignored.
func WithBuffer(buf []byte) CopyOption {
	return func(o *copyOptions) {
		if len(buf) > 0 {
			o.buf = buf
		}
	}
}

func newCopyOptions(opts []CopyOption) *copyOptions {
	o := &copyOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Copy copies from src to dst until io.EOF and returns the number of bytes
// written. Reaching io.EOF is not an error, except when WithSize was given
// and fewer bytes arrived: then Copy returns (0, io.EOF) and the partial
// data is only visible in dst. Any other read or write error is returned
// together with the bytes written so far.
func Copy(ctx context.Context, dst Writer, src Reader, opts ...CopyOption) (int64, error) {
	o := newCopyOptions(opts)
	if o.hasSize {
		src = NewLimitedReader(src, o.size)
	}
	return o.run(src,
		func(p []byte) (int, error) { return src.ReadContext(ctx, p) },
		func(p []byte) (int, error) { return dst.WriteContext(ctx, p) },
	)
}

// CopySync is Copy for io.Reader and io.Writer.
func CopySync(dst io.Writer, src io.Reader, opts ...CopyOption) (int64, error) {
	o := newCopyOptions(opts)
	if o.hasSize {
		src = NewLimitedReaderSync(src, o.size)
	}
	return o.run(src, src.Read, dst.Write)
}

func (o *copyOptions) run(src any, read, write func([]byte) (int, error)) (int64, error) {
	buf := o.buf
	if buf == nil {
		if l, ok := remaining(src); ok && l < DefaultBufSize {
			buf = make([]byte, max(1, l))
		} else {
			p := bufPool.Get().(*[]byte)
			defer bufPool.Put(p)
			buf = *p
		}
	}

	var written int64
	for {
		nr, rerr := read(buf)
		if nr > 0 {
			nw, werr := write(buf[:nr])
			if nw < 0 || nw > nr {
				nw = 0
				if werr == nil {
					werr = io.ErrShortWrite
				}
			}
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, rerr
		}
	}

	if o.hasSize && written < o.size {
		return 0, io.EOF
	}
	return written, nil
}
