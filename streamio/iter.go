package streamio

import (
	"context"
	"io"
	"iter"
)

// Iterator turns a reader into a sequence of chunks. All chunks share one
// scratch buffer: a chunk is overwritten when the next one is produced, so
// copy it to keep it.
type Iterator struct {
	read func([]byte) (int, error)
	buf  []byte
	err  error
	done bool
}

// Iterate reads r in chunks of at most bufSize bytes. bufSize <= 0 selects
// DefaultBufSize.
func Iterate(ctx context.Context, r Reader, bufSize int) *Iterator {
	return newIterator(func(p []byte) (int, error) { return r.ReadContext(ctx, p) }, bufSize)
}

func IterateSync(r io.Reader, bufSize int) *Iterator {
	return newIterator(r.Read, bufSize)
}

func newIterator(read func([]byte) (int, error), bufSize int) *Iterator {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}
	return &Iterator{
		read: read,
		buf:  make([]byte, bufSize),
	}
}

// All yields the chunks. It ends at io.EOF or at the first other error,
// which is kept in Err. The sequence can be ranged over once.
func (it *Iterator) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if it.done {
			return
		}
		it.done = true
		for {
			n, err := it.read(it.buf)
			if n > 0 && !yield(it.buf[:n]) {
				return
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				it.err = err
				return
			}
		}
	}
}

// Err returns the first error other than io.EOF met by All.
func (it *Iterator) Err() error {
	return it.err
}
