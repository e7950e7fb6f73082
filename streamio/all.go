package streamio

import (
	"context"
	"io"

	"github.com/zzzzer91/bytekit/util/buffer"
)

// maxZeroWrites bounds how many times WriteAll retries a writer that
// accepts nothing.
const maxZeroWrites = 16

// ReadAll reads r until io.EOF and returns the data.
func ReadAll(ctx context.Context, r Reader) ([]byte, error) {
	var b buffer.Buffer
	p := make([]byte, buffer.MinRead)
	for {
		n, err := r.ReadContext(ctx, p)
		_, _ = b.Write(p[:n])
		if err == io.EOF {
			return b.Bytes(), nil
		}
		if err != nil {
			return b.Bytes(), err
		}
	}
}

func ReadAllSync(r io.Reader) ([]byte, error) {
	var b buffer.Buffer
	_, err := b.ReadFrom(r)
	return b.Bytes(), err
}

// WriteAll writes p to w, calling w again until every byte was accepted.
func WriteAll(ctx context.Context, w Writer, p []byte) error {
	return writeAll(func(p []byte) (int, error) { return w.WriteContext(ctx, p) }, p)
}

func WriteAllSync(w io.Writer, p []byte) error {
	return writeAll(w.Write, p)
}

func writeAll(write func([]byte) (int, error), p []byte) error {
	idx, zeros := 0, 0
	for idx < len(p) {
		n, err := write(p[idx:])
		if n < 0 || n > len(p)-idx {
			return io.ErrShortWrite
		}
		idx += n
		if idx == len(p) {
			return nil
		}
		if err != nil && err != io.ErrShortWrite {
			return err
		}
		if n == 0 {
			zeros++
			if zeros >= maxZeroWrites {
				return io.ErrShortWrite
			}
			continue
		}
		zeros = 0
	}
	return nil
}
