// Package buffer implements a growable byte buffer that is a reader and a
// writer at the same time.
//
// All data lives in one backing slice. buf[off:len(buf)] is the unread
// region, cap(buf) is the capacity. Slices returned by Bytes, Next and the
// elements of All alias that backing slice: they are only valid until the
// next call that reads, writes, truncates, resets or grows the buffer.
// ReadBytes, ReadString and Clone return copies.
package buffer

import (
	"context"
	"io"
	"iter"
	"math"

	"github.com/zzzzer91/bytekit/util/bytesx"
	"github.com/zzzzer91/bytekit/util/errorx"
)

// MinRead is the smallest slice ReadFrom passes to Read.
const MinRead = 512

// Buffer is a variable-sized byte buffer. The zero value is an empty buffer
// ready to use.
type Buffer struct {
	buf []byte
	off int
}

// New returns an empty buffer with the given capacity.
func New(cap int) *Buffer {
	return &Buffer{
		buf: make([]byte, 0, cap),
	}
}

// NewBuffer uses buf as the initial contents. The buffer takes ownership of
// buf, the caller must not use it afterwards.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

func NewBufferString(s string) *Buffer {
	return &Buffer{buf: []byte(s)}
}

// Bytes returns the unread region without copying it.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.off:]
}

func (b *Buffer) String() string {
	if b == nil {
		return "<nil>"
	}
	return string(b.buf[b.off:])
}

// Len is the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.buf) - b.off
}

// Cap is the size of the backing allocation, not the unread length.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

func (b *Buffer) Empty() bool {
	return len(b.buf) <= b.off
}

// Reset empties the buffer but keeps the allocation.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

// Truncate keeps the first n unread bytes. It does not reallocate.
func (b *Buffer) Truncate(n int) error {
	if n == 0 {
		b.Reset()
		return nil
	}
	if n < 0 || n > b.Len() {
		return errorx.Wrap(errorx.ErrOutOfRange, "truncate %d of %d unread bytes", n, b.Len())
	}
	b.buf = b.buf[:b.off+n]
	return nil
}

func (b *Buffer) tryGrowByReslice(n int) (int, bool) {
	if l := len(b.buf); n <= cap(b.buf)-l {
		b.buf = b.buf[:l+n]
		return l, true
	}
	return 0, false
}

// grow makes room for n more bytes and returns the index they go to.
func (b *Buffer) grow(n int) int {
	m := b.Len()
	if m == 0 && b.off != 0 {
		b.Reset()
	}
	if i, ok := b.tryGrowByReslice(n); ok {
		return i
	}
	c := cap(b.buf)
	if n <= c/2-m {
		// Sliding the unread bytes down frees at least half the allocation.
		bytesx.Copy(b.buf[:c], b.buf[b.off:])
	} else if c > (math.MaxInt-n)/2 {
		panic(errorx.ErrTooLarge)
	} else {
		buf := make([]byte, 2*c+n)
		bytesx.Copy(buf, b.buf[b.off:])
		b.buf = buf
	}
	b.off = 0
	b.buf = b.buf[:m+n]
	return m
}

// Grow guarantees space for another n bytes without reallocating.
// It panics with ErrInvalidArgument if n is negative and with ErrTooLarge
// if the buffer cannot grow.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		panic(errorx.ErrInvalidArgument)
	}
	m := b.grow(n)
	b.buf = b.buf[:m]
}

func (b *Buffer) Write(p []byte) (int, error) {
	m := b.grow(len(p))
	return bytesx.Copy(b.buf[m:], p), nil
}

func (b *Buffer) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.Write(p)
}

func (b *Buffer) WriteString(s string) (int, error) {
	m := b.grow(len(s))
	return copy(b.buf[m:], s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	m := b.grow(1)
	b.buf[m] = c
	return nil
}

// WriteByteInt writes c after checking it fits in a byte.
func (b *Buffer) WriteByteInt(c int) error {
	if c < 0 || c > math.MaxUint8 {
		return errorx.Wrap(errorx.ErrInvalidArgument, "%d is not a byte", c)
	}
	return b.WriteByte(byte(c))
}

// Read copies unread bytes into p. An empty buffer is reset and reports
// io.EOF, unless p is empty too.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Empty() {
		b.Reset()
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := bytesx.Copy(p, b.buf[b.off:])
	b.off += n
	return n, nil
}

func (b *Buffer) ReadContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.Read(p)
}

// Next consumes up to n bytes and returns them as a view.
func (b *Buffer) Next(n int) []byte {
	if n < 0 {
		panic(errorx.ErrInvalidArgument)
	}
	if m := b.Len(); n > m {
		n = m
	}
	data := b.buf[b.off : b.off+n]
	b.off += n
	return data
}

func (b *Buffer) ReadByte() (byte, error) {
	if b.Empty() {
		b.Reset()
		return 0, io.EOF
	}
	c := b.buf[b.off]
	b.off++
	return c, nil
}

// ReadBytes reads up to and including the first delim. Without a delim it
// returns the rest of the buffer and io.EOF. The result is a copy.
func (b *Buffer) ReadBytes(delim byte) ([]byte, error) {
	slice, err := b.readSlice(delim)
	line := make([]byte, len(slice))
	bytesx.Copy(line, slice)
	return line, err
}

func (b *Buffer) ReadString(delim byte) (string, error) {
	slice, err := b.readSlice(delim)
	return string(slice), err
}

func (b *Buffer) readSlice(delim byte) ([]byte, error) {
	i := bytesx.IndexByte(b.buf[b.off:], delim)
	end := b.off + i + 1
	var err error
	if i < 0 {
		end = len(b.buf)
		err = io.EOF
	}
	line := b.buf[b.off:end]
	b.off = end
	return line, err
}

// All yields the unread bytes one at a time, consuming them. Breaking out
// of the loop leaves the remaining bytes unread.
func (b *Buffer) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			c, err := b.ReadByte()
			if err != nil {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Clone returns a new buffer holding a copy of the unread bytes.
func (b *Buffer) Clone() *Buffer {
	buf := make([]byte, b.Len())
	bytesx.Copy(buf, b.buf[b.off:])
	return NewBuffer(buf)
}

// ReadFrom reads from r until io.EOF and appends the data to the buffer.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		i := b.grow(MinRead)
		b.buf = b.buf[:i]
		n, err := r.Read(b.buf[i:cap(b.buf)])
		if n < 0 {
			panic(errorx.Wrap(errorx.ErrOutOfRange, "reader returned negative count"))
		}
		b.buf = b.buf[:i+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo drains the buffer into w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for !b.Empty() {
		m := b.Len()
		n, err := w.Write(b.buf[b.off:])
		if n > m {
			panic(errorx.Wrap(errorx.ErrOutOfRange, "writer returned invalid count"))
		}
		b.off += n
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n != m {
			return total, io.ErrShortWrite
		}
	}
	b.Reset()
	return total, nil
}
