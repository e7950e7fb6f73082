// Package bytesx contains whole-slice byte operations used by the buffer.
package bytesx

import (
	"math"

	"github.com/zzzzer91/bytekit/util/errorx"
)

// Copy copies min(len(dst), len(src)) bytes and returns the count.
// Overlapping slices are handled like the builtin copy.
func Copy(dst, src []byte) int {
	return copy(dst, src)
}

func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func HasPrefix(b, prefix []byte) bool {
	if len(prefix) > len(b) {
		return false
	}
	return Equal(b[:len(prefix)], prefix)
}

func HasSuffix(b, suffix []byte) bool {
	if len(suffix) > len(b) {
		return false
	}
	return Equal(b[len(b)-len(suffix):], suffix)
}

// IndexByte returns the index of the first c in b, or -1.
func IndexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// Join concatenates parts with sep between them. The result never aliases
// the inputs.
func Join(parts [][]byte, sep []byte) []byte {
	switch len(parts) {
	case 0:
		return []byte{}
	case 1:
		out := make([]byte, len(parts[0]))
		Copy(out, parts[0])
		return out
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, n)
	i := Copy(out, parts[0])
	for _, p := range parts[1:] {
		i += Copy(out[i:], sep)
		i += Copy(out[i:], p)
	}
	return out
}

// Repeat returns count copies of b.
//
// A negative count is reported as ErrInvalidArgument. A result whose size
// does not fit in an int panics with ErrOverflow.
func Repeat(b []byte, count int) ([]byte, error) {
	if count < 0 {
		return nil, errorx.Wrap(errorx.ErrInvalidArgument, "negative repeat count %d", count)
	}
	if count == 0 || len(b) == 0 {
		return []byte{}, nil
	}
	if len(b) > math.MaxInt/count {
		panic(errorx.ErrOverflow)
	}
	n := len(b) * count
	out := make([]byte, n)
	i := Copy(out, b)
	for i < n {
		i += Copy(out[i:], out[:i])
	}
	return out, nil
}

// TrimPrefix returns b without prefix. The result is a view into b.
func TrimPrefix(b, prefix []byte) []byte {
	if HasPrefix(b, prefix) {
		return b[len(prefix):]
	}
	return b
}

// TrimSuffix returns b without suffix. The result is a view into b.
func TrimSuffix(b, suffix []byte) []byte {
	if HasSuffix(b, suffix) {
		return b[:len(b)-len(suffix)]
	}
	return b
}
