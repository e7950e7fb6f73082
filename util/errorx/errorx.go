// Package errorx holds the error kinds shared by the buffer and stream packages.
//
// EOF and ErrShortWrite are returned as values and are expected to be
// branched on. ErrTooLarge and ErrOverflow, and ErrInvalidArgument when it
// reports a broken precondition, are used as panic values instead.
package errorx

import (
	"errors"
	"fmt"
	"io"
)

var (
	EOF           = io.EOF
	ErrShortWrite = io.ErrShortWrite

	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrTooLarge        = errors.New("too large")
	ErrOverflow        = errors.New("overflow")
)

// Wrap attaches a message to kind, keeping errors.Is(err, kind) true.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
}
