// Package errors defines the codec's stable, wire-visible error
// identifiers (spec taxonomy) plus typed errors that carry positional
// context. All are comparable with errors.Is; Path/Offset wrap
// a sentinel with github.com/pkg/errors so the wrap still satisfies
// errors.Is against the sentinel while Error() carries the location,
// mirroring the teacher's FieldError/LengthError convention of
// attaching context to a sentinel rather than discarding it.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// mxerror is a named string sentinel, following the teacher's xerror
// convention: comparable by value, so errors.Is(err, ErrInvalidTag)
// works even through multiple layers of wrapping.
type mxerror string

func (e mxerror) Error() string {
	return string(e)
}

const (
	ErrInvalidBuf       = mxerror("mx: invalid buffer")
	ErrInvalidPad       = mxerror("mx: invalid padding")
	ErrInvalidSig       = mxerror("mx: invalid signature")
	ErrInvalidTag       = mxerror("mx: invalid tag")
	ErrInvalidStruct    = mxerror("mx: invalid struct")
	ErrNdimsLimit       = mxerror("mx: too many dimensions")
	ErrNumelLimit       = mxerror("mx: element count exceeds limit")
	ErrBufLimit         = mxerror("mx: encoded buffer exceeds limit")
	ErrClassMismatch    = mxerror("mx: class mismatch")
	ErrSizeMismatch     = mxerror("mx: size mismatch")
	ErrEmptyValue       = mxerror("mx: empty value not permitted here")
	ErrUnicodeChar      = mxerror("mx: char16 unsupported in this template")
	ErrUnsupportedClass = mxerror("mx: unsupported class")
	ErrInvalidByteOrder = mxerror("mx: invalid byte order")
	ErrCorruptBuf       = mxerror("mx: corrupt buffer")

	// ErrFieldNameTooLong is raised at Value construction time, not
	// by the wire codec, but shares the sentinel-comparison idiom.
	ErrFieldNameTooLong = mxerror("mx: struct field name exceeds 63 bytes")
)

// Offset wraps err with the byte offset in the buffer at which it was
// detected.
func Offset(err error, at int) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, "at offset %d", at)
}

// Path wraps err with a dotted struct/cell field path, for errors
// discovered while recursing into a nested value.
func Path(err error, path string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, "at %s", path)
}

// Dims describes a dimension or element-count limit violation.
type Dims struct {
	Sentinel error
	Got, Max int64
}

func (e Dims) Error() string {
	return fmt.Sprintf("%s (%d > %d)", e.Sentinel, e.Got, e.Max)
}

func (e Dims) Unwrap() error {
	return e.Sentinel
}

func (e Dims) Is(target error) bool {
	return e.Sentinel == target
}
