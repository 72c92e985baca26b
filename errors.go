package mx

import mxerrors "go.mxcodec.dev/mx/internal/errors"

// Sentinel errors returned by Encode, Decode, and DecodeInto. Use
// errors.Is to test for a specific one; errors the decoder finds while
// walking the buffer are wrapped with the byte offset at which the
// problem was found.
var (
	ErrInvalidBuf       = mxerrors.ErrInvalidBuf
	ErrInvalidPad       = mxerrors.ErrInvalidPad
	ErrInvalidSig       = mxerrors.ErrInvalidSig
	ErrInvalidTag       = mxerrors.ErrInvalidTag
	ErrInvalidStruct    = mxerrors.ErrInvalidStruct
	ErrNdimsLimit       = mxerrors.ErrNdimsLimit
	ErrNumelLimit       = mxerrors.ErrNumelLimit
	ErrBufLimit         = mxerrors.ErrBufLimit
	ErrClassMismatch    = mxerrors.ErrClassMismatch
	ErrSizeMismatch     = mxerrors.ErrSizeMismatch
	ErrEmptyValue       = mxerrors.ErrEmptyValue
	ErrUnicodeChar      = mxerrors.ErrUnicodeChar
	ErrUnsupportedClass = mxerrors.ErrUnsupportedClass
	ErrInvalidByteOrder = mxerrors.ErrInvalidByteOrder
	ErrCorruptBuf       = mxerrors.ErrCorruptBuf
	ErrFieldNameTooLong = mxerrors.ErrFieldNameTooLong
)
