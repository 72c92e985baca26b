package codec

import (
	"math"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// encodeNumericPayload writes the flat element array for any
// fixed-width numeric class. It is also used, unwrapped in a
// tag/shape, to write the raw real and imaginary parts of a complex
// value (codec_complex.go).
func (e *Encoder) encodeNumericPayload(v value.Value) {
	switch v.Class {
	case class.Float64:
		for _, f := range v.F64 {
			e.writeU64(math.Float64bits(f))
		}
	case class.Float32:
		for _, f := range v.F32 {
			e.writeU32(math.Float32bits(f))
		}
	case class.Int8:
		b := make([]byte, len(v.I8))
		for i, x := range v.I8 {
			b[i] = byte(x)
		}
		e.writeBytes(b)
	case class.Uint8, class.Char8:
		e.writeBytes(v.U8)
	case class.Int16:
		for _, x := range v.I16 {
			e.writeU16(uint16(x))
		}
	case class.Uint16, class.Char16:
		for _, x := range v.U16 {
			e.writeU16(x)
		}
	case class.Int32:
		for _, x := range v.I32 {
			e.writeU32(uint32(x))
		}
	case class.Uint32:
		for _, x := range v.U32 {
			e.writeU32(x)
		}
	case class.Int64:
		for _, x := range v.I64 {
			e.writeU64(uint64(x))
		}
	case class.Uint64:
		for _, x := range v.U64 {
			e.writeU64(x)
		}
	default:
		e.fail(mxerrors.ErrUnsupportedClass)
	}
}

func (e *Encoder) encodeBoolPayload(v value.Value) {
	b := make([]byte, len(v.Bools))
	for i, x := range v.Bools {
		if x {
			b[i] = 1
		}
	}
	e.writeBytes(b)
}
