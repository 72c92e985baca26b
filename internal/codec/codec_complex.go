package codec

import (
	"go.mxcodec.dev/mx/internal/class"
	"go.mxcodec.dev/mx/internal/value"
)

// encodeComplex writes a single inner tag naming the real numeric
// class shared by both parts, then the raw real elements followed by
// the raw imaginary elements -- neither part carries its own shape,
// since both share the outer value's shape.
func (e *Encoder) encodeComplex(v value.Value) {
	e.writeByte(class.Tag(v.ComplexReal.Class, class.FmtScalar))
	e.encodeNumericPayload(*v.ComplexReal)
	e.encodeNumericPayload(*v.ComplexImag)
}
