package mx

import (
	"go.mxcodec.dev/mx/internal/class"
	"go.mxcodec.dev/mx/internal/value"
)

// Value is the codec's tagged-variant data model. See package doc for
// the invariant that only the fields its Class uses are populated.
type Value = value.Value

// Shape is an ordered list of non-negative dimensions.
type Shape = value.Shape

// Class identifies the wire type of a Value.
type Class = class.Class

const (
	Float64 = class.Float64
	Float32 = class.Float32
	Int8    = class.Int8
	Uint8   = class.Uint8
	Int16   = class.Int16
	Uint16  = class.Uint16
	Int32   = class.Int32
	Uint32  = class.Uint32
	Int64   = class.Int64
	Uint64  = class.Uint64
	Bool    = class.Bool
	Char8   = class.Char8
	Char16  = class.Char16
	Cell    = class.Cell
	Struct  = class.Struct
	Sparse  = class.Sparse
	Complex = class.Complex
)

// ScalarShape returns the canonical 1x1 shape.
func ScalarShape() Shape { return value.ScalarShape() }

// ColShape returns the canonical column-vector shape for n elements.
func ColShape(n int) Shape { return value.ColShape(n) }

// RowShape returns the canonical row-vector shape for n elements.
func RowShape(n int) Shape { return value.RowShape(n) }

func NewFloat64(shape Shape, data []float64) Value { return value.NewFloat64(shape, data) }
func NewFloat32(shape Shape, data []float32) Value { return value.NewFloat32(shape, data) }
func NewInt8(shape Shape, data []int8) Value       { return value.NewInt8(shape, data) }
func NewUint8(shape Shape, data []uint8) Value     { return value.NewUint8(shape, data) }
func NewInt16(shape Shape, data []int16) Value     { return value.NewInt16(shape, data) }
func NewUint16(shape Shape, data []uint16) Value   { return value.NewUint16(shape, data) }
func NewInt32(shape Shape, data []int32) Value     { return value.NewInt32(shape, data) }
func NewUint32(shape Shape, data []uint32) Value   { return value.NewUint32(shape, data) }
func NewInt64(shape Shape, data []int64) Value     { return value.NewInt64(shape, data) }
func NewUint64(shape Shape, data []uint64) Value   { return value.NewUint64(shape, data) }
func NewBool(shape Shape, data []bool) Value       { return value.NewBool(shape, data) }
func NewChar8Row(s string) Value                   { return value.NewChar8Row(s) }
func NewChar8(shape Shape, data []byte) Value      { return value.NewChar8(shape, data) }
func NewChar16(shape Shape, data []uint16) Value   { return value.NewChar16(shape, data) }
func NewCell(shape Shape, children []Value) Value  { return value.NewCell(shape, children) }

func NewStruct(shape Shape, fieldNames []string, fields [][]Value) (Value, error) {
	return value.NewStruct(shape, fieldNames, fields)
}

func NewSparse(shape Shape, idx, nzv Value) (Value, error) {
	return value.NewSparse(shape, idx, nzv)
}

func NewComplex(real, imag Value) (Value, error) {
	return value.NewComplex(real, imag)
}
