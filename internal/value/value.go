// Package value defines the Value sum type: the tagged-variant data
// model described by the wire format's class table. It is a closed
// union with one constructor per class, per the codec's design note
// that the value universe is fixed rather than open to arbitrary Go
// types via reflection (contrast the teacher's reflect.Value-driven
// codec registry, which this type deliberately replaces).
package value

import (
	"fmt"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
)

// Shape is an ordered list of non-negative dimensions. Element count
// is the product of its entries.
type Shape []int64

// NumEl returns the element count of the shape: the product of its
// dimensions, or 0 if any dimension is 0.
func (s Shape) NumEl() int64 {
	n := int64(1)
	for _, d := range s {
		if d == 0 {
			return 0
		}
		n *= d
	}
	if len(s) == 0 {
		return 0
	}
	return n
}

// ImpliedNumEl returns the element count as if every zero dimension
// were replaced by 1 -- used by the encoder's numelLimit check on
// empty values (spec.md §4.2).
func (s Shape) ImpliedNumEl() int64 {
	n := int64(1)
	for _, d := range s {
		if d != 0 {
			n *= d
		}
	}
	if len(s) == 0 {
		return 0
	}
	return n
}

// IsScalar reports whether the shape denotes a single element: 1x1.
func (s Shape) IsScalar() bool {
	return len(s) == 2 && s[0] == 1 && s[1] == 1
}

// IsNormalizedEmpty reports whether the shape is exactly 0x0.
func (s Shape) IsNormalizedEmpty() bool {
	return len(s) == 2 && s[0] == 0 && s[1] == 0
}

func (s Shape) MaxDim() int64 {
	var m int64
	for _, d := range s {
		if d > m {
			m = d
		}
	}
	return m
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Value is a single node in the value tree: a class tag, a shape,
// and exactly the payload fields that class uses. Which fields are
// populated is determined entirely by Class; callers go through the
// New* constructors rather than building a Value by hand so that
// invariant never slips.
type Value struct {
	Class class.Class
	Shape Shape

	F64 []float64
	F32 []float32
	I8  []int8
	U8  []uint8 // also backs Char8 payload
	I16 []int16
	U16 []uint16 // also backs Char16 payload
	I32 []int32
	U32 []uint32
	I64 []int64
	U64 []uint64
	Bools []bool

	Cell []Value

	FieldNames []string
	Fields     [][]Value // len(Fields) == len(FieldNames); each inner slice has NumEl() entries

	SparseIdx *Value
	SparseNzv *Value

	ComplexReal *Value
	ComplexImag *Value
}

// ScalarShape returns the canonical 1x1 shape.
func ScalarShape() Shape { return Shape{1, 1} }

// ColShape returns the column-vector shape for n elements. Unlike the
// normalized-empty 0x0 shape, a zero-element column keeps its column
// tag ({0,1}) so it remains distinguishable as a column template with
// an unknown element count, rather than collapsing into the distinct
// matrix-category default.
func ColShape(n int) Shape {
	return Shape{int64(n), 1}
}

// RowShape returns the row-vector shape for n elements, keeping its
// row tag ({1,0}) when n is 0 for the same reason as ColShape.
func RowShape(n int) Shape {
	return Shape{1, int64(n)}
}

func NewFloat64(shape Shape, data []float64) Value {
	return Value{Class: class.Float64, Shape: shape, F64: data}
}

func NewFloat32(shape Shape, data []float32) Value {
	return Value{Class: class.Float32, Shape: shape, F32: data}
}

func NewInt8(shape Shape, data []int8) Value { return Value{Class: class.Int8, Shape: shape, I8: data} }
func NewUint8(shape Shape, data []uint8) Value {
	return Value{Class: class.Uint8, Shape: shape, U8: data}
}
func NewInt16(shape Shape, data []int16) Value {
	return Value{Class: class.Int16, Shape: shape, I16: data}
}
func NewUint16(shape Shape, data []uint16) Value {
	return Value{Class: class.Uint16, Shape: shape, U16: data}
}
func NewInt32(shape Shape, data []int32) Value {
	return Value{Class: class.Int32, Shape: shape, I32: data}
}
func NewUint32(shape Shape, data []uint32) Value {
	return Value{Class: class.Uint32, Shape: shape, U32: data}
}
func NewInt64(shape Shape, data []int64) Value {
	return Value{Class: class.Int64, Shape: shape, I64: data}
}
func NewUint64(shape Shape, data []uint64) Value {
	return Value{Class: class.Uint64, Shape: shape, U64: data}
}

func NewBool(shape Shape, data []bool) Value {
	return Value{Class: class.Bool, Shape: shape, Bools: data}
}

// NewChar8Row builds a 1xN char8 string value from s, the common
// case of a MATLAB-style character row vector.
func NewChar8Row(s string) Value {
	b := []byte(s)
	return Value{Class: class.Char8, Shape: RowShape(len(b)), U8: b}
}

func NewChar8(shape Shape, data []byte) Value {
	return Value{Class: class.Char8, Shape: shape, U8: data}
}

func NewChar16(shape Shape, data []uint16) Value {
	return Value{Class: class.Char16, Shape: shape, U16: data}
}

func NewCell(shape Shape, children []Value) Value {
	return Value{Class: class.Cell, Shape: shape, Cell: children}
}

// NewStruct builds a struct value. fields[i] must have exactly
// shape.NumEl() entries, matching fieldNames[i]. Field names longer
// than 63 bytes are rejected at construction time (spec.md §6).
func NewStruct(shape Shape, fieldNames []string, fields [][]Value) (Value, error) {
	if len(fieldNames) != len(fields) {
		return Value{}, fmt.Errorf("mx: %d field names but %d field arrays", len(fieldNames), len(fields))
	}
	n := shape.NumEl()
	for i, name := range fieldNames {
		if len(name) > 63 {
			return Value{}, mxerrors.ErrFieldNameTooLong
		}
		if int64(len(fields[i])) != n {
			return Value{}, fmt.Errorf("mx: field %q has %d values, want %d", name, len(fields[i]), n)
		}
	}
	return Value{Class: class.Struct, Shape: shape, FieldNames: fieldNames, Fields: fields}, nil
}

// NewSparse builds a sparse value. idx must be an unsigned integer
// vector (spec.md §3); nzv must be float64, bool, or complex, and
// hold the same element count as idx.
func NewSparse(shape Shape, idx, nzv Value) (Value, error) {
	if !idx.Class.IsUnsignedInt() {
		return Value{}, fmt.Errorf("mx: sparse index must be an unsigned integer class, got %s", idx.Class)
	}
	if nzv.Class != class.Float64 && nzv.Class != class.Bool && nzv.Class != class.Complex {
		return Value{}, fmt.Errorf("mx: sparse value must be float64, bool, or complex, got %s", nzv.Class)
	}
	if idx.Shape.NumEl() != nzv.Shape.NumEl() {
		return Value{}, fmt.Errorf("mx: sparse idx/nzv element count mismatch: %d vs %d", idx.Shape.NumEl(), nzv.Shape.NumEl())
	}
	return Value{Class: class.Sparse, Shape: shape, SparseIdx: &idx, SparseNzv: &nzv}, nil
}

// NewComplex builds a complex value from two same-class, same-shape
// real-numeric parts.
func NewComplex(real, imag Value) (Value, error) {
	if !real.Class.IsNumeric() || !imag.Class.IsNumeric() {
		return Value{}, fmt.Errorf("mx: complex parts must be numeric classes")
	}
	if real.Class != imag.Class {
		return Value{}, fmt.Errorf("mx: complex real/imag class mismatch: %s vs %s", real.Class, imag.Class)
	}
	if !real.Shape.Equal(imag.Shape) {
		return Value{}, fmt.Errorf("mx: complex real/imag shape mismatch")
	}
	return Value{Class: class.Complex, Shape: real.Shape, ComplexReal: &real, ComplexImag: &imag}, nil
}

// Equal performs a structural comparison: same class, same shape,
// same element contents. Sparse equality treats idx/nzv as an
// unordered set of (position, value) pairs is NOT implemented here
// (that requires class-specific numeric comparison with ordering
// normalization); callers needing that should normalize first. The
// encoder writes idx and nzv in the caller's order and the decoder
// reads them back in that order, so direct structural comparison
// of SparseIdx/SparseNzv is sufficient in round-trip tests.
func (v Value) Equal(o Value) bool {
	if v.Class != o.Class || !v.Shape.Equal(o.Shape) {
		return false
	}
	switch v.Class {
	case class.Float64:
		return eqSlice(v.F64, o.F64)
	case class.Float32:
		return eqSlice(v.F32, o.F32)
	case class.Int8:
		return eqSlice(v.I8, o.I8)
	case class.Uint8:
		return eqSlice(v.U8, o.U8)
	case class.Int16:
		return eqSlice(v.I16, o.I16)
	case class.Uint16:
		return eqSlice(v.U16, o.U16)
	case class.Int32:
		return eqSlice(v.I32, o.I32)
	case class.Uint32:
		return eqSlice(v.U32, o.U32)
	case class.Int64:
		return eqSlice(v.I64, o.I64)
	case class.Uint64:
		return eqSlice(v.U64, o.U64)
	case class.Bool:
		return eqSlice(v.Bools, o.Bools)
	case class.Char8:
		return eqSlice(v.U8, o.U8)
	case class.Char16:
		return eqSlice(v.U16, o.U16)
	case class.Cell:
		if len(v.Cell) != len(o.Cell) {
			return false
		}
		for i := range v.Cell {
			if !v.Cell[i].Equal(o.Cell[i]) {
				return false
			}
		}
		return true
	case class.Struct:
		if len(v.FieldNames) != len(o.FieldNames) {
			return false
		}
		for i, name := range v.FieldNames {
			j := indexOf(o.FieldNames, name)
			if j < 0 || len(v.Fields[i]) != len(o.Fields[j]) {
				return false
			}
			for k := range v.Fields[i] {
				if !v.Fields[i][k].Equal(o.Fields[j][k]) {
					return false
				}
			}
		}
		return true
	case class.Sparse:
		return v.SparseIdx.Equal(*o.SparseIdx) && v.SparseNzv.Equal(*o.SparseNzv)
	case class.Complex:
		return v.ComplexReal.Equal(*o.ComplexReal) && v.ComplexImag.Equal(*o.ComplexImag)
	default:
		return false
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func eqSlice[T comparable](a, b []T) bool {
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
