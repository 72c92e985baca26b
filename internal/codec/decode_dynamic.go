package codec

import (
	"math"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// decodeDynamic reconstructs a value with no template to constrain
// it: fixed-width classes read straight into a freshly sized slice,
// the four recursive classes each get their own reconstruction.
func (d *Decoder) decodeDynamic(cls class.Class, shape value.Shape) value.Value {
	if d.err != nil {
		return value.Value{}
	}
	if width, ok := cls.FixedWidth(); ok {
		return d.decodeFixedWidth(cls, shape, width)
	}
	switch cls {
	case class.Cell:
		return d.decodeCellDynamic(shape)
	case class.Struct:
		return d.decodeStructDynamic(shape)
	case class.Sparse:
		return d.decodeSparseDynamic(shape)
	case class.Complex:
		return d.decodeComplexDynamic(shape)
	default:
		d.fail(mxerrors.ErrUnsupportedClass)
		return value.Value{}
	}
}

// decodeFixedWidth reads NumEl() elements of the given class and
// byte width, in element-major order.
func (d *Decoder) decodeFixedWidth(cls class.Class, shape value.Shape, width int) value.Value {
	n := int(shape.NumEl())
	v := value.Value{Class: cls, Shape: shape}
	switch cls {
	case class.Float64:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(d.readU64())
		}
		v.F64 = out
	case class.Float32:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(d.readU32())
		}
		v.F32 = out
	case class.Int8:
		b := d.readBytes(n)
		out := make([]int8, n)
		for i, x := range b {
			out[i] = int8(x)
		}
		v.I8 = out
	case class.Uint8:
		b := d.readBytes(n)
		out := make([]uint8, n)
		copy(out, b)
		v.U8 = out
	case class.Char8:
		b := d.readBytes(n)
		out := make([]byte, n)
		copy(out, b)
		v.U8 = out
	case class.Int16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(d.readU16())
		}
		v.I16 = out
	case class.Uint16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = d.readU16()
		}
		v.U16 = out
	case class.Char16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = d.readU16()
		}
		v.U16 = out
	case class.Int32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(d.readU32())
		}
		v.I32 = out
	case class.Uint32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = d.readU32()
		}
		v.U32 = out
	case class.Int64:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(d.readU64())
		}
		v.I64 = out
	case class.Uint64:
		out := make([]uint64, n)
		for i := range out {
			out[i] = d.readU64()
		}
		v.U64 = out
	case class.Bool:
		b := d.readBytes(n)
		out := make([]bool, n)
		for i, x := range b {
			if x > 1 {
				d.fail(mxerrors.ErrInvalidBuf)
				return value.Value{}
			}
			out[i] = x == 1
		}
		v.Bools = out
	default:
		d.fail(mxerrors.ErrUnsupportedClass)
	}
	return v
}

func (d *Decoder) decodeCellDynamic(shape value.Shape) value.Value {
	n := int(shape.NumEl())
	children := make([]value.Value, n)
	for i := 0; i < n; i++ {
		children[i] = d.decodeValue(nil)
		if d.err != nil {
			return value.Value{Class: class.Cell, Shape: shape, Cell: children[:i]}
		}
	}
	return value.Value{Class: class.Cell, Shape: shape, Cell: children}
}

func (d *Decoder) decodeStructDynamic(shape value.Shape) value.Value {
	namesVal := d.decodeValue(nil)
	if d.err != nil {
		return value.Value{}
	}
	if namesVal.Class != class.Cell {
		d.fail(mxerrors.ErrInvalidStruct)
		return value.Value{}
	}
	names := make([]string, len(namesVal.Cell))
	for i, nv := range namesVal.Cell {
		if nv.Class != class.Char8 {
			d.fail(mxerrors.ErrInvalidStruct)
			return value.Value{}
		}
		names[i] = string(nv.U8)
	}
	n := int(shape.NumEl())
	fields := make([][]value.Value, len(names))
	for fi := range names {
		col := make([]value.Value, n)
		for i := 0; i < n; i++ {
			col[i] = d.decodeValue(nil)
			if d.err != nil {
				fields[fi] = col[:i]
				return value.Value{Class: class.Struct, Shape: shape, FieldNames: names, Fields: fields}
			}
		}
		fields[fi] = col
	}
	return value.Value{Class: class.Struct, Shape: shape, FieldNames: names, Fields: fields}
}

func (d *Decoder) decodeSparseDynamic(shape value.Shape) value.Value {
	idx := d.decodeValue(nil)
	if d.err != nil {
		return value.Value{}
	}
	if !idx.Class.IsUnsignedInt() {
		d.fail(mxerrors.ErrClassMismatch)
		return value.Value{}
	}
	nzv := d.decodeValue(nil)
	if d.err != nil {
		return value.Value{Class: class.Sparse, Shape: shape, SparseIdx: &idx}
	}
	if nzv.Class != class.Float64 && nzv.Class != class.Bool && nzv.Class != class.Complex {
		d.fail(mxerrors.ErrClassMismatch)
		return value.Value{}
	}
	return value.Value{Class: class.Sparse, Shape: shape, SparseIdx: &idx, SparseNzv: &nzv}
}

func (d *Decoder) decodeComplexDynamic(shape value.Shape) value.Value {
	innerTag := d.readByte()
	realCls, _ := class.SplitTag(innerTag)
	if d.err != nil {
		return value.Value{}
	}
	if !realCls.IsNumeric() {
		d.fail(mxerrors.ErrUnsupportedClass)
		return value.Value{}
	}
	width, _ := realCls.FixedWidth()
	real := d.decodeFixedWidth(realCls, shape, width)
	if d.err != nil {
		return value.Value{}
	}
	imag := d.decodeFixedWidth(realCls, shape, width)
	if d.err != nil {
		return value.Value{}
	}
	return value.Value{Class: class.Complex, Shape: shape, ComplexReal: &real, ComplexImag: &imag}
}
