package codec

import (
	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// decodeTemplated reconstructs a value overlaid onto tmpl: the wire
// class must be compatible with tmpl's class, the wire shape must fit
// the category tmpl's shape describes, and its element count must be
// within the caller's configured bound. Sparse is never accepted in
// template mode, on either side.
func (d *Decoder) decodeTemplated(cls class.Class, shape value.Shape, tmpl *value.Value) value.Value {
	if cls == class.Sparse || tmpl.Class == class.Sparse {
		d.fail(mxerrors.ErrClassMismatch)
		return value.Value{}
	}
	if cls == class.Char16 && !tmpl.Class.IsChar() {
		d.fail(mxerrors.ErrUnicodeChar)
		return value.Value{}
	}
	if !classCompatible(tmpl.Class, cls) {
		d.fail(mxerrors.ErrClassMismatch)
		return value.Value{}
	}
	if shape.NumEl() > int64(boundFor(d, cls)) {
		d.fail(mxerrors.Dims{Sentinel: mxerrors.ErrNumelLimit, Got: shape.NumEl(), Max: int64(boundFor(d, cls))})
		return value.Value{}
	}
	outShape, ok := reshapeForTemplate(tmpl.Shape, shape)
	if !ok {
		d.fail(mxerrors.ErrSizeMismatch)
		return value.Value{}
	}
	switch cls {
	case class.Cell:
		return d.decodeCellTemplated(outShape, tmpl)
	case class.Struct:
		return d.decodeStructTemplated(outShape, tmpl)
	case class.Complex:
		return d.decodeComplexTemplated(outShape, tmpl)
	default:
		width, _ := cls.FixedWidth()
		return d.decodeFixedWidth(cls, outShape, width)
	}
}

func (d *Decoder) decodeCellTemplated(shape value.Shape, tmpl *value.Value) value.Value {
	if len(tmpl.Cell) == 0 {
		d.fail(mxerrors.ErrEmptyValue)
		return value.Value{}
	}
	childTmpl := tmpl.Cell[0]
	n := int(shape.NumEl())
	children := make([]value.Value, n)
	for i := 0; i < n; i++ {
		children[i] = d.decodeValue(&childTmpl)
		if d.err != nil {
			return value.Value{Class: class.Cell, Shape: shape, Cell: children[:i]}
		}
	}
	return value.Value{Class: class.Cell, Shape: shape, Cell: children}
}

// decodeStructTemplated overlays wire fields onto tmpl's fields by
// name: fields present in tmpl but absent from the wire keep their
// prior template contents untouched, fields present in the wire but
// absent from tmpl are skipped over rather than rejected (forward
// compatibility, §4.3), and at least one field must actually match or
// the whole struct is rejected as invalidStruct -- unless tmpl itself
// declares no fields. A template with no elements is emptyValue.
func (d *Decoder) decodeStructTemplated(shape value.Shape, tmpl *value.Value) value.Value {
	if tmpl.Shape.NumEl() == 0 {
		d.fail(mxerrors.ErrEmptyValue)
		return value.Value{}
	}
	namesVal := d.decodeValue(nil)
	if d.err != nil {
		return value.Value{}
	}
	if namesVal.Class != class.Cell {
		d.fail(mxerrors.ErrInvalidStruct)
		return value.Value{}
	}
	wireNames := make([]string, len(namesVal.Cell))
	for i, nv := range namesVal.Cell {
		if nv.Class != class.Char8 {
			d.fail(mxerrors.ErrInvalidStruct)
			return value.Value{}
		}
		wireNames[i] = string(nv.U8)
	}

	outNames := append([]string(nil), tmpl.FieldNames...)
	outFields := make([][]value.Value, len(tmpl.Fields))
	copy(outFields, tmpl.Fields)

	n := int(shape.NumEl())
	matchedAny := false
	for _, wn := range wireNames {
		idx := indexOfName(tmpl.FieldNames, wn)
		if idx < 0 {
			for i := 0; i < n; i++ {
				d.skipValue()
				if d.err != nil {
					return value.Value{Class: class.Struct, Shape: shape, FieldNames: outNames, Fields: outFields}
				}
			}
			continue
		}
		var fieldTmpl value.Value
		if len(tmpl.Fields[idx]) > 0 {
			fieldTmpl = tmpl.Fields[idx][0]
		}
		col := make([]value.Value, n)
		for i := 0; i < n; i++ {
			col[i] = d.decodeValue(&fieldTmpl)
			if d.err != nil {
				outFields[idx] = col[:i]
				return value.Value{Class: class.Struct, Shape: shape, FieldNames: outNames, Fields: outFields}
			}
		}
		outFields[idx] = col
		matchedAny = true
	}
	if !matchedAny && len(tmpl.FieldNames) > 0 {
		d.fail(mxerrors.ErrInvalidStruct)
		return value.Value{Class: class.Struct, Shape: shape, FieldNames: outNames, Fields: outFields}
	}
	return value.Value{Class: class.Struct, Shape: shape, FieldNames: outNames, Fields: outFields}
}

// decodeComplexTemplated trusts the wire's own declared inner class
// for both parts rather than tmpl.ComplexReal.Class, since the class
// compatibility check already ran against the outer complex tag; only
// the shape is constrained by the template.
func (d *Decoder) decodeComplexTemplated(shape value.Shape, tmpl *value.Value) value.Value {
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
	_ = tmpl
	return value.Value{Class: class.Complex, Shape: shape, ComplexReal: &real, ComplexImag: &imag}
}
