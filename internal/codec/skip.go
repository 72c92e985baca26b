package codec

import (
	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// skipValue advances the cursor past one complete value node without
// materializing it. It is used to tolerate struct fields present on
// the wire but absent from a decode template. General-form shapes of
// any ndims are accepted here even in template mode, since the
// content being skipped never has to be reshaped into anything.
func (d *Decoder) skipValue() {
	if d.err != nil {
		return
	}
	tag := d.readByte()
	cls, fmtCode := class.SplitTag(tag)
	if !cls.Valid() {
		d.fail(mxerrors.ErrInvalidTag)
		return
	}
	shape, ok := d.readShape(fmtCode, false)
	if !ok || d.err != nil {
		if d.err == nil {
			d.fail(mxerrors.ErrInvalidTag)
		}
		return
	}
	d.skipPayload(cls, shape)
}

func (d *Decoder) skipPayload(cls class.Class, shape value.Shape) {
	if width, ok := cls.FixedWidth(); ok {
		d.advance(int(shape.NumEl()) * width)
		return
	}
	switch cls {
	case class.Cell:
		n := int(shape.NumEl())
		for i := 0; i < n; i++ {
			d.skipValue()
			if d.err != nil {
				return
			}
		}
	case class.Struct:
		nameTag := d.readByte()
		nameCls, nameFmt := class.SplitTag(nameTag)
		if d.err != nil {
			return
		}
		if nameCls != class.Cell {
			d.fail(mxerrors.ErrCorruptBuf)
			return
		}
		nameShape, ok := d.readShape(nameFmt, false)
		if !ok || d.err != nil {
			if d.err == nil {
				d.fail(mxerrors.ErrInvalidTag)
			}
			return
		}
		fieldCount := int(nameShape.NumEl())
		for i := 0; i < fieldCount; i++ {
			d.skipValue() // one field-name char8 string
			if d.err != nil {
				return
			}
		}
		n := int(shape.NumEl())
		for i := 0; i < fieldCount*n; i++ {
			d.skipValue()
			if d.err != nil {
				return
			}
		}
	case class.Sparse:
		d.skipValue() // idx
		if d.err != nil {
			return
		}
		d.skipValue() // nzv
	case class.Complex:
		innerTag := d.readByte()
		realCls, _ := class.SplitTag(innerTag)
		if d.err != nil {
			return
		}
		width, ok := realCls.FixedWidth()
		if !ok {
			d.fail(mxerrors.ErrCorruptBuf)
			return
		}
		d.advance(2 * int(shape.NumEl()) * width)
	default:
		d.fail(mxerrors.ErrUnsupportedClass)
	}
}
