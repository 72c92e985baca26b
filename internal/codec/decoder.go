package codec

import (
	"encoding/binary"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// Decoder walks a single encoded buffer front to back. Like Encoder
// it is sticky-error: once err is set every read becomes a cheap
// no-op that returns a zero value, so recursive decode functions
// don't need to check err after every field.
type Decoder struct {
	buf   []byte
	i     int
	end   int
	order binary.ByteOrder

	userSig       byte
	numericBound  int
	otherBound    int

	err error
}

// Decode reconstructs buf into a freely-shaped Value, with no
// caller-supplied template to overlay onto.
func Decode(buf []byte, userSig byte, numericBound, otherBound int) (value.Value, error) {
	d, err := newDecoder(buf, userSig, numericBound, otherBound)
	if err != nil {
		return value.Value{}, err
	}
	v := d.decodeValue(nil)
	if d.err != nil {
		return value.Value{}, d.err
	}
	if d.i != d.end {
		return value.Value{}, mxerrors.ErrCorruptBuf
	}
	return v, nil
}

// DecodeInto reconstructs buf, using tmpl to fix shape category,
// element class, and (for cell/struct) child templates. Fields of
// tmpl absent from the wire are preserved unchanged in the result.
func DecodeInto(buf []byte, userSig byte, tmpl value.Value, numericBound, otherBound int) (value.Value, error) {
	d, err := newDecoder(buf, userSig, numericBound, otherBound)
	if err != nil {
		return value.Value{}, err
	}
	v := d.decodeValue(&tmpl)
	if d.err != nil {
		return value.Value{}, d.err
	}
	if d.i != d.end {
		return value.Value{}, mxerrors.ErrCorruptBuf
	}
	return v, nil
}

func newDecoder(buf []byte, userSig byte, numericBound, otherBound int) (*Decoder, error) {
	if len(buf) == 0 || len(buf)%4 != 0 {
		return nil, mxerrors.ErrInvalidBuf
	}
	final := buf[len(buf)-1]
	p := int(^final & 0xFF)
	if p < 1 || p > 4 || p > len(buf) {
		return nil, mxerrors.ErrInvalidPad
	}
	for i := len(buf) - p; i < len(buf); i++ {
		if buf[i] != final {
			return nil, mxerrors.ErrInvalidPad
		}
	}
	if len(buf) < 2+p {
		return nil, mxerrors.ErrInvalidBuf
	}

	order, err := detectSignature(buf[0], buf[1], userSig)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		buf:          buf,
		i:            2,
		end:          len(buf) - p,
		order:        order,
		userSig:      userSig,
		numericBound: numericBound,
		otherBound:   otherBound,
	}, nil
}

// detectSignature mirrors writeSignature: little order writes (sig,
// FormatVersion), big order writes (FormatVersion, sig).
func detectSignature(b0, b1, userSig byte) (binary.ByteOrder, error) {
	switch {
	case b0 == userSig && b1 == FormatVersion:
		return binary.LittleEndian, nil
	case b0 == FormatVersion && b1 == userSig:
		return binary.BigEndian, nil
	default:
		return nil, mxerrors.ErrInvalidSig
	}
}

func (d *Decoder) fail(err error) {
	if d.err == nil {
		d.err = mxerrors.Offset(err, d.i)
	}
}

func (d *Decoder) readByte() byte {
	if d.err != nil {
		return 0
	}
	if d.i >= d.end {
		d.fail(mxerrors.ErrCorruptBuf)
		return 0
	}
	b := d.buf[d.i]
	d.i++
	return b
}

func (d *Decoder) readBytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.i+n > d.end {
		d.fail(mxerrors.ErrCorruptBuf)
		return nil
	}
	b := d.buf[d.i : d.i+n]
	d.i += n
	return b
}

func (d *Decoder) readU16() uint16 {
	b := d.readBytes(2)
	if d.err != nil {
		return 0
	}
	return d.order.Uint16(b)
}

func (d *Decoder) readU32() uint32 {
	b := d.readBytes(4)
	if d.err != nil {
		return 0
	}
	return d.order.Uint32(b)
}

func (d *Decoder) readU64() uint64 {
	b := d.readBytes(8)
	if d.err != nil {
		return 0
	}
	return d.order.Uint64(b)
}

func (d *Decoder) advance(n int) {
	if d.err != nil {
		return
	}
	if d.i+n > d.end {
		d.fail(mxerrors.ErrCorruptBuf)
		return
	}
	d.i += n
}

// decodeValue reads one complete value node. tmpl, when non-nil,
// selects template mode for this node (and only this node -- callers
// pass a fresh child template at each recursive call).
func (d *Decoder) decodeValue(tmpl *value.Value) value.Value {
	if d.err != nil {
		return value.Value{}
	}
	tag := d.readByte()
	cls, fmtCode := class.SplitTag(tag)
	if !cls.Valid() {
		d.fail(mxerrors.ErrInvalidTag)
		return value.Value{}
	}
	shape, ok := d.readShape(fmtCode, tmpl != nil)
	if !ok || d.err != nil {
		if d.err == nil {
			d.fail(mxerrors.ErrInvalidTag)
		}
		return value.Value{}
	}
	if tmpl == nil {
		return d.decodeDynamic(cls, shape)
	}
	return d.decodeTemplated(cls, shape, tmpl)
}

// readShape reads whatever the format's tag implies beyond the class:
// nothing for scalar/empty, one dimension for column/row, two for
// matrix, and ndims-plus-dims for general form. In template mode, a
// general form whose ndims exceeds 2 is rejected outright (§4.3); an
// ndims of exactly 2 is accepted since it still reduces to a normal
// 2-D matrix shape.
func (d *Decoder) readShape(f class.SizeFormat, templateMode bool) (value.Shape, bool) {
	switch f {
	case class.FmtScalar:
		return value.Shape{1, 1}, true
	case class.FmtEmpty:
		return value.Shape{0, 0}, true
	case class.FmtColumn:
		n := int64(d.readByte())
		return value.Shape{n, 1}, true
	case class.FmtRow:
		n := int64(d.readByte())
		return value.Shape{1, n}, true
	case class.FmtMatrix:
		r := int64(d.readByte())
		c := int64(d.readByte())
		return value.Shape{r, c}, true
	case class.FmtGen8, class.FmtGen16, class.FmtGen32:
		ndims := int(d.readByte())
		if d.err != nil {
			return nil, false
		}
		if ndims < 2 {
			d.fail(mxerrors.ErrInvalidTag)
			return nil, false
		}
		if ndims > maxDims {
			d.fail(mxerrors.ErrNdimsLimit)
			return nil, false
		}
		if templateMode && ndims > 2 {
			d.fail(mxerrors.ErrNdimsLimit)
			return nil, false
		}
		w := f.DimWidth()
		shape := make(value.Shape, ndims)
		var product int64 = 1
		for i := 0; i < ndims; i++ {
			var dim int64
			switch w {
			case 1:
				dim = int64(d.readByte())
			case 2:
				dim = int64(d.readU16())
			case 4:
				dim = int64(d.readU32())
			}
			if d.err != nil {
				return nil, false
			}
			if dim > maxNumEl {
				d.fail(mxerrors.Dims{Sentinel: mxerrors.ErrNumelLimit, Got: dim, Max: maxNumEl})
				return nil, false
			}
			shape[i] = dim
			if dim != 0 {
				product *= dim
			}
			if product > maxNumEl {
				d.fail(mxerrors.Dims{Sentinel: mxerrors.ErrNumelLimit, Got: product, Max: maxNumEl})
				return nil, false
			}
		}
		return shape, true
	default:
		d.fail(mxerrors.ErrInvalidTag)
		return nil, false
	}
}

func boundFor(d *Decoder, cls class.Class) int {
	if cls.IsNumeric() || cls == class.Bool || cls == class.Complex {
		return d.numericBound
	}
	return d.otherBound
}
