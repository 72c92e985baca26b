package codec

import (
	"encoding/binary"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// buffer is a growable byte slice with an explicit doubling growth
// strategy capped at max, rather than relying on append's implicit
// growth, so the encoder can reject an oversize value with bufLimit
// before ever allocating past the cap.
type buffer struct {
	data []byte
	max  int
}

func (b *buffer) grow(additional int) error {
	need := len(b.data) + additional
	if need > b.max {
		return mxerrors.ErrBufLimit
	}
	if need <= cap(b.data) {
		return nil
	}
	newCap := cap(b.data) * 2
	if newCap < need {
		newCap = need
	}
	if newCap > b.max {
		newCap = b.max
	}
	nd := make([]byte, len(b.data), newCap)
	copy(nd, b.data)
	b.data = nd
	return nil
}

// Encoder accumulates the encoded bytes for a single top-level value.
// It follows the sticky-error convention: once err is set, every
// subsequent write is a no-op, so a deeply recursive encode doesn't
// need an error check after every single field.
type Encoder struct {
	buf    buffer
	order  binary.ByteOrder
	little bool
	sig    byte
	err    error
}

// NewEncoder builds an Encoder that will write multi-byte values in
// order and stamp the signature's low byte with sig.
func NewEncoder(sig byte, order ByteOrder) (*Encoder, error) {
	if sig >= FormatVersion {
		return nil, mxerrors.ErrInvalidSig
	}
	if !order.Valid() {
		return nil, mxerrors.ErrInvalidByteOrder
	}
	bo, little := order.resolve()
	return &Encoder{
		buf:    buffer{max: maxBufLen},
		order:  bo,
		little: little,
		sig:    sig,
	}, nil
}

func (e *Encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) writeByte(b byte) {
	if e.err != nil {
		return
	}
	if err := e.buf.grow(1); err != nil {
		e.fail(err)
		return
	}
	e.buf.data = append(e.buf.data, b)
}

func (e *Encoder) writeBytes(b []byte) {
	if e.err != nil {
		return
	}
	if err := e.buf.grow(len(b)); err != nil {
		e.fail(err)
		return
	}
	e.buf.data = append(e.buf.data, b...)
}

func (e *Encoder) writeU16(v uint16) {
	var b [2]byte
	e.order.PutUint16(b[:], v)
	e.writeBytes(b[:])
}

func (e *Encoder) writeU32(v uint32) {
	var b [4]byte
	e.order.PutUint32(b[:], v)
	e.writeBytes(b[:])
}

func (e *Encoder) writeU64(v uint64) {
	var b [8]byte
	e.order.PutUint64(b[:], v)
	e.writeBytes(b[:])
}

// Encode serializes v into a freshly built buffer: signature, value,
// padding.
func Encode(v value.Value, sig byte, order ByteOrder) ([]byte, error) {
	e, err := NewEncoder(sig, order)
	if err != nil {
		return nil, err
	}
	e.writeSignature()
	e.encodeValue(v)
	if e.err != nil {
		return nil, e.err
	}
	e.writePadding()
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.data, nil
}

// writeSignature writes the two-byte self-detecting signature. The
// byte order determines the layout: (sig, FormatVersion) for little,
// (FormatVersion, sig) for big, per §4.1's prose rule -- the decoder
// mirrors this exactly in detectSignature.
func (e *Encoder) writeSignature() {
	if e.little {
		e.writeByte(e.sig)
		e.writeByte(FormatVersion)
	} else {
		e.writeByte(FormatVersion)
		e.writeByte(e.sig)
	}
}

// writePadding appends 1-4 trailing bytes, each the bitwise
// complement of the pad length, bringing the total length to a
// multiple of 4.
func (e *Encoder) writePadding() {
	if e.err != nil {
		return
	}
	rem := len(e.buf.data) % 4
	p := 4 - rem
	if rem == 0 {
		p = 4
	}
	marker := ^byte(p)
	for i := 0; i < p; i++ {
		e.writeByte(marker)
	}
}

func (e *Encoder) checkNumEl(shape value.Shape) {
	if e.err != nil {
		return
	}
	if shape.NumEl() > maxNumEl || shape.ImpliedNumEl() > maxNumEl {
		e.fail(mxerrors.Dims{Sentinel: mxerrors.ErrNumelLimit, Got: shape.NumEl(), Max: maxNumEl})
		return
	}
	for _, d := range shape {
		if d > maxNumEl {
			e.fail(mxerrors.Dims{Sentinel: mxerrors.ErrNumelLimit, Got: d, Max: maxNumEl})
			return
		}
	}
}

// encodeValue writes one complete value node: tag, shape prefix, and
// class-specific payload.
func (e *Encoder) encodeValue(v value.Value) {
	if e.err != nil {
		return
	}
	if !v.Class.Valid() {
		e.fail(mxerrors.ErrUnsupportedClass)
		return
	}
	e.checkNumEl(v.Shape)
	if e.err != nil {
		return
	}
	fmtCode, err := chooseFormat(v.Shape)
	if err != nil {
		e.fail(err)
		return
	}
	e.writeByte(class.Tag(v.Class, fmtCode))
	e.writeShapePrefix(fmtCode, v.Shape)
	if e.err != nil {
		return
	}
	switch v.Class {
	case class.Cell:
		e.encodeCell(v)
	case class.Struct:
		e.encodeStruct(v)
	case class.Sparse:
		e.encodeSparse(v)
	case class.Complex:
		e.encodeComplex(v)
	case class.Bool:
		e.encodeBoolPayload(v)
	default:
		e.encodeNumericPayload(v)
	}
}

// writeShapePrefix writes whatever bytes the chosen format requires
// beyond the tag itself: none for scalar/empty, one dimension for
// column/row, two for matrix, and ndims-plus-dims for general form.
func (e *Encoder) writeShapePrefix(f class.SizeFormat, shape value.Shape) {
	switch f {
	case class.FmtScalar, class.FmtEmpty:
		return
	case class.FmtColumn:
		e.writeByte(byte(shape[0]))
	case class.FmtRow:
		e.writeByte(byte(shape[1]))
	case class.FmtMatrix:
		e.writeByte(byte(shape[0]))
		e.writeByte(byte(shape[1]))
	case class.FmtGen8, class.FmtGen16, class.FmtGen32:
		if len(shape) > maxDims {
			e.fail(mxerrors.ErrNdimsLimit)
			return
		}
		e.writeByte(byte(len(shape)))
		w := f.DimWidth()
		for _, d := range shape {
			switch w {
			case 1:
				e.writeByte(byte(d))
			case 2:
				e.writeU16(uint16(d))
			case 4:
				e.writeU32(uint32(d))
			}
		}
	}
}
