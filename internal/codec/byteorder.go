package codec

import "encoding/binary"

// ByteOrder selects how multi-byte integers and floats are written
// by the encoder. The decoder never takes a ByteOrder: it infers the
// order actually used from the signature (§4.3).
type ByteOrder int

const (
	Native ByteOrder = iota
	Little
	Big
)

func (o ByteOrder) Valid() bool {
	return o == Native || o == Little || o == Big
}

// nativeIsLittle is resolved once at init by asking encoding/binary's
// NativeEndian to lay out a known value, rather than reaching for
// unsafe.Pointer the way a hand-rolled C-style byte-swap detector
// would.
var nativeIsLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}()

// resolve returns the concrete byte order to use for wire arithmetic,
// and whether that order is little-endian (which determines how the
// signature's two bytes are laid out: (U, V) for little, (V, U) for
// big -- see writeSignature() in encoder.go).
func (o ByteOrder) resolve() (binary.ByteOrder, bool) {
	switch o {
	case Little:
		return binary.LittleEndian, true
	case Big:
		return binary.BigEndian, false
	default:
		if nativeIsLittle {
			return binary.LittleEndian, true
		}
		return binary.BigEndian, false
	}
}
