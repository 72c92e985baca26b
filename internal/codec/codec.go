// Package codec implements the encoder and decoder described by the
// wire format: a tag byte (class in the low 5 bits, size format in
// the high 3), a self-detecting byte-order signature, and padding to
// a multiple of 4 bytes. It is organized the way the teacher codec
// splits responsibility across files -- one file per value kind
// (codec_numeric.go, codec_cell.go, codec_struct.go, codec_sparse.go,
// codec_complex.go) plus the shared low-level cursor (encoder.go /
// decoder.go) and tag/shape plumbing (tag.go) -- but the dispatch key
// is an explicit Class rather than a reflect.Kind, since the value
// universe here is closed.
package codec

import "math"

const (
	// FormatVersion is the sole supported signature high byte.
	FormatVersion byte = 240

	// DefaultUserSig is the signature low byte used when the caller
	// does not supply one.
	DefaultUserSig byte = 42

	// DefaultNumericBound and DefaultCharBound are the template-mode
	// element-count ceilings used when the caller does not supply
	// its own bounds pair.
	DefaultNumericBound = 4096
	DefaultCharBound    = 128

	maxDims  = 255
	maxNumEl = math.MaxInt32
	maxBufLen = math.MaxInt32 - 3
)
