package mx

import "go.mxcodec.dev/mx/internal/codec"

// ByteOrder selects the multi-byte layout Encode writes. The decoder
// never takes one: it infers the order actually used from the
// signature.
type ByteOrder = codec.ByteOrder

const (
	NativeOrder ByteOrder = codec.Native
	LittleOrder ByteOrder = codec.Little
	BigOrder    ByteOrder = codec.Big
)

type encodeOptions struct {
	sig   byte
	order ByteOrder
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeOptions)

// WithSignature overrides the signature's low byte, the "user
// signature" a consumer can check to distinguish this format from
// others sharing the same envelope shape. It must be less than 240.
func WithSignature(sig byte) EncodeOption {
	return func(o *encodeOptions) { o.sig = sig }
}

// WithByteOrder overrides the byte order Encode writes multi-byte
// values in. The default is the host's native order.
func WithByteOrder(order ByteOrder) EncodeOption {
	return func(o *encodeOptions) { o.order = order }
}

// Encode serializes v into a self-describing buffer: a two-byte
// signature, the tagged value tree, and 1-4 bytes of padding bringing
// the total length to a multiple of 4.
func Encode(v Value, opts ...EncodeOption) ([]byte, error) {
	o := encodeOptions{sig: codec.DefaultUserSig, order: codec.Native}
	for _, opt := range opts {
		opt(&o)
	}
	return codec.Encode(v, o.sig, o.order)
}
