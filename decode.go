package mx

import "go.mxcodec.dev/mx/internal/codec"

type decodeOptions struct {
	userSig       byte
	numericBound  int
	otherBound    int
}

// DecodeOption configures a single Decode or DecodeInto call.
type DecodeOption func(*decodeOptions)

// WithUserSig overrides the signature low byte the decoder expects to
// find. It must match the value the buffer was encoded with.
func WithUserSig(sig byte) DecodeOption {
	return func(o *decodeOptions) { o.userSig = sig }
}

// WithBounds overrides the template-mode element-count ceilings:
// numeric applies to numeric, bool, and complex values, other applies
// to char, cell, and struct values. Ignored by Decode's dynamic mode.
func WithBounds(numeric, other int) DecodeOption {
	return func(o *decodeOptions) {
		o.numericBound = numeric
		o.otherBound = other
	}
}

func resolveDecodeOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{
		userSig:      codec.DefaultUserSig,
		numericBound: codec.DefaultNumericBound,
		otherBound:   codec.DefaultCharBound,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Decode reconstructs buf into a freely-shaped Value.
func Decode(buf []byte, opts ...DecodeOption) (Value, error) {
	o := resolveDecodeOptions(opts)
	return codec.Decode(buf, o.userSig, o.numericBound, o.otherBound)
}

// DecodeInto reconstructs buf, overlaying it onto template: the wire
// shape is coerced into template's shape category, the wire class
// must be compatible with template's class, and fields of a struct
// template not present on the wire keep their existing contents. The
// value pointed to by template is mutated in place; the same value is
// also returned so callers can chain without a separate dereference.
func DecodeInto(buf []byte, template *Value, opts ...DecodeOption) (*Value, error) {
	o := resolveDecodeOptions(opts)
	out, err := codec.DecodeInto(buf, o.userSig, *template, o.numericBound, o.otherBound)
	if err != nil {
		return nil, err
	}
	*template = out
	return template, nil
}
