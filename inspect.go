package mx

import "go.mxcodec.dev/mx/internal/codec"

// InspectNode describes one value in a buffer's tag tree without
// materializing its payload.
type InspectNode = codec.Node

// Inspect walks buf's tag tree and returns its structure -- classes,
// shapes, and struct field names -- without allocating the numeric
// payloads Decode would.
func Inspect(buf []byte, opts ...DecodeOption) (InspectNode, error) {
	o := resolveDecodeOptions(opts)
	return codec.Inspect(buf, o.userSig)
}
