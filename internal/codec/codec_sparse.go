package codec

import "go.mxcodec.dev/mx/internal/value"

// encodeSparse writes the index vector followed by the nonzero-value
// vector. The outer tag and declared dense shape were already written
// by encodeValue; the two child values carry their own tags and
// shapes describing the compressed representation.
func (e *Encoder) encodeSparse(v value.Value) {
	e.encodeValue(*v.SparseIdx)
	e.encodeValue(*v.SparseNzv)
}
