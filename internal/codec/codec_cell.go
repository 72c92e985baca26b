package codec

import "go.mxcodec.dev/mx/internal/value"

func (e *Encoder) encodeCell(v value.Value) {
	for _, child := range v.Cell {
		e.encodeValue(child)
	}
}
