package codec

import "go.mxcodec.dev/mx/internal/value"

// encodeStruct writes the field-name cell (a row cell of char8 row
// strings, one per field, mirroring how MATLAB's fieldnames() output
// would itself serialize) followed by, for each field in declaration
// order, its NumEl() values in element-major order.
func (e *Encoder) encodeStruct(v value.Value) {
	names := make([]value.Value, len(v.FieldNames))
	for i, n := range v.FieldNames {
		names[i] = value.NewChar8Row(n)
	}
	e.encodeValue(value.NewCell(value.RowShape(len(names)), names))
	for _, fieldValues := range v.Fields {
		for _, fv := range fieldValues {
			e.encodeValue(fv)
		}
	}
}
