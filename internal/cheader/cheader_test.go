package cheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mxcodec.dev/mx/internal/manifest"
)

func TestGenerateEmitsEnumAndStruct(t *testing.T) {
	m := &manifest.Manifest{Fields: []manifest.Field{
		{Name: "count", Class: "int32", Shape: []int64{1, 1}},
		{Name: "samples", Class: "float64", Shape: []int64{1, 8}},
		{Name: "tags", Class: "cell", Shape: []int64{1, 1}},
	}}
	src, err := Generate("MX_RECORD_H", m)
	require.NoError(t, err)
	assert.Contains(t, src, "#ifndef MX_RECORD_H")
	assert.Contains(t, src, "MX_CLASS_FLOAT64 = 1")
	assert.Contains(t, src, "int32_t count;")
	assert.Contains(t, src, "double samples[8];")
	assert.Contains(t, src, "void *tags;")
}

func TestGenerateRejectsUnknownClass(t *testing.T) {
	m := &manifest.Manifest{Fields: []manifest.Field{{Name: "x", Class: "nope", Shape: []int64{1, 1}}}}
	_, err := Generate("G_H", m)
	assert.Error(t, err)
}
