package mx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mxcodec.dev/mx"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := mx.NewFloat64(mx.ColShape(3), []float64{1, 2, 3})
	buf, err := mx.Encode(v)
	require.NoError(t, err)

	got, err := mx.Decode(buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestEncodeWithSignatureAndByteOrder(t *testing.T) {
	v := mx.NewChar8Row("payload")
	buf, err := mx.Encode(v, mx.WithSignature(9), mx.WithByteOrder(mx.BigOrder))
	require.NoError(t, err)
	assert.Equal(t, byte(240), buf[0])
	assert.Equal(t, byte(9), buf[1])

	got, err := mx.Decode(buf, mx.WithUserSig(9))
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestEncodeRejectsSignatureAtFormatVersion(t *testing.T) {
	v := mx.NewFloat64(mx.ScalarShape(), []float64{1})
	_, err := mx.Encode(v, mx.WithSignature(240))
	assert.ErrorIs(t, err, mx.ErrInvalidSig)
}

func TestDecodeIntoMutatesTemplateInPlace(t *testing.T) {
	v := mx.NewFloat64(mx.RowShape(2), []float64{5, 6})
	buf, err := mx.Encode(v)
	require.NoError(t, err)

	tmpl := mx.NewFloat64(mx.ColShape(0), nil)
	out, err := mx.DecodeInto(buf, &tmpl)
	require.NoError(t, err)
	assert.Equal(t, mx.Shape{2, 1}, tmpl.Shape)
	assert.Same(t, &tmpl, out)
}

func TestDecodeIntoWithCustomBounds(t *testing.T) {
	v := mx.NewFloat64(mx.ColShape(20), make([]float64, 20))
	buf, err := mx.Encode(v)
	require.NoError(t, err)

	tmpl := mx.NewFloat64(mx.ColShape(0), nil)
	_, err = mx.DecodeInto(buf, &tmpl, mx.WithBounds(4, 4))
	assert.ErrorIs(t, err, mx.ErrNumelLimit)
}

func TestStructConstructionRejectsLongFieldName(t *testing.T) {
	longName := ""
	for i := 0; i < 64; i++ {
		longName += "x"
	}
	_, err := mx.NewStruct(mx.ScalarShape(), []string{longName}, [][]mx.Value{
		{mx.NewFloat64(mx.ScalarShape(), []float64{1})},
	})
	assert.ErrorIs(t, err, mx.ErrFieldNameTooLong)
}

func TestInspectDoesNotRequireMatchingTemplate(t *testing.T) {
	v, err := mx.NewStruct(mx.ScalarShape(), []string{"a", "b"}, [][]mx.Value{
		{mx.NewFloat64(mx.ScalarShape(), []float64{1})},
		{mx.NewChar8Row("hi")},
	})
	require.NoError(t, err)
	buf, err := mx.Encode(v)
	require.NoError(t, err)

	node, err := mx.Inspect(buf)
	require.NoError(t, err)
	assert.Equal(t, mx.Struct, node.Class)
	assert.Equal(t, []string{"a", "b"}, node.Fields)
}
