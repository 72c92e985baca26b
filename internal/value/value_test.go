package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
)

func TestShapeNumEl(t *testing.T) {
	assert.Equal(t, int64(6), Shape{2, 3}.NumEl())
	assert.Equal(t, int64(0), Shape{0, 5}.NumEl())
	assert.Equal(t, int64(0), Shape{}.NumEl())
}

func TestShapeImpliedNumEl(t *testing.T) {
	assert.Equal(t, int64(5), Shape{0, 5}.ImpliedNumEl())
	assert.Equal(t, int64(1), Shape{0, 0}.ImpliedNumEl())
}

func TestShapeIsScalarAndEmpty(t *testing.T) {
	assert.True(t, Shape{1, 1}.IsScalar())
	assert.False(t, Shape{1, 2}.IsScalar())
	assert.True(t, Shape{0, 0}.IsNormalizedEmpty())
	assert.False(t, Shape{0, 1}.IsNormalizedEmpty())
}

func TestNewStructValidatesFieldNameLength(t *testing.T) {
	longName := make([]byte, 64)
	for i := range longName {
		longName[i] = 'a'
	}
	_, err := NewStruct(ScalarShape(), []string{string(longName)}, [][]Value{{NewFloat64(ScalarShape(), []float64{1})}})
	assert.ErrorIs(t, err, mxerrors.ErrFieldNameTooLong)
}

func TestNewStructValidatesFieldCounts(t *testing.T) {
	shape := ColShape(2)
	_, err := NewStruct(shape, []string{"x"}, [][]Value{{NewFloat64(ScalarShape(), []float64{1})}})
	assert.Error(t, err)
}

func TestNewSparseValidatesClasses(t *testing.T) {
	idx := NewUint32(ColShape(2), []uint32{0, 1})
	nzv := NewFloat64(ColShape(2), []float64{1, 2})
	v, err := NewSparse(ColShape(4), idx, nzv)
	require.NoError(t, err)
	assert.Equal(t, class.Sparse, v.Class)

	_, err = NewSparse(ColShape(4), NewFloat64(ColShape(2), []float64{0, 1}), nzv)
	assert.Error(t, err)
}

func TestNewComplexValidatesShapeMatch(t *testing.T) {
	real := NewFloat64(ColShape(2), []float64{1, 2})
	imag := NewFloat64(ColShape(3), []float64{1, 2, 3})
	_, err := NewComplex(real, imag)
	assert.Error(t, err)

	imagOK := NewFloat64(ColShape(2), []float64{3, 4})
	v, err := NewComplex(real, imagOK)
	require.NoError(t, err)
	assert.Equal(t, class.Complex, v.Class)
}

func TestValueEqual(t *testing.T) {
	a := NewFloat64(ColShape(3), []float64{1, 2, 3})
	b := NewFloat64(ColShape(3), []float64{1, 2, 3})
	c := NewFloat64(ColShape(3), []float64{1, 2, 4})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestValueEqualStructIgnoresFieldOrder(t *testing.T) {
	a, err := NewStruct(ScalarShape(), []string{"x", "y"}, [][]Value{
		{NewFloat64(ScalarShape(), []float64{1})},
		{NewFloat64(ScalarShape(), []float64{2})},
	})
	require.NoError(t, err)
	b, err := NewStruct(ScalarShape(), []string{"y", "x"}, [][]Value{
		{NewFloat64(ScalarShape(), []float64{2})},
		{NewFloat64(ScalarShape(), []float64{1})},
	})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
