package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

func roundTrip(t *testing.T, v value.Value, order ByteOrder) value.Value {
	t.Helper()
	buf, err := Encode(v, DefaultUserSig, order)
	require.NoError(t, err)
	require.Zero(t, len(buf)%4, "buffer length must be a multiple of 4")
	got, err := Decode(buf, DefaultUserSig, DefaultNumericBound, DefaultCharBound)
	require.NoError(t, err)
	return got
}

func TestRoundTripScalarFloat64(t *testing.T) {
	v := value.NewFloat64(value.ScalarShape(), []float64{3.5})
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got), cmp.Diff(v, got))
}

func TestRoundTripColumnVector(t *testing.T) {
	v := value.NewInt32(value.ColShape(4), []int32{1, -2, 3, -4})
	got := roundTrip(t, v, Little)
	assert.True(t, v.Equal(got))
}

func TestRoundTripBigEndian(t *testing.T) {
	v := value.NewUint16(value.RowShape(3), []uint16{1, 2, 3})
	got := roundTrip(t, v, Big)
	assert.True(t, v.Equal(got))
}

func TestRoundTripNormalizedEmpty(t *testing.T) {
	v := value.NewFloat64(value.Shape{0, 0}, nil)
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripCharRow(t *testing.T) {
	v := value.NewChar8Row("hello")
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripBool(t *testing.T) {
	v := value.NewBool(value.ColShape(3), []bool{true, false, true})
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripGeneralShape(t *testing.T) {
	shape := value.Shape{2, 3, 4}
	n := int(shape.NumEl())
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	v := value.NewFloat64(shape, data)
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripCell(t *testing.T) {
	v := value.NewCell(value.RowShape(2), []value.Value{
		value.NewFloat64(value.ScalarShape(), []float64{1}),
		value.NewChar8Row("x"),
	})
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripStruct(t *testing.T) {
	v, err := value.NewStruct(value.ScalarShape(), []string{"a", "b"}, [][]value.Value{
		{value.NewFloat64(value.ScalarShape(), []float64{1})},
		{value.NewChar8Row("hi")},
	})
	require.NoError(t, err)
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripSparse(t *testing.T) {
	idx := value.NewUint8(value.ColShape(2), []uint8{0, 3})
	nzv := value.NewFloat64(value.ColShape(2), []float64{1.5, 2.5})
	v, err := value.NewSparse(value.ColShape(4), idx, nzv)
	require.NoError(t, err)
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestRoundTripComplex(t *testing.T) {
	real := value.NewFloat64(value.ColShape(2), []float64{1, 2})
	imag := value.NewFloat64(value.ColShape(2), []float64{3, 4})
	v, err := value.NewComplex(real, imag)
	require.NoError(t, err)
	got := roundTrip(t, v, Native)
	assert.True(t, v.Equal(got))
}

func TestPaddingLength(t *testing.T) {
	v := value.NewChar8Row("ab") // 2 sig + 1 tag + 1 shape + 2 payload = 6 bytes before pad
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)
	assert.Zero(t, len(buf)%4)
	final := buf[len(buf)-1]
	p := int(^final & 0xFF)
	assert.GreaterOrEqual(t, p, 1)
	assert.LessOrEqual(t, p, 4)
	for i := len(buf) - p; i < len(buf); i++ {
		assert.Equal(t, final, buf[i])
	}
}

func TestSignatureSelfDetection(t *testing.T) {
	v := value.NewFloat64(value.ScalarShape(), []float64{1})
	littleBuf, err := Encode(v, DefaultUserSig, Little)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserSig, littleBuf[0])
	assert.Equal(t, FormatVersion, littleBuf[1])

	bigBuf, err := Encode(v, DefaultUserSig, Big)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, bigBuf[0])
	assert.Equal(t, DefaultUserSig, bigBuf[1])

	_, err = Decode(littleBuf, DefaultUserSig, DefaultNumericBound, DefaultCharBound)
	assert.NoError(t, err)
	_, err = Decode(bigBuf, DefaultUserSig, DefaultNumericBound, DefaultCharBound)
	assert.NoError(t, err)
}

func TestDecodeRejectsWrongUserSig(t *testing.T) {
	v := value.NewFloat64(value.ScalarShape(), []float64{1})
	buf, err := Encode(v, 7, Native)
	require.NoError(t, err)
	_, err = Decode(buf, 8, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrInvalidSig)
}

func TestDecodeRejectsBadPadding(t *testing.T) {
	v := value.NewFloat64(value.ScalarShape(), []float64{1})
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)
	buf[len(buf)-1] ^= 0xFF
	_, err = Decode(buf, DefaultUserSig, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrInvalidPad)
}

func TestDecodeRejectsNonMultipleOf4(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, DefaultUserSig, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrInvalidBuf)
}

func TestDecodeIntoReshapesColumnTemplate(t *testing.T) {
	v := value.NewFloat64(value.RowShape(3), []float64{1, 2, 3})
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewFloat64(value.ColShape(0), nil)
	got, err := DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	require.NoError(t, err)
	assert.Equal(t, value.Shape{3, 1}, got.Shape)
	assert.Equal(t, []float64{1, 2, 3}, got.F64)
}

func TestDecodeIntoRejectsClassMismatch(t *testing.T) {
	v := value.NewFloat64(value.ScalarShape(), []float64{1})
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewInt32(value.ScalarShape(), nil)
	_, err = DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrClassMismatch)
}

func TestDecodeIntoRejectsSparse(t *testing.T) {
	idx := value.NewUint8(value.ColShape(1), []uint8{0})
	nzv := value.NewFloat64(value.ColShape(1), []float64{1})
	sparse, err := value.NewSparse(value.ColShape(2), idx, nzv)
	require.NoError(t, err)
	buf, err := Encode(sparse, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewFloat64(value.ColShape(0), nil)
	_, err = DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrClassMismatch)
}

func TestDecodeIntoStructToleratesUnknownAndMissingFields(t *testing.T) {
	wire, err := value.NewStruct(value.ScalarShape(), []string{"a", "b"}, [][]value.Value{
		{value.NewFloat64(value.ScalarShape(), []float64{1})},
		{value.NewFloat64(value.ScalarShape(), []float64{2})},
	})
	require.NoError(t, err)
	buf, err := Encode(wire, DefaultUserSig, Native)
	require.NoError(t, err)

	// Template only knows about "a" and also declares "c", which the
	// wire buffer doesn't have -- "c" should retain its prior value.
	tmpl, err := value.NewStruct(value.ScalarShape(), []string{"a", "c"}, [][]value.Value{
		{value.NewFloat64(value.ScalarShape(), []float64{0})},
		{value.NewChar8Row("untouched")},
	})
	require.NoError(t, err)

	got, err := DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	require.NoError(t, err)
	require.Len(t, got.FieldNames, 2)
	assert.Equal(t, []float64{1}, got.Fields[0][0].F64)
	assert.Equal(t, "untouched", string(got.Fields[1][0].U8))
}

func TestDecodeIntoRejectsWhenNoFieldMatches(t *testing.T) {
	wire, err := value.NewStruct(value.ScalarShape(), []string{"z"}, [][]value.Value{
		{value.NewFloat64(value.ScalarShape(), []float64{1})},
	})
	require.NoError(t, err)
	buf, err := Encode(wire, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl, err := value.NewStruct(value.ScalarShape(), []string{"a"}, [][]value.Value{
		{value.NewFloat64(value.ScalarShape(), []float64{0})},
	})
	require.NoError(t, err)

	_, err = DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrInvalidStruct)
}

func TestDecodeIntoEnforcesNumelBound(t *testing.T) {
	v := value.NewFloat64(value.ColShape(10), make([]float64, 10))
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewFloat64(value.ColShape(0), nil)
	_, err = DecodeInto(buf, DefaultUserSig, tmpl, 5, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrNumelLimit)
}

func TestGeneralFormatRejectsHighNdimsInTemplateMode(t *testing.T) {
	shape := value.Shape{2, 2, 2}
	v := value.NewFloat64(shape, make([]float64, 8))
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewFloat64(value.ColShape(0), nil)
	_, err = DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrNdimsLimit)
}

func TestChooseFormatPicksNarrowestGeneralForm(t *testing.T) {
	f, err := chooseFormat(value.Shape{1, 300, 2})
	require.NoError(t, err)
	assert.Equal(t, class.FmtGen16, f)
}

func TestDecodeIntoChar16AgainstNonCharTemplateIsUnicodeChar(t *testing.T) {
	v := value.NewChar16(value.RowShape(2), []uint16{0x4e2d, 0x6587})
	buf, err := Encode(v, DefaultUserSig, Native)
	require.NoError(t, err)

	tmpl := value.NewFloat64(value.ColShape(0), nil)
	_, err = DecodeInto(buf, DefaultUserSig, tmpl, DefaultNumericBound, DefaultCharBound)
	assert.ErrorIs(t, err, mxerrors.ErrUnicodeChar)
}

func TestClassCompatibleCharsInterchangeable(t *testing.T) {
	assert.True(t, classCompatible(class.Char8, class.Char16))
	assert.True(t, classCompatible(class.Char16, class.Char8))
	assert.False(t, classCompatible(class.Float64, class.Float32))
}
