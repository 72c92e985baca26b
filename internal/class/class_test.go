package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRoundTrip(t *testing.T) {
	for c := Min; c <= Max; c++ {
		for _, f := range []SizeFormat{FmtScalar, FmtColumn, FmtRow, FmtMatrix, FmtEmpty, FmtGen8, FmtGen16, FmtGen32} {
			tag := Tag(c, f)
			gotClass, gotFmt := SplitTag(tag)
			assert.Equal(t, c, gotClass)
			assert.Equal(t, f, gotFmt)
		}
	}
}

func TestClassValid(t *testing.T) {
	assert.True(t, Float64.Valid())
	assert.True(t, Complex.Valid())
	assert.False(t, Class(0).Valid())
	assert.False(t, Class(18).Valid())
}

func TestFixedWidth(t *testing.T) {
	cases := []struct {
		c     Class
		width int
	}{
		{Float64, 8}, {Int64, 8}, {Uint64, 8},
		{Float32, 4}, {Int32, 4}, {Uint32, 4},
		{Int16, 2}, {Uint16, 2}, {Char16, 2},
		{Int8, 1}, {Uint8, 1}, {Bool, 1}, {Char8, 1},
	}
	for _, tc := range cases {
		w, ok := tc.c.FixedWidth()
		require.True(t, ok, tc.c)
		assert.Equal(t, tc.width, w, tc.c)
	}
	for _, c := range []Class{Cell, Struct, Sparse, Complex} {
		_, ok := c.FixedWidth()
		assert.False(t, ok, c)
	}
}

func TestNarrowestGeneralFormat(t *testing.T) {
	assert.Equal(t, FmtGen8, NarrowestGeneralFormat(255))
	assert.Equal(t, FmtGen16, NarrowestGeneralFormat(256))
	assert.Equal(t, FmtGen16, NarrowestGeneralFormat(65535))
	assert.Equal(t, FmtGen32, NarrowestGeneralFormat(65536))
}

func TestNarrowestUnsignedClass(t *testing.T) {
	assert.Equal(t, Uint8, NarrowestUnsignedClass(255))
	assert.Equal(t, Uint16, NarrowestUnsignedClass(256))
	assert.Equal(t, Uint32, NarrowestUnsignedClass(1<<20))
}

func TestIsUnsignedInt(t *testing.T) {
	for _, c := range []Class{Uint8, Uint16, Uint32, Uint64} {
		assert.True(t, c.IsUnsignedInt(), c)
	}
	for _, c := range []Class{Int8, Int16, Int32, Int64, Float32, Float64, Bool} {
		assert.False(t, c.IsUnsignedInt(), c)
	}
}

func TestIsChar(t *testing.T) {
	assert.True(t, Char8.IsChar())
	assert.True(t, Char16.IsChar())
	assert.False(t, Uint8.IsChar())
}
