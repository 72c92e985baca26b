package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetPreservesSentinel(t *testing.T) {
	wrapped := Offset(ErrInvalidTag, 12)
	assert.ErrorIs(t, wrapped, ErrInvalidTag)
	assert.Contains(t, wrapped.Error(), "offset 12")
}

func TestPathPreservesSentinel(t *testing.T) {
	wrapped := Path(ErrClassMismatch, "fields.a")
	assert.ErrorIs(t, wrapped, ErrClassMismatch)
	assert.Contains(t, wrapped.Error(), "fields.a")
}

func TestDimsIsSentinel(t *testing.T) {
	d := Dims{Sentinel: ErrNumelLimit, Got: 10, Max: 4}
	assert.True(t, errors.Is(d, ErrNumelLimit))
	assert.False(t, errors.Is(d, ErrBufLimit))
}

func TestOffsetNilIsNil(t *testing.T) {
	assert.NoError(t, Offset(nil, 0))
}
