package codec

import (
	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// chooseFormat picks the tag's size-format field for shape, following
// the dispatch order in spec §4.2: scalar first, then normalized
// empty, then 2-D small, then general.
func chooseFormat(shape value.Shape) (class.SizeFormat, error) {
	switch {
	case shape.NumEl() == 1:
		return class.FmtScalar, nil
	case shape.IsNormalizedEmpty():
		return class.FmtEmpty, nil
	case len(shape) == 2 && shape.MaxDim() < 256:
		switch {
		case shape[1] == 1:
			return class.FmtColumn, nil
		case shape[0] == 1:
			return class.FmtRow, nil
		default:
			return class.FmtMatrix, nil
		}
	default:
		if len(shape) > maxDims {
			return 0, mxerrors.ErrNdimsLimit
		}
		return class.NarrowestGeneralFormat(shape.MaxDim()), nil
	}
}

// classCompatible implements the template-mode class check (§4.3):
// char8/char16 are mutually acceptable for a char template; numeric
// real only matches the identical numeric class (a float64 template
// slot is never silently fed int32 data); everything else (bool,
// cell, struct, complex) matches only itself. Sparse is handled by
// the caller, which rejects it outright before calling this.
func classCompatible(tmplClass, wireClass class.Class) bool {
	if tmplClass.IsChar() || wireClass.IsChar() {
		return tmplClass.IsChar() && wireClass.IsChar()
	}
	return tmplClass == wireClass
}

// reshapeForTemplate computes the output shape for a value decoded
// against a template whose own shape only fixes a *category*
// (scalar / column / row / matrix), not exact dimensions: scalar
// requires exactly one element; column/row take the wire's element
// count as the single free dimension; matrix (anything else,
// including a 0x0 template) is only compatible with a wire value
// that is itself already 2-D, and its exact dimensions pass through
// unchanged -- a matrix template has two free dimensions, so there is
// no single count to reshape around.
func reshapeForTemplate(tmplShape, wireShape value.Shape) (value.Shape, bool) {
	n := wireShape.NumEl()
	switch {
	case tmplShape.IsScalar():
		if n != 1 {
			return nil, false
		}
		return value.Shape{1, 1}, true
	case len(tmplShape) == 2 && tmplShape[1] == 1 && tmplShape[0] != 1:
		return value.Shape{n, 1}, true
	case len(tmplShape) == 2 && tmplShape[0] == 1 && tmplShape[1] != 1:
		return value.Shape{1, n}, true
	default:
		if len(wireShape) != 2 {
			return nil, false
		}
		return wireShape, true
	}
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
