// Package class holds the wire-stable class code table and the tag
// size-format tables shared by the encoder and decoder. Neither side
// should hardcode a class code or a byte width; both dispatch through
// this package so the two stay in lockstep.
package class

import "fmt"

// Class identifies the element type of a value. Values are the low 5
// bits of a tag byte; 0 is never assigned so that a zeroed Class is
// recognizably invalid.
type Class uint8

const (
	Float64 Class = 1
	Float32 Class = 2
	Int8    Class = 3
	Uint8   Class = 4
	Int16   Class = 5
	Uint16  Class = 6
	Int32   Class = 7
	Uint32  Class = 8
	Int64   Class = 9
	Uint64  Class = 10
	Bool    Class = 11
	Char8   Class = 12
	Char16  Class = 13
	Cell    Class = 14
	Struct  Class = 15
	Sparse  Class = 16
	Complex Class = 17

	// Min and Max bound the valid range of a tag's low 5 bits.
	Min Class = Float64
	Max Class = Complex
)

func (c Class) String() string {
	switch c {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Bool:
		return "bool"
	case Char8:
		return "char8"
	case Char16:
		return "char16"
	case Cell:
		return "cell"
	case Struct:
		return "struct"
	case Sparse:
		return "sparse"
	case Complex:
		return "complex"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the 17 wire classes.
func (c Class) Valid() bool {
	return c >= Min && c <= Max
}

// FixedWidth returns the per-element byte width of a class whose
// payload is a flat array of fixed-size elements (numeric, bool,
// char8/char16). It returns (0, false) for the recursive classes
// (cell, struct, sparse, complex), whose element size isn't a
// constant.
func (c Class) FixedWidth() (int, bool) {
	switch c {
	case Float64, Int64, Uint64:
		return 8, true
	case Float32, Int32, Uint32:
		return 4, true
	case Int16, Uint16, Char16:
		return 2, true
	case Int8, Uint8, Bool, Char8:
		return 1, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether c is one of the ten real numeric
// classes (not bool, char, or a recursive class).
func (c Class) IsNumeric() bool {
	return c >= Float64 && c <= Uint64
}

// IsUnsignedInt reports whether c is one of the unsigned integer
// classes used for sparse index vectors.
func (c Class) IsUnsignedInt() bool {
	return c == Uint8 || c == Uint16 || c == Uint32 || c == Uint64
}

// IsChar reports whether c is char8 or char16.
func (c Class) IsChar() bool {
	return c == Char8 || c == Char16
}

// SizeFormat is the 3-bit size-format selector stored in the high
// bits of a tag byte.
type SizeFormat uint8

const (
	FmtScalar SizeFormat = 0
	FmtColumn SizeFormat = 1
	FmtRow    SizeFormat = 2
	FmtMatrix SizeFormat = 3
	FmtEmpty  SizeFormat = 4
	FmtGen8   SizeFormat = 5
	FmtGen16  SizeFormat = 6
	FmtGen32  SizeFormat = 7
)

// DimWidth returns the byte width of each dimension value for a
// general-form size format (FmtGen8/16/32). It panics if called on
// a non-general format; callers only need it after already having
// branched on the format.
func (f SizeFormat) DimWidth() int {
	switch f {
	case FmtGen8:
		return 1
	case FmtGen16:
		return 2
	case FmtGen32:
		return 4
	default:
		panic("class: DimWidth called on non-general size format")
	}
}

// NarrowestGeneralFormat returns the smallest general-form size
// format (FmtGen8/16/32) whose per-dimension width can represent
// maxDim, the largest dimension in a shape.
func NarrowestGeneralFormat(maxDim int64) SizeFormat {
	switch {
	case maxDim < 1<<8:
		return FmtGen8
	case maxDim < 1<<16:
		return FmtGen16
	default:
		return FmtGen32
	}
}

// NarrowestUnsignedClass returns the smallest unsigned integer class
// (Uint8/16/32) whose range covers max. It never returns Uint64;
// the spec bounds sparse index vectors and general shapes to
// INT32_MAX, so 32 bits always suffices.
func NarrowestUnsignedClass(max int64) Class {
	switch {
	case max < 1<<8:
		return Uint8
	case max < 1<<16:
		return Uint16
	default:
		return Uint32
	}
}

// Tag composes a tag byte from a class and size format.
func Tag(c Class, f SizeFormat) byte {
	return byte(c)&0x1F | byte(f)<<5
}

// SplitTag decomposes a tag byte into its class and size format.
func SplitTag(tag byte) (Class, SizeFormat) {
	return Class(tag & 0x1F), SizeFormat(tag >> 5)
}
