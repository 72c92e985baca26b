// Package mx implements a self-describing binary value format for
// exchanging numeric arrays, strings, cell arrays, structs, sparse
// matrices, and complex numbers with a byte-order-agnostic, forward-
// compatible wire encoding.
//
// A Value is a closed sum type: only the class-specific fields its
// Class uses are populated. Build one with a
// constructor (NewFloat64, NewStruct, NewSparse, ...) rather than by
// hand, so the invariant that Class and the populated field agree
// always holds.
//
// Encode produces a buffer with a two-byte self-detecting signature,
// the tagged value tree, and 1-4 bytes of padding bringing the total
// length to a multiple of 4:
//
//	buf, err := mx.Encode(mx.NewFloat64(mx.ColShape(3), []float64{1, 2, 3}))
//
// Decode reconstructs a Value with no prior knowledge of its shape:
//
//	v, err := mx.Decode(buf)
//
// DecodeInto instead overlays the buffer onto a caller-supplied
// template, coercing the wire shape into the template's shape
// category and tolerating struct fields the template doesn't
// mention:
//
//	tmpl := mx.NewFloat64(mx.ColShape(0), nil)
//	out, err := mx.DecodeInto(buf, &tmpl)
package mx
