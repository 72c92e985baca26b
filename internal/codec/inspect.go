package codec

import (
	"go.mxcodec.dev/mx/internal/class"
	mxerrors "go.mxcodec.dev/mx/internal/errors"
	"go.mxcodec.dev/mx/internal/value"
)

// Node describes one value in a buffer's tag tree without
// materializing its payload -- the structural view the inspect
// subcommand renders.
type Node struct {
	Class    class.Class
	Shape    value.Shape
	Fields   []string // field names for Struct; the inner real class name for Complex
	Children []Node   // populated for Cell, Struct (one per field, per element), and Sparse (index, then values)
}

// Inspect walks buf's tag tree, reading every tag and shape prefix
// but skipping payload bytes wherever the class permits, so a large
// numeric array costs the same as an empty one to inspect.
func Inspect(buf []byte, userSig byte) (Node, error) {
	d, err := newDecoder(buf, userSig, 0, 0)
	if err != nil {
		return Node{}, err
	}
	n := d.inspectValue()
	if d.err != nil {
		return Node{}, d.err
	}
	if d.i != d.end {
		return Node{}, mxerrors.ErrCorruptBuf
	}
	return n, nil
}

func (d *Decoder) inspectValue() Node {
	if d.err != nil {
		return Node{}
	}
	tag := d.readByte()
	cls, fmtCode := class.SplitTag(tag)
	if !cls.Valid() {
		d.fail(mxerrors.ErrInvalidTag)
		return Node{}
	}
	shape, ok := d.readShape(fmtCode, false)
	if !ok || d.err != nil {
		if d.err == nil {
			d.fail(mxerrors.ErrInvalidTag)
		}
		return Node{}
	}
	node := Node{Class: cls, Shape: shape}
	switch cls {
	case class.Cell:
		n := int(shape.NumEl())
		node.Children = make([]Node, n)
		for i := 0; i < n; i++ {
			node.Children[i] = d.inspectValue()
			if d.err != nil {
				return node
			}
		}
	case class.Struct:
		namesNode := d.inspectValueMaterializingNames()
		node.Fields = namesNode
		n := int(shape.NumEl())
		total := len(namesNode) * n
		node.Children = make([]Node, 0, total)
		for i := 0; i < total; i++ {
			node.Children = append(node.Children, d.inspectValue())
			if d.err != nil {
				return node
			}
		}
	case class.Sparse:
		idx := d.inspectValue()
		if d.err != nil {
			return node
		}
		node.Children = []Node{idx}
		nzv := d.inspectValue()
		if d.err != nil {
			return node
		}
		node.Children = append(node.Children, nzv)
	case class.Complex:
		innerTag := d.readByte()
		realCls, _ := class.SplitTag(innerTag)
		if d.err != nil {
			return node
		}
		width, ok := realCls.FixedWidth()
		if !ok {
			d.fail(mxerrors.ErrUnsupportedClass)
			return node
		}
		node.Fields = []string{realCls.String()}
		d.advance(2 * int(shape.NumEl()) * width)
	default:
		if width, ok := cls.FixedWidth(); ok {
			d.advance(int(shape.NumEl()) * width)
		} else {
			d.fail(mxerrors.ErrUnsupportedClass)
		}
	}
	return node
}

// inspectValueMaterializingNames reads a struct's field-name cell,
// the one part of a struct inspect actually needs to read in full
// (the names themselves), returning the names in declaration order.
func (d *Decoder) inspectValueMaterializingNames() []string {
	v := d.decodeValue(nil)
	if d.err != nil {
		return nil
	}
	if v.Class != class.Cell {
		d.fail(mxerrors.ErrInvalidStruct)
		return nil
	}
	names := make([]string, len(v.Cell))
	for i, nv := range v.Cell {
		names[i] = string(nv.U8)
	}
	return names
}
