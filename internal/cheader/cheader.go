// Package cheader generates a C struct/enum header mirroring a
// struct template's field layout, so a non-Go reader of the wire
// format can at least see the field names, order, and declared
// classes without linking against this module. It is a generator,
// not a second codec: nothing here reads or writes the wire format.
package cheader

import (
	"fmt"
	"strings"

	"go.mxcodec.dev/mx/internal/class"
	"go.mxcodec.dev/mx/internal/manifest"
)

// cType returns the C type used to represent a single element of cls
// in the generated struct.
func cType(cls class.Class) (string, bool) {
	switch cls {
	case class.Float64:
		return "double", true
	case class.Float32:
		return "float", true
	case class.Int8:
		return "int8_t", true
	case class.Uint8, class.Char8:
		return "uint8_t", true
	case class.Int16:
		return "int16_t", true
	case class.Uint16, class.Char16:
		return "uint16_t", true
	case class.Int32:
		return "int32_t", true
	case class.Uint32:
		return "uint32_t", true
	case class.Int64:
		return "int64_t", true
	case class.Uint64:
		return "uint64_t", true
	case class.Bool:
		return "uint8_t", true
	default:
		return "", false
	}
}

// Generate renders a C header for m: an enum naming the 17 wire
// classes, and a struct declaring one field per manifest entry (cell
// fields are emitted as an opaque pointer, since their element count
// isn't fixed at generation time).
func Generate(guard string, m *manifest.Manifest) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <stdint.h>\n\n")

	b.WriteString("enum mx_class {\n")
	for c := class.Min; c <= class.Max; c++ {
		fmt.Fprintf(&b, "\tMX_CLASS_%s = %d,\n", strings.ToUpper(c.String()), uint8(c))
	}
	b.WriteString("};\n\n")

	b.WriteString("struct mx_record {\n")
	for _, f := range m.Fields {
		cls, err := classOf(f.Class)
		if err != nil {
			return "", err
		}
		ctype, ok := cType(cls)
		if !ok {
			fmt.Fprintf(&b, "\tvoid *%s; /* %s, variable-length */\n", f.Name, f.Class)
			continue
		}
		n := shapeCount(f.Shape)
		if n == 1 {
			fmt.Fprintf(&b, "\t%s %s;\n", ctype, f.Name)
		} else {
			fmt.Fprintf(&b, "\t%s %s[%d];\n", ctype, f.Name, n)
		}
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "#endif /* %s */\n", guard)
	return b.String(), nil
}

func shapeCount(shape []int64) int64 {
	n := int64(1)
	for _, d := range shape {
		if d == 0 {
			return 0
		}
		n *= d
	}
	if len(shape) == 0 {
		return 0
	}
	return n
}

func classOf(name string) (class.Class, error) {
	for c := class.Min; c <= class.Max; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("cheader: unknown class %q", name)
}
