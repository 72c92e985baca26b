// Package manifest loads the YAML template manifest the CLI's
// decode --template and genheader subcommands read, following the
// same declarative-config-file idiom bureau's tooling uses for its
// own YAML config (gopkg.in/yaml.v3).
package manifest

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.mxcodec.dev/mx/internal/class"
	"go.mxcodec.dev/mx/internal/value"
)

// Field describes one struct field, or, when used standalone, a
// single scalar/vector template. Numbers and Text are only consulted
// by BuildValue (the encode subcommand's literal-data path);
// BuildTemplate ignores them and always produces a zero value.
type Field struct {
	Name    string    `yaml:"name"`
	Class   string    `yaml:"class"`
	Shape   []int64   `yaml:"shape"`
	Numbers []float64 `yaml:"data,omitempty"`
	Text    string    `yaml:"text,omitempty"`
}

// Manifest is a struct template: a named list of fields, each with a
// wire class and a shape category.
type Manifest struct {
	Fields []Field `yaml:"fields"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading manifest %s", path)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, pkgerrors.Wrapf(err, "parsing manifest %s", path)
	}
	if len(m.Fields) == 0 {
		return nil, pkgerrors.Errorf("manifest %s declares no fields", path)
	}
	return &m, nil
}

func classFromName(name string) (class.Class, error) {
	switch name {
	case "float64":
		return class.Float64, nil
	case "float32":
		return class.Float32, nil
	case "int8":
		return class.Int8, nil
	case "uint8":
		return class.Uint8, nil
	case "int16":
		return class.Int16, nil
	case "uint16":
		return class.Uint16, nil
	case "int32":
		return class.Int32, nil
	case "uint32":
		return class.Uint32, nil
	case "int64":
		return class.Int64, nil
	case "uint64":
		return class.Uint64, nil
	case "bool":
		return class.Bool, nil
	case "char8":
		return class.Char8, nil
	case "char16":
		return class.Char16, nil
	case "cell":
		return class.Cell, nil
	default:
		return 0, pkgerrors.Errorf("unknown or unsupported manifest class %q", name)
	}
}

// zeroValue builds an empty template Value for a single field: an
// N-element (or 0-element) flat array of the declared class and
// shape, used as the per-field template DecodeInto overlays onto.
func zeroValue(f Field) (value.Value, error) {
	cls, err := classFromName(f.Class)
	if err != nil {
		return value.Value{}, err
	}
	shape := value.Shape(f.Shape)
	n := int(shape.NumEl())
	switch cls {
	case class.Float64:
		return value.NewFloat64(shape, make([]float64, n)), nil
	case class.Float32:
		return value.NewFloat32(shape, make([]float32, n)), nil
	case class.Int8:
		return value.NewInt8(shape, make([]int8, n)), nil
	case class.Uint8:
		return value.NewUint8(shape, make([]uint8, n)), nil
	case class.Int16:
		return value.NewInt16(shape, make([]int16, n)), nil
	case class.Uint16:
		return value.NewUint16(shape, make([]uint16, n)), nil
	case class.Int32:
		return value.NewInt32(shape, make([]int32, n)), nil
	case class.Uint32:
		return value.NewUint32(shape, make([]uint32, n)), nil
	case class.Int64:
		return value.NewInt64(shape, make([]int64, n)), nil
	case class.Uint64:
		return value.NewUint64(shape, make([]uint64, n)), nil
	case class.Bool:
		return value.NewBool(shape, make([]bool, n)), nil
	case class.Char8:
		return value.NewChar8(shape, make([]byte, n)), nil
	case class.Char16:
		return value.NewChar16(shape, make([]uint16, n)), nil
	case class.Cell:
		return value.NewCell(shape, make([]value.Value, n)), nil
	default:
		return value.Value{}, fmt.Errorf("manifest: unhandled class %s", cls)
	}
}

// BuildValue assembles a populated struct Value from the manifest's
// literal data, for the encode subcommand. Numeric fields read
// Numbers (narrowed to the declared class), char8 fields read Text.
func (m *Manifest) BuildValue() (value.Value, error) {
	names := make([]string, len(m.Fields))
	fields := make([][]value.Value, len(m.Fields))
	for i, f := range m.Fields {
		v, err := literalValue(f)
		if err != nil {
			return value.Value{}, err
		}
		names[i] = f.Name
		fields[i] = []value.Value{v}
	}
	return value.NewStruct(value.ScalarShape(), names, fields)
}

func literalValue(f Field) (value.Value, error) {
	cls, err := classFromName(f.Class)
	if err != nil {
		return value.Value{}, err
	}
	if cls == class.Char8 {
		return value.NewChar8Row(f.Text), nil
	}
	shape := value.Shape(f.Shape)
	n := len(f.Numbers)
	if int64(n) != shape.NumEl() {
		return value.Value{}, pkgerrors.Errorf("field %q: %d data values but shape implies %d", f.Name, n, shape.NumEl())
	}
	switch cls {
	case class.Float64:
		return value.NewFloat64(shape, f.Numbers), nil
	case class.Float32:
		out := make([]float32, n)
		for i, x := range f.Numbers {
			out[i] = float32(x)
		}
		return value.NewFloat32(shape, out), nil
	case class.Int8:
		out := make([]int8, n)
		for i, x := range f.Numbers {
			out[i] = int8(x)
		}
		return value.NewInt8(shape, out), nil
	case class.Uint8:
		out := make([]uint8, n)
		for i, x := range f.Numbers {
			out[i] = uint8(x)
		}
		return value.NewUint8(shape, out), nil
	case class.Int16:
		out := make([]int16, n)
		for i, x := range f.Numbers {
			out[i] = int16(x)
		}
		return value.NewInt16(shape, out), nil
	case class.Uint16:
		out := make([]uint16, n)
		for i, x := range f.Numbers {
			out[i] = uint16(x)
		}
		return value.NewUint16(shape, out), nil
	case class.Int32:
		out := make([]int32, n)
		for i, x := range f.Numbers {
			out[i] = int32(x)
		}
		return value.NewInt32(shape, out), nil
	case class.Uint32:
		out := make([]uint32, n)
		for i, x := range f.Numbers {
			out[i] = uint32(x)
		}
		return value.NewUint32(shape, out), nil
	case class.Int64:
		out := make([]int64, n)
		for i, x := range f.Numbers {
			out[i] = int64(x)
		}
		return value.NewInt64(shape, out), nil
	case class.Uint64:
		out := make([]uint64, n)
		for i, x := range f.Numbers {
			out[i] = uint64(x)
		}
		return value.NewUint64(shape, out), nil
	case class.Bool:
		out := make([]bool, n)
		for i, x := range f.Numbers {
			out[i] = x != 0
		}
		return value.NewBool(shape, out), nil
	default:
		return value.Value{}, pkgerrors.Errorf("field %q: class %s unsupported as literal encode data", f.Name, cls)
	}
}

// BuildTemplate assembles the struct template DecodeInto overlays
// the manifest's buffer onto: one field per manifest entry, each
// holding a single representative zero value.
func (m *Manifest) BuildTemplate() (value.Value, error) {
	names := make([]string, len(m.Fields))
	fields := make([][]value.Value, len(m.Fields))
	for i, f := range m.Fields {
		zv, err := zeroValue(f)
		if err != nil {
			return value.Value{}, err
		}
		names[i] = f.Name
		fields[i] = []value.Value{zv}
	}
	return value.NewStruct(value.ScalarShape(), names, fields)
}
