package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.mxcodec.dev/mx"
	"go.mxcodec.dev/mx/internal/manifest"
)

var decodeTemplatePath string
var decodeSig uint8

var decodeCmd = &cobra.Command{
	Use:   "decode <in.bin>",
	Short: "Decode an mx buffer and print its shape.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return pkgerrors.Wrapf(err, "reading %s", args[0])
		}

		if decodeTemplatePath == "" {
			v, err := mx.Decode(buf, mx.WithUserSig(decodeSig))
			if err != nil {
				return pkgerrors.Wrap(err, "decoding")
			}
			printValue(v)
			return nil
		}

		m, err := manifest.Load(decodeTemplatePath)
		if err != nil {
			return err
		}
		tmpl, err := m.BuildTemplate()
		if err != nil {
			return pkgerrors.Wrap(err, "building template from manifest")
		}
		out, err := mx.DecodeInto(buf, &tmpl, mx.WithUserSig(decodeSig))
		if err != nil {
			return pkgerrors.Wrap(err, "decoding into template")
		}
		printValue(*out)
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeTemplatePath, "template", "", "YAML manifest describing a struct template to decode into")
	decodeCmd.Flags().Uint8Var(&decodeSig, "sig", 42, "expected signature low byte")
}

func printValue(v mx.Value) {
	fmt.Printf("class=%s shape=%v\n", v.Class, v.Shape)
	if v.Class != mx.Struct {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "class", "shape"})
	for i, name := range v.FieldNames {
		if len(v.Fields[i]) == 0 {
			table.Append([]string{name, "-", "-"})
			continue
		}
		fv := v.Fields[i][0]
		table.Append([]string{name, fv.Class.String(), fmt.Sprint(fv.Shape)})
	}
	table.Render()
}
