package cmd

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.mxcodec.dev/mx"
	"go.mxcodec.dev/mx/internal/manifest"
)

var encodeSig uint8
var encodeBigEndian bool

var encodeCmd = &cobra.Command{
	Use:   "encode <manifest.yaml> <out.bin>",
	Short: "Encode a YAML data manifest into an mx buffer.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		v, err := m.BuildValue()
		if err != nil {
			return pkgerrors.Wrap(err, "building value from manifest")
		}
		opts := []mx.EncodeOption{mx.WithSignature(encodeSig)}
		if encodeBigEndian {
			opts = append(opts, mx.WithByteOrder(mx.BigOrder))
		}
		buf, err := mx.Encode(v, opts...)
		if err != nil {
			return pkgerrors.Wrap(err, "encoding")
		}
		if err := os.WriteFile(args[1], buf, 0o644); err != nil {
			return pkgerrors.Wrapf(err, "writing %s", args[1])
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().Uint8Var(&encodeSig, "sig", 42, "signature low byte")
	encodeCmd.Flags().BoolVar(&encodeBigEndian, "big-endian", false, "write multi-byte values big-endian")
}
