package cmd

import (
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.mxcodec.dev/mx/internal/cheader"
	"go.mxcodec.dev/mx/internal/manifest"
)

var genheaderGuard string

var genheaderCmd = &cobra.Command{
	Use:   "genheader <template.yaml> <out.h>",
	Short: "Emit a C header mirroring a struct template's field layout.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		guard := genheaderGuard
		if guard == "" {
			guard = strings.ToUpper(strings.TrimSuffix(args[1], ".h")) + "_H"
			guard = strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(guard)
		}
		src, err := cheader.Generate(guard, m)
		if err != nil {
			return pkgerrors.Wrap(err, "generating header")
		}
		if err := os.WriteFile(args[1], []byte(src), 0o644); err != nil {
			return pkgerrors.Wrapf(err, "writing %s", args[1])
		}
		return nil
	},
}

func init() {
	genheaderCmd.Flags().StringVar(&genheaderGuard, "guard", "", "include guard macro name (default derived from output path)")
}
