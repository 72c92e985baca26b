package cmd

import (
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.mxcodec.dev/mx"
)

var inspectSig uint8

var inspectCmd = &cobra.Command{
	Use:   "inspect <in.bin>",
	Short: "Print an mx buffer's tag tree without materializing payloads.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return pkgerrors.Wrapf(err, "reading %s", args[0])
		}
		node, err := mx.Inspect(buf, mx.WithUserSig(inspectSig))
		if err != nil {
			return pkgerrors.Wrap(err, "inspecting")
		}
		printNode(node, 0)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Uint8Var(&inspectSig, "sig", 42, "expected signature low byte")
}

func printNode(n mx.InspectNode, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s %v\n", indent, n.Class, n.Shape)
	if len(n.Fields) > 0 {
		fmt.Printf("%s  fields: %v\n", indent, n.Fields)
	}
	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}
