// Command mxcodec is a thin CLI shell around the mx package's
// Encode/Decode entry points, for exercising the wire format against
// files on disk without writing Go code.
package main

import "go.mxcodec.dev/mx/cmd/mxcodec/cmd"

func main() {
	cmd.Execute()
}
