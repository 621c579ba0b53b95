// Command numval evaluates and checks dynamically tagged numeric values.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/numval/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
