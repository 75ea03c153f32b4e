// Command cyclops logs a lift's weight for today and shows progress.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/cyclops/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cyclops: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
