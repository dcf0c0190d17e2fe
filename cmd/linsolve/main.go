// SPDX-License-Identifier: MIT

// Command linsolve solves dense linear systems from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/linsys/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
