// Executable demonstration harness for the Merkle Mountain Range
// accumulator.
package main

import (
	"github.com/taurus-i/merkle-mountain-range/cli"
	"github.com/taurus-i/merkle-mountain-range/cmd/mmrdemo/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
