// Package cmd implements the CLI commands for the mmr demonstration
// harness.
package cmd

import (
	"github.com/taurus-i/merkle-mountain-range/cli"
)

// RootCmd represents the base "mmrdemo" command when called without any
// subcommands.
var RootCmd = cli.NewRootCommand("mmrdemo",
	"Merkle Mountain Range accumulator demo",
	`
      /\          /\
     /  \    /\  /  \      /\
    /    \  /  \/    \    /  \
   m m r  \/  d e m o \  /    \
`)

func init() {
	RootCmd.AddCommand(cli.NewVersionCommand("mmrdemo"))
}
