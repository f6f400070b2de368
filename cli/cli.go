// Package cli provides the command scaffolding shared by the mmr
// executables.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taurus-i/merkle-mountain-range/internal"
)

// cobraCommand is implemented by every command builder in this package.
type cobraCommand interface {
	Build() *cobra.Command
}

// A rootCommand creates an executable's root command that hosts all
// subcommands.
type rootCommand struct {
	use   string
	short string
	long  string
}

var _ cobraCommand = (*rootCommand)(nil)

// NewRootCommand constructs a new root command for the given executable's
// use, short and long descriptions.
func NewRootCommand(use, short, long string) *cobra.Command {
	rootCmd := &rootCommand{
		use:   use,
		short: short,
		long:  long,
	}
	return rootCmd.Build()
}

func (rootCmd *rootCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   rootCmd.use,
		Short: rootCmd.short,
		Long:  rootCmd.long,
	}
	return &cmd
}

// A versionCommand displays an executable's version.
type versionCommand struct {
	appName string
}

var _ cobraCommand = (*versionCommand)(nil)

// NewVersionCommand constructs the version subcommand for the given
// executable's appName.
func NewVersionCommand(appName string) *cobra.Command {
	versCmd := &versionCommand{
		appName: appName,
	}
	return versCmd.Build()
}

func (versCmd *versionCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + versCmd.appName + ".",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versCmd.appName + " v" + internal.Version)
		},
	}
	return &cmd
}

// Execute runs the root command with all subcommands attached and exits
// non-zero on error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
