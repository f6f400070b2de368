package cmd

import (
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/taurus-i/merkle-mountain-range/cli"
)

// initCmd writes a default configuration file for the demo.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file for the mmr demo.",
	Run:   initRunFunc,
}

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	file := path.Join(dir, "mmrdemo.toml")
	if err := cli.DefaultDemoConfig().Save(file); err != nil {
		log.Fatalf("Couldn't save demo config: %v", err)
	}
}
