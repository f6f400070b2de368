package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taurus-i/merkle-mountain-range/svg"
)

var layouts = map[string]svg.Layout{
	"topdown":  svg.TopDown,
	"bottomup": svg.BottomUp,
	"centered": svg.BottomUpCentered,
	"anchored": svg.BottomUpAnchored,
}

// renderCmd draws the configured range as an SVG diagram.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the demo range as an SVG diagram.",
	Run:   renderRunFunc,
}

func init() {
	RootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("config", "c", "mmrdemo.toml", "Path to the demo configuration file")
	renderCmd.Flags().StringP("layout", "l", "anchored", "Diagram layout: topdown, bottomup, centered or anchored")
	renderCmd.Flags().StringP("out", "o", "", "Write the SVG to this file instead of stdout")
}

func renderRunFunc(cmd *cobra.Command, args []string) {
	conf := loadConfig(cmd)
	logger := newLogger(conf)
	defer func() { _ = logger.Sync() }()

	layoutName := cmd.Flag("layout").Value.String()
	layout, ok := layouts[layoutName]
	if !ok {
		logger.Error("unknown layout", "layout", layoutName)
		os.Exit(-1)
	}

	r, err := conf.NewRange()
	if err != nil {
		logger.Error("couldn't build the demo range", "error", err)
		os.Exit(-1)
	}

	diagram := svg.Render(r.Levels(), layout, nil)

	out := cmd.Flag("out").Value.String()
	if out == "" {
		fmt.Println(diagram)
		return
	}
	if err := os.WriteFile(out, []byte(diagram), 0644); err != nil {
		logger.Error("couldn't write the diagram", "path", out, "error", err)
		os.Exit(-1)
	}
	logger.Info("wrote diagram", "path", out, "layout", layoutName)
}
