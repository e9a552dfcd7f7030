package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pointvis"
)

// Set via ldflags: -X main.version=...
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli holds state shared by all commands.
type cli struct {
	logger *log.Logger
	out    io.Writer
}

func newCLI(w io.Writer, level log.Level) *cli {
	return &cli{logger: pointvis.NewLogger(w, level), out: w}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pointvis",
		Short:        "Lay out and animate point collections",
		Long:         `pointvis arranges a collection of points into a grid or spiral and animates them between layouts. Click a point to select it.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.AddCommand(c.runCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.versionCommand())
	return root
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "pointvis %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return err
		},
	}
}

// loadConfig reads path, or returns the defaults for an empty path. The
// layout flag overrides the file when set.
func loadConfig(path, layout string) (pointvis.Config, error) {
	cfg := pointvis.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = pointvis.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if layout != "" {
		l, ok := pointvis.ParseLayout(layout)
		if !ok {
			return cfg, fmt.Errorf("%w: unknown layout %q (have %v)", pointvis.ErrInvalidConfig, layout, pointvis.Layouts())
		}
		cfg.Layout = string(l)
	}
	return cfg, nil
}

// samplePoints creates n points whose datum is their index.
func samplePoints(n int) []*pointvis.Point {
	return pointvis.NewPoints(n, func(i int) any { return i })
}
