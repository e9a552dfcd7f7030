package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pointvis"
	"github.com/phanxgames/pointvis/ebitenhost"
)

type runOptions struct {
	points       int
	layout       string
	config       string
	script       string
	exitOnScript bool
	width        int
	height       int
	fps          bool
	shots        string
}

func (c *cli) runCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate points",
		Long: `Open a window showing the points in the chosen layout.

Press L to cycle through layouts. Click a point to select it; click it again
to deselect. A JSON test script can drive layouts, clicks and screenshots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.points, "points", "n", 1000, "number of points")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "initial layout: grid, spiral")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script")
	cmd.Flags().BoolVar(&opts.exitOnScript, "exit", false, "exit when the test script finishes")
	cmd.Flags().IntVar(&opts.width, "width", 1280, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 720, "window height")
	cmd.Flags().BoolVar(&opts.fps, "fps", false, "show the FPS overlay")
	cmd.Flags().StringVar(&opts.shots, "screenshots", ebitenhost.DefaultScreenshotDir, "screenshot directory")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, opts runOptions) error {
	if opts.points < 0 {
		return fmt.Errorf("--points must not be negative, got %d", opts.points)
	}
	cfg, err := loadConfig(opts.config, opts.layout)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runCfg := ebitenhost.RunConfig{
		Title:           "pointvis",
		Width:           opts.width,
		Height:          opts.height,
		ShowFPS:         opts.fps,
		CycleLayouts:    true,
		ExitOnScriptEnd: opts.exitOnScript,
		ScreenshotDir:   opts.shots,
		Logger:          c.logger,
		Context:         cmd.Context(),
	}
	if opts.script != "" {
		if runCfg.Script, err = ebitenhost.LoadTestScriptFile(opts.script); err != nil {
			return err
		}
	}

	var vis *pointvis.Visualization
	vis = pointvis.New(cfg,
		pointvis.WithLogger(c.logger),
		pointvis.WithOnSelect(func(p *pointvis.Point) {
			if p != nil {
				c.logger.Info("selected", "id", p.ID, "index", p.Datum)
			} else {
				c.logger.Info("deselected")
			}
			vis.SetSelected(p)
		}),
	)
	vis.SetPoints(samplePoints(opts.points))
	c.logger.Info("starting", "points", opts.points, "layout", vis.Layout())
	return ebitenhost.Run(vis, runCfg)
}
