package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/pointvis"
)

// Output formats for the layout command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type layoutPoint struct {
	Index int     `json:"index" yaml:"index"`
	ID    string  `json:"id" yaml:"id"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Z     float64 `json:"z" yaml:"z"`
}

type layoutResult struct {
	Layout string        `json:"layout" yaml:"layout"`
	Points []layoutPoint `json:"points" yaml:"points"`
}

func (c *cli) layoutCommand() *cobra.Command {
	var (
		points int
		layout string
		format string
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the coordinates a layout assigns",
		Long: `Compute a layout without opening a window and print each point's
coordinates in collection order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if points < 0 {
				return fmt.Errorf("--points must not be negative, got %d", points)
			}
			cfg, err := loadConfig("", layout)
			if err != nil {
				return err
			}
			result := computeLayout(pointvis.Layout(cfg.Layout), samplePoints(points))
			c.logger.Debug("computed layout", "layout", result.Layout, "points", len(result.Points))
			return writeLayout(cmd.OutOrStdout(), result, format)
		},
	}
	cmd.Flags().IntVarP(&points, "points", "n", 16, "number of points")
	cmd.Flags().StringVarP(&layout, "layout", "l", string(pointvis.DefaultLayout), "layout: grid, spiral")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")
	return cmd
}

func computeLayout(layout pointvis.Layout, points []*pointvis.Point) layoutResult {
	pointvis.ComputeLayout(layout, points)
	result := layoutResult{Layout: string(layout.Resolve()), Points: make([]layoutPoint, len(points))}
	for i, p := range points {
		result.Points[i] = layoutPoint{Index: i, ID: p.ID.String(), X: p.X, Y: p.Y, Z: p.Z}
	}
	return result
}

func writeLayout(w io.Writer, result layoutResult, format string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatText, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "index\tx\ty\tz\t\n")
		for _, p := range result.Points {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t\n", p.Index, p.X, p.Y, p.Z)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
