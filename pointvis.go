package pointvis

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with components in [0, 1], as written into the
// per-instance color buffer.
type Color struct {
	R, G, B float64
}

// DefaultColorHex and SelectedColorHex are the stock instance colors.
const (
	DefaultColorHex  = "#888"
	SelectedColorHex = "#6f6"
)

var (
	// DefaultColor tints every point that is not selected.
	DefaultColor = mustParseColor(DefaultColorHex)
	// SelectedColor tints the selected point.
	SelectedColor = mustParseColor(SelectedColorHex)
)

// ParseColor parses a "#rgb" or "#rrggbb" hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

func mustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Stage names one step of the update pipeline. Stages always run in
// declaration order.
type Stage uint8

const (
	StageCaptureSource Stage = iota // copy live coordinates into source
	StageRunLayout                  // compute the new arrangement into live coordinates
	StageCaptureTarget              // copy live coordinates into target
	StageRestoreSource              // put live coordinates back at source (progress 0)
	StageAnimate                    // advance progress and interpolate
	StageSyncInstances              // write transforms into the renderable
	StageSyncColors                 // write colors into the renderable
	stageCount
)

var stageNames = [stageCount]string{
	"capture-source",
	"run-layout",
	"capture-target",
	"restore-source",
	"animate",
	"sync-instances",
	"sync-colors",
}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}
