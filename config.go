package pointvis

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parts of a Visualization. Zero fields are not
// meaningful; start from DefaultConfig.
type Config struct {
	// Layout is the initial layout name. Unknown names use the grid.
	Layout string `yaml:"layout"`
	// DragThreshold is the pointer travel in pixels that turns a click into a
	// drag.
	DragThreshold float64 `yaml:"drag_threshold" validate:"gte=0"`
	// Colors are the instance colors as hex strings.
	Colors ColorConfig `yaml:"colors"`
	// Animation selects and tunes the progress integrator.
	Animation AnimationConfig `yaml:"animation"`
	// Orientation is the fixed rotation applied to every instance.
	Orientation OrientationConfig `yaml:"orientation"`
	// Debug enables per-frame stage timing in the log.
	Debug bool `yaml:"debug"`
}

// ColorConfig holds hex colors such as "#888".
type ColorConfig struct {
	Default  string `yaml:"default" validate:"required,hexcolor"`
	Selected string `yaml:"selected" validate:"required,hexcolor"`
}

// AnimationConfig selects the integrator. Frequency and Damping tune the
// spring; Duration (seconds) tunes the tweens.
type AnimationConfig struct {
	Integrator string  `yaml:"integrator" validate:"oneof=spring linear ease-in-out"`
	Frequency  float64 `yaml:"frequency" validate:"gte=0"`
	Damping    float64 `yaml:"damping" validate:"gte=0"`
	Duration   float64 `yaml:"duration" validate:"gte=0"`
}

// OrientationConfig is an axis and an angle in radians.
type OrientationConfig struct {
	Axis  [3]float64 `yaml:"axis,flow"`
	Angle float64    `yaml:"angle"`
}

// Orientation builds the rotation described by o.
func (o OrientationConfig) Orientation() Orientation {
	return NewOrientation(r3.Vec{X: o.Axis[0], Y: o.Axis[1], Z: o.Axis[2]}, o.Angle)
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Layout:        string(DefaultLayout),
		DragThreshold: DefaultDragThreshold,
		Colors: ColorConfig{
			Default:  DefaultColorHex,
			Selected: SelectedColorHex,
		},
		Animation: AnimationConfig{
			Integrator: IntegratorSpring,
			Frequency:  DefaultSpringFrequency,
			Damping:    DefaultSpringDamping,
			Duration:   DefaultTweenDuration,
		},
		Orientation: OrientationConfig{
			Axis:  [3]float64{1, 0, 0},
			Angle: 0.5 * math.Pi,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that both colors parse.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseColor(c.Colors.Default); err != nil {
		return fmt.Errorf("%w: colors.default: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseColor(c.Colors.Selected); err != nil {
		return fmt.Errorf("%w: colors.selected: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// colors returns the parsed colors, falling back to the stock ones.
func (c Config) colors() (def, selected Color) {
	def, selected = DefaultColor, SelectedColor
	if parsed, err := ParseColor(c.Colors.Default); err == nil {
		def = parsed
	}
	if parsed, err := ParseColor(c.Colors.Selected); err == nil {
		selected = parsed
	}
	return def, selected
}
