package pointvis

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Layout names an arrangement algorithm.
type Layout string

const (
	LayoutGrid   Layout = "grid"   // square grid centered at the origin (default)
	LayoutSpiral Layout = "spiral" // equidistant points along a spiral
)

// DefaultLayout is used for empty and unknown layout names.
const DefaultLayout = LayoutGrid

const (
	gridSpacing  = 1.05 // distance between neighboring grid cells
	spiralScale  = 0.8  // radius growth per sqrt(index)
	spiralMinRad = 1.0  // radius floor; keeps asin(1/r) in its domain
)

// LayoutFunc writes X, Y, Z for every point in order. It must be a pure
// function of the ordered points.
type LayoutFunc func(points []*Point)

var (
	// ErrLayoutExists is returned when registering a name already in use.
	ErrLayoutExists = errors.New("layout already registered")
	// ErrEmptyLayoutName is returned when registering an empty name.
	ErrEmptyLayoutName = errors.New("empty layout name")
	// ErrNilLayoutFunc is returned when registering a nil LayoutFunc.
	ErrNilLayoutFunc = errors.New("nil layout func")
)

var layouts = map[Layout]LayoutFunc{
	LayoutGrid:   GridLayout,
	LayoutSpiral: SpiralLayout,
}

// RegisterLayout adds a custom arrangement under name. Built-in and
// previously registered names cannot be replaced.
func RegisterLayout(name string, fn LayoutFunc) error {
	key := Layout(normalizeLayoutName(name))
	if key == "" {
		return fmt.Errorf("register layout: %w", ErrEmptyLayoutName)
	}
	if fn == nil {
		return fmt.Errorf("register layout %q: %w", key, ErrNilLayoutFunc)
	}
	if _, ok := layouts[key]; ok {
		return fmt.Errorf("register layout %q: %w", key, ErrLayoutExists)
	}
	layouts[key] = fn
	return nil
}

// Layouts returns every registered layout name in sorted order.
func Layouts() []Layout {
	names := make([]Layout, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseLayout looks up a layout by name, ignoring case and surrounding space.
// It reports false for names that are not registered.
func ParseLayout(name string) (Layout, bool) {
	key := Layout(normalizeLayoutName(name))
	if _, ok := layouts[key]; !ok {
		return DefaultLayout, false
	}
	return key, true
}

// Resolve returns l if it is registered and DefaultLayout otherwise.
func (l Layout) Resolve() Layout {
	resolved, _ := ParseLayout(string(l))
	return resolved
}

func normalizeLayoutName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ComputeLayout arranges points in place using the named layout. Unknown names
// fall back to the grid.
func ComputeLayout(layout Layout, points []*Point) {
	layouts[layout.Resolve()](points)
}

// GridLayout places points on a square grid with ceil(sqrt(n)) columns,
// row-major in collection order, centered at the origin. All z are 0.
func GridLayout(points []*Point) {
	n := len(points)
	numCols := int(math.Ceil(math.Sqrt(float64(n))))
	numRows := numCols
	halfCols := float64(numCols) / 2
	halfRows := float64(numRows) / 2

	for i, p := range points {
		col := float64(i%numCols) - halfCols
		row := float64(i/numCols) - halfRows
		p.X = col * gridSpacing
		p.Y = row * gridSpacing
		p.Z = 0
	}
}

// SpiralLayout places points along a spiral with constant arc length between
// neighbors. All z are 0.
func SpiralLayout(points []*Point) {
	theta := 0.0
	for i, p := range points {
		radius := SpiralRadius(i)
		theta += math.Asin(1 / radius)
		sin, cos := math.Sincos(theta)
		p.X = radius * cos
		p.Y = radius * sin
		p.Z = 0
	}
}

// SpiralRadius returns the spiral radius of the point at index i.
func SpiralRadius(i int) float64 {
	return math.Max(spiralMinRad, math.Sqrt(float64(i+1))*spiralScale)
}
