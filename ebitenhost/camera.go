package ebitenhost

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Default camera placement.
const (
	DefaultCameraDistance = 80.0
	DefaultFOV            = 75.0
	nearPlane             = 0.1
)

// Projector is a fixed perspective camera on the +z axis looking at the
// origin with +y up. It has no controls; layouts are always framed the same
// way.
type Projector struct {
	// Distance from the origin along +z.
	Distance float64
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Width and Height of the viewport in pixels.
	Width, Height float64
}

// NewProjector creates a projector with the default camera for a viewport.
func NewProjector(width, height float64) Projector {
	return Projector{
		Distance: DefaultCameraDistance,
		FOV:      DefaultFOV,
		Width:    width,
		Height:   height,
	}
}

// focal returns the focal length in pixels.
func (p Projector) focal() float64 {
	fov := p.FOV
	if !(fov > 0 && fov < 180) {
		fov = DefaultFOV
	}
	return (p.Height / 2) / math.Tan(fov*math.Pi/360)
}

// Project maps a world position to screen pixels. scale is pixels per world
// unit at that depth. ok is false for positions at or behind the near plane.
func (p Projector) Project(v r3.Vec) (sx, sy, scale float64, ok bool) {
	depth := p.Distance - v.Z
	if depth <= nearPlane {
		return 0, 0, 0, false
	}
	scale = p.focal() / depth
	sx = p.Width/2 + v.X*scale
	sy = p.Height/2 - v.Y*scale
	return sx, sy, scale, true
}

// Unproject returns the world position on the z=0 plane under a screen
// pixel.
func (p Projector) Unproject(sx, sy float64) r3.Vec {
	scale := p.focal() / p.Distance
	return r3.Vec{
		X: (sx - p.Width/2) / scale,
		Y: (p.Height/2 - sy) / scale,
	}
}
