package pointvis

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point is one record in a point collection. The host owns it; pointvis only
// writes the coordinate fields. Points are compared by pointer: two *Point
// values are the same point only if they are the same record.
type Point struct {
	// ID is a persistent opaque identifier used to map render slots back to
	// records. NewPoint assigns a random one.
	ID uuid.UUID
	// Datum is the host's domain object, untouched by pointvis.
	Datum any

	// X, Y, Z is the current rendered coordinate.
	X, Y, Z float64
	// SourceX, SourceY, SourceZ is where the current transition started.
	SourceX, SourceY, SourceZ float64
	// TargetX, TargetY, TargetZ is where the current transition ends.
	TargetX, TargetY, TargetZ float64
}

// NewPoint creates a point at the origin carrying datum.
func NewPoint(datum any) *Point {
	return &Point{ID: uuid.New(), Datum: datum}
}

// NewPoints creates n points. If datum is non-nil it is called with each index
// to produce the point's Datum.
func NewPoints(n int, datum func(i int) any) []*Point {
	points := make([]*Point, n)
	for i := range points {
		var d any
		if datum != nil {
			d = datum(i)
		}
		points[i] = NewPoint(d)
	}
	return points
}

// Position returns the current rendered coordinate.
func (p *Point) Position() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Source returns the coordinate the current transition started from.
func (p *Point) Source() r3.Vec {
	return r3.Vec{X: p.SourceX, Y: p.SourceY, Z: p.SourceZ}
}

// Target returns the coordinate the current transition ends at.
func (p *Point) Target() r3.Vec {
	return r3.Vec{X: p.TargetX, Y: p.TargetY, Z: p.TargetZ}
}

// SetPosition sets the current rendered coordinate.
func (p *Point) SetPosition(x, y, z float64) {
	p.X = x
	p.Y = y
	p.Z = z
}
