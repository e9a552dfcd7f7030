package pointvis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mat4 is a 4x4 transform in column-major order, the layout GPU instance
// buffers expect.
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
type Mat4 [16]float32

// IdentityMat4 is the identity transform.
var IdentityMat4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translation returns the translation column.
func (m *Mat4) Translation() r3.Vec {
	return r3.Vec{X: float64(m[12]), Y: float64(m[13]), Z: float64(m[14])}
}

// TransformPoint applies m to a point (w = 1).
func (m *Mat4) TransformPoint(p r3.Vec) r3.Vec {
	x, y, z := float32(p.X), float32(p.Y), float32(p.Z)
	return r3.Vec{
		X: float64(m[0]*x + m[4]*y + m[8]*z + m[12]),
		Y: float64(m[1]*x + m[5]*y + m[9]*z + m[13]),
		Z: float64(m[2]*x + m[6]*y + m[10]*z + m[14]),
	}
}

// Orientation is a fixed rotation applied to every instance. The rotation
// columns are computed once so composing a transform per point is a copy and
// three writes.
type Orientation struct {
	Axis  r3.Vec
	Angle float64
	basis Mat4
}

// DefaultOrientation turns instances a quarter turn around +X so a mesh
// modeled along Y (a cylinder) faces the z axis.
var DefaultOrientation = NewOrientation(r3.Vec{X: 1}, 0.5*math.Pi)

// NewOrientation creates an orientation rotating angle radians around axis.
// A zero axis gives the identity.
func NewOrientation(axis r3.Vec, angle float64) Orientation {
	o := Orientation{Axis: axis, Angle: angle, basis: IdentityMat4}
	if r3.Norm(axis) == 0 || angle == 0 {
		return o
	}
	rot := r3.NewRotation(angle, r3.Unit(axis))
	cols := [3]r3.Vec{
		rot.Rotate(r3.Vec{X: 1}),
		rot.Rotate(r3.Vec{Y: 1}),
		rot.Rotate(r3.Vec{Z: 1}),
	}
	for c, v := range cols {
		o.basis[c*4+0] = float32(v.X)
		o.basis[c*4+1] = float32(v.Y)
		o.basis[c*4+2] = float32(v.Z)
	}
	return o
}

// Compose returns the transform translating by (x, y, z) after applying the
// orientation.
func (o Orientation) Compose(x, y, z float64) Mat4 {
	m := o.basis
	m[12] = float32(x)
	m[13] = float32(y)
	m[14] = float32(z)
	return m
}
