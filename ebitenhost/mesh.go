package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phanxgames/pointvis"
)

// Disc geometry in the instance's local frame. The face lies in the XZ plane
// at +y, so the default quarter turn about +x points it at the camera.
const (
	discRadius    = 0.5
	discHalfDepth = 0.075
	discSegments  = 24
)

// discVerts is the number of vertices per instance: center plus rim.
const discVerts = discSegments + 1

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Vertex colors tint it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// discLocal holds the local-space face vertices: center first, then rim.
var discLocal = func() [discVerts]r3.Vec {
	var out [discVerts]r3.Vec
	out[0] = r3.Vec{Y: discHalfDepth}
	for i := range discSegments {
		a := 2 * math.Pi * float64(i) / discSegments
		out[i+1] = r3.Vec{
			X: discRadius * math.Cos(a),
			Y: discHalfDepth,
			Z: discRadius * math.Sin(a),
		}
	}
	return out
}()

// screenDisc is the projected footprint of one instance, used for hit
// testing.
type screenDisc struct {
	x, y, radius float64
	depth        float64
	visible      bool
}

// contains reports whether the screen point lies inside the disc.
func (d screenDisc) contains(x, y float64) bool {
	if !d.visible {
		return false
	}
	dx, dy := x-d.x, y-d.y
	return dx*dx+dy*dy <= d.radius*d.radius
}

// discMesh is the batched vertex data for every instance.
type discMesh struct {
	verts []ebiten.Vertex
	inds  []uint32
	discs []screenDisc
}

// rebuild projects every instance in buf. Instances behind the camera keep
// their slots but collapse to a point.
func (m *discMesh) rebuild(buf *InstanceBuffer, proj Projector) {
	n := buf.Count()
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
	if cap(m.discs) < n {
		m.discs = make([]screenDisc, n)
	}
	m.discs = m.discs[:n]

	for i := range n {
		mat := buf.Matrix(i)
		base := uint32(len(m.verts))
		center := mat.Translation()
		cx, cy, scale, ok := proj.Project(center)
		m.discs[i] = screenDisc{
			x: cx, y: cy,
			radius:  discRadius * scale,
			depth:   proj.Distance - center.Z,
			visible: ok,
		}
		for _, lv := range discLocal {
			var sx, sy float64
			if ok {
				sx, sy, _, _ = proj.Project(mat.TransformPoint(lv))
			}
			m.verts = append(m.verts, ebiten.Vertex{
				DstX: float32(sx), DstY: float32(sy),
				SrcX: 0.5, SrcY: 0.5,
			})
		}
		if !ok {
			continue
		}
		for s := range uint32(discSegments) {
			next := (s+1)%discSegments + 1
			m.inds = append(m.inds, base, base+s+1, base+next)
		}
	}
}

// recolor writes the instance colors into the vertices. Colors are opaque so
// premultiplication is a no-op.
func (m *discMesh) recolor(buf *InstanceBuffer) {
	n := min(buf.Count(), len(m.verts)/discVerts)
	for i := range n {
		c := buf.Color(i)
		r, g, b := float32(c.R), float32(c.G), float32(c.B)
		vs := m.verts[i*discVerts : (i+1)*discVerts]
		for j := range vs {
			vs[j].ColorR = r
			vs[j].ColorG = g
			vs[j].ColorB = b
			vs[j].ColorA = 1
		}
	}
}

// hitTest returns the slot of the nearest disc under the screen point, or -1.
// Equal depths resolve to the later slot, which is drawn on top.
func (m *discMesh) hitTest(x, y float64) int {
	hit := -1
	best := math.Inf(1)
	for i := len(m.discs) - 1; i >= 0; i-- {
		d := m.discs[i]
		if d.contains(x, y) && d.depth < best {
			hit = i
			best = d.depth
		}
	}
	return hit
}

// center returns the screen position of slot i.
func (m *discMesh) center(i int) (x, y float64, ok bool) {
	if i < 0 || i >= len(m.discs) || !m.discs[i].visible {
		return 0, 0, false
	}
	return m.discs[i].x, m.discs[i].y, true
}

// draw submits every disc in a single DrawTriangles32 call.
func (m *discMesh) draw(target *ebiten.Image) {
	if len(m.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(m.verts, m.inds, ensureWhitePixel(), &triOp)
}

// toColor converts a pointvis color to an opaque RGBA.
func toColor(c pointvis.Color) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clampUnit(c.R) * 255)),
		G: uint8(math.Round(clampUnit(c.G) * 255)),
		B: uint8(math.Round(clampUnit(c.B) * 255)),
		A: 255,
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
