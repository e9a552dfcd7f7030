package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pointvis"
)

// PointerInput turns per-frame button state into press and release edges.
// A press on an instance starts a candidate click; releasing over the same
// instance sends it to the visualization, which applies the drag threshold.
type PointerInput struct {
	down     bool
	pressX   float64
	pressY   float64
	lastX    float64
	lastY    float64
	pressHit int

	injectQueue []syntheticPointerEvent
}

// Position returns the last pointer position seen.
func (in *PointerInput) Position() (x, y float64) {
	return in.lastX, in.lastY
}

// Down reports whether the button is held.
func (in *PointerInput) Down() bool {
	return in.down
}

// process feeds one frame of pointer state. hit maps a screen position to
// an instance slot or -1.
func (in *PointerInput) process(vis *pointvis.Visualization, x, y float64, pressed bool, hit func(x, y float64) int) pointvis.Decision {
	in.lastX, in.lastY = x, y
	switch {
	case pressed && !in.down:
		in.down = true
		in.pressX, in.pressY = x, y
		in.pressHit = hit(x, y)
		vis.PointerDown(pointvis.PointerEvent{ClientX: x, ClientY: y, InstanceID: in.pressHit})
	case !pressed && in.down:
		in.down = false
		slot := hit(x, y)
		if slot < 0 || slot != in.pressHit {
			return pointvis.Decision{}
		}
		d := vis.Click(pointvis.PointerEvent{ClientX: x, ClientY: y, InstanceID: slot})
		if d.Changes() {
			vis.SetSelected(d.Point)
		}
		return d
	}
	return pointvis.Decision{}
}

// processInput reads one frame of input, preferring injected events over
// the real mouse.
func (g *Game) processInput() pointvis.Decision {
	if d, ok := g.processInjectedInput(); ok {
		return d
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return g.input.process(g.vis, float64(mx), float64(my), pressed, g.mesh.hitTest)
}
