package ebitenhost

import "github.com/phanxgames/pointvis"

// syntheticPointerEvent is one injected frame of pointer state, in screen
// pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press. Injected events are consumed one
// per frame ahead of real mouse input.
func (g *Game) InjectPress(x, y float64) {
	g.input.injectQueue = append(g.input.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button held.
func (g *Game) InjectMove(x, y float64) {
	g.InjectPress(x, y)
}

// InjectRelease queues a left-button release.
func (g *Game) InjectRelease(x, y float64) {
	g.input.injectQueue = append(g.input.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press and release at the same position. Consumes two
// frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). frames is at least 2.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// InjectSelect queues a click on the projected center of slot. It returns
// false if the slot is not on screen.
func (g *Game) InjectSelect(slot int) bool {
	x, y, ok := g.mesh.center(slot)
	if !ok {
		return false
	}
	g.InjectClick(x, y)
	return true
}

// processInjectedInput pops one queued event and feeds it through the
// pointer state machine. It reports false if the queue was empty.
func (g *Game) processInjectedInput() (pointvis.Decision, bool) {
	q := g.input.injectQueue
	if len(q) == 0 {
		return pointvis.Decision{}, false
	}
	evt := q[0]
	copy(q, q[1:])
	g.input.injectQueue = q[:len(q)-1]
	return g.input.process(g.vis, evt.x, evt.y, evt.pressed, g.mesh.hitTest), true
}
