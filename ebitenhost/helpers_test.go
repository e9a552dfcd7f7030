package ebitenhost

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/pointvis"
)

// newTestGame builds a settled 3x3 grid viewed from close range, so discs
// are about 20 px in radius and 41 px apart.
func newTestGame(t *testing.T) (*Game, *pointvis.Visualization) {
	t.Helper()
	vis := pointvis.New(pointvis.DefaultConfig(),
		pointvis.WithLogger(log.New(io.Discard)),
		pointvis.WithIntegrator(pointvis.NewTweenIntegrator(1, ease.Linear)),
	)
	vis.SetPoints(pointvis.NewPoints(9, nil))
	vis.Update(1)
	g := NewGame(vis, nil, RunConfig{Width: 800, Height: 600, CameraDistance: 10})
	if vis.State() != pointvis.StateSettled {
		t.Fatalf("state = %v, want settled", vis.State())
	}
	return g, vis
}

// screenCenter returns where slot i is drawn.
func screenCenter(t *testing.T, g *Game, i int) (float64, float64) {
	t.Helper()
	x, y, ok := g.mesh.center(i)
	if !ok {
		t.Fatalf("slot %d not visible", i)
	}
	return x, y
}
