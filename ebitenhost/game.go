package ebitenhost

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pointvis"
)

// RunConfig configures the window and host behavior.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// CameraDistance and FOV override the default camera when positive.
	CameraDistance float64
	FOV            float64

	// Background defaults to black.
	Background pointvis.Color

	ShowFPS bool

	// CycleLayouts lets the L key switch to the next registered layout.
	CycleLayouts bool

	// Script, if set, is played from the first frame.
	Script *TestRunner
	// ExitOnScriptEnd ends the run once Script is done.
	ExitOnScriptEnd bool
	ScreenshotDir   string

	// Logger defaults to the visualization's logger.
	Logger *log.Logger

	// Context ends the run when canceled.
	Context context.Context
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "pointvis"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
	return c
}

// Game hosts a visualization as an ebiten.Game.
type Game struct {
	vis    *pointvis.Visualization
	buffer *InstanceBuffer
	logger *log.Logger

	projector  Projector
	mesh       discMesh
	input      PointerInput
	runner     *TestRunner
	background color.RGBA
	exitOnDone bool
	showFPS    bool
	cycleKeys  bool

	ctx             context.Context
	screenshotQueue []string
	screenshotDir   string
	lastDecision    pointvis.Decision
	rebuilt         int
}

// NewGame creates a game and mounts buffer on vis. A nil buffer is replaced
// with one sized for the current points.
func NewGame(vis *pointvis.Visualization, buffer *InstanceBuffer, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	if buffer == nil {
		buffer = NewInstanceBuffer(len(vis.Points()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = vis.Logger()
	}
	proj := NewProjector(float64(cfg.Width), float64(cfg.Height))
	if cfg.CameraDistance > 0 {
		proj.Distance = cfg.CameraDistance
	}
	if cfg.FOV > 0 {
		proj.FOV = cfg.FOV
	}
	g := &Game{
		vis:           vis,
		buffer:        buffer,
		logger:        logger,
		projector:     proj,
		runner:        cfg.Script,
		background:    toColor(cfg.Background),
		exitOnDone:    cfg.ExitOnScriptEnd,
		showFPS:       cfg.ShowFPS,
		cycleKeys:     cfg.CycleLayouts,
		screenshotDir: cfg.ScreenshotDir,
		ctx:           cfg.Context,
	}
	vis.Mount(buffer)
	g.refresh()
	return g
}

// SetTestRunner attaches a script, replacing any current one.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Buffer returns the instance buffer mounted on the visualization.
func (g *Game) Buffer() *InstanceBuffer {
	return g.buffer
}

// Projector returns the camera.
func (g *Game) Projector() Projector {
	return g.projector
}

// HitTest returns the instance slot under a screen position, or -1.
func (g *Game) HitTest(x, y float64) int {
	return g.mesh.hitTest(x, y)
}

// LastDecision returns the outcome of the most recent click.
func (g *Game) LastDecision() pointvis.Decision {
	return g.lastDecision
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.runner != nil {
		g.runner.step(g)
		if g.exitOnDone && g.runner.Done() && len(g.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	if g.cycleKeys && inpututil.IsKeyJustPressed(cycleLayoutKey) {
		g.cycleLayout()
	}
	if d := g.processInput(); d.Kind != pointvis.DecisionNone {
		g.lastDecision = d
	}
	g.vis.Update(frameDelta())
	g.refresh()
	return nil
}

const cycleLayoutKey = ebiten.KeyL

// frameDelta returns the seconds per tick. With ticks synced to the display,
// the measured rate is used.
func frameDelta() float64 {
	tps := float64(ebiten.TPS())
	if tps <= 0 {
		tps = ebiten.ActualTPS()
	}
	if tps <= 0 {
		tps = 60
	}
	return 1 / tps
}

// cycleLayout switches to the registered layout after the active one.
func (g *Game) cycleLayout() {
	layouts := pointvis.Layouts()
	if len(layouts) == 0 {
		return
	}
	next := layouts[0]
	for i, l := range layouts {
		if l == g.vis.Layout() {
			next = layouts[(i+1)%len(layouts)]
			break
		}
	}
	g.logger.Info("switching layout", "layout", next)
	g.vis.SetLayout(string(next))
}

// refresh rebuilds projected geometry when the buffer changed since the
// last frame.
func (g *Game) refresh() {
	g.buffer.SetCount(len(g.vis.Points()))
	matrices, colors := g.buffer.consume()
	if matrices || len(g.mesh.discs) != g.buffer.Count() {
		g.mesh.rebuild(g.buffer, g.projector)
		g.rebuilt++
		colors = true
	}
	if colors {
		g.mesh.recolor(g.buffer)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.mesh.draw(screen)
	g.flushScreenshots(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f  points: %d  %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.buffer.Count(), g.vis.Layout()))
	}
}

// Layout implements ebiten.Game. The projector tracks the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.projector.Width || h != g.projector.Height {
		g.projector.Width, g.projector.Height = w, h
		g.mesh.rebuild(g.buffer, g.projector)
		g.mesh.recolor(g.buffer)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed or a script with
// ExitOnScriptEnd finishes.
func Run(vis *pointvis.Visualization, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	g := NewGame(vis, nil, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer vis.Unmount()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	if cfg.Context != nil {
		return cfg.Context.Err()
	}
	return nil
}
