package pointvis

import (
	"time"

	"github.com/charmbracelet/log"
)

// Visualization runs the layout pipeline for one point collection: it owns
// animation progress, keeps a Renderable in sync with the animated
// coordinates, and turns clicks into selection toggles. Selection itself is
// owned by the host and passed back in through SetSelected.
type Visualization struct {
	logger *log.Logger
	debug  bool
	// savedLevel is the logger level before debug mode raised it.
	savedLevel log.Level
	raised     bool

	points   []*Point
	layout   Layout
	selected *Point

	renderable Renderable
	driver     *Driver
	sync       *InstanceSync
	slots      *SlotMap
	picker     *Picker

	onSelect func(*Point)
	onFrame  func(progress float64)

	frame      uint64
	frameSyncs int
	syncTime   time.Duration
	stats      FrameStats
}

// Option configures a Visualization.
type Option func(*Visualization)

// WithRenderable mounts r at construction.
func WithRenderable(r Renderable) Option {
	return func(v *Visualization) { v.renderable = r }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(v *Visualization) { v.logger = l }
}

// WithIntegrator replaces the integrator chosen by the config.
func WithIntegrator(i Integrator) Option {
	return func(v *Visualization) { v.driver = NewDriver(i, v.handleFrame) }
}

// WithOnSelect sets the callback receiving selection toggles. It receives nil
// to deselect.
func WithOnSelect(fn func(*Point)) Option {
	return func(v *Visualization) { v.onSelect = fn }
}

// WithOnFrame sets a callback invoked after every animated frame has been
// synced to the renderable.
func WithOnFrame(fn func(progress float64)) Option {
	return func(v *Visualization) { v.onFrame = fn }
}

// New creates a visualization with no points. Invalid colors in cfg fall back
// to the stock colors; use Config.Validate to reject them instead.
func New(cfg Config, opts ...Option) *Visualization {
	def, selected := cfg.colors()
	v := &Visualization{
		logger: defaultLogger(),
		layout: Layout(cfg.Layout).Resolve(),
		slots:  NewSlotMap(),
		picker: NewPicker(cfg.DragThreshold),
	}
	v.sync = NewInstanceSync(cfg.Orientation.Orientation(), def, selected, v.slots)
	v.driver = NewDriver(NewIntegrator(cfg.Animation), v.handleFrame)
	for _, opt := range opts {
		opt(v)
	}
	v.SetDebugMode(cfg.Debug)
	return v
}

// SetDebugMode enables or disables per-frame stage logging at debug level.
// Enabling lowers the logger to debug level; disabling restores the level it
// had before.
func (v *Visualization) SetDebugMode(enabled bool) {
	v.debug = enabled
	switch {
	case enabled && !v.raised:
		v.savedLevel = v.logger.GetLevel()
		v.raised = true
		v.logger.SetLevel(log.DebugLevel)
	case !enabled && v.raised:
		v.logger.SetLevel(v.savedLevel)
		v.raised = false
	}
}

// Logger returns the visualization's logger.
func (v *Visualization) Logger() *log.Logger {
	return v.logger
}

// SetPoints replaces the point collection. Any animation in flight is
// abandoned: every point starts a new transition from its live coordinate
// (the origin for records never laid out) into the current layout.
func (v *Visualization) SetPoints(points []*Point) {
	v.points = points
	v.slots.Index(points)
	v.transition()
	if !v.driver.Start(v.layout) {
		v.driver.Restart()
	}
	v.logger.Debug("points changed", "points", len(points), "layout", v.layout)
	v.syncTransforms()
	v.syncColors()
}

// SetLayout switches to the named layout. Unknown names use the grid. If the
// layout changes, points animate from where they are currently drawn.
func (v *Visualization) SetLayout(name string) {
	layout, ok := ParseLayout(name)
	if !ok {
		v.logger.Warn("unknown layout, using default", "layout", name, "default", layout)
	}
	if layout == v.layout && v.driver.Layout() == layout {
		return
	}
	v.layout = layout
	v.transition()
	v.driver.Start(layout)
	v.logger.Debug("layout changed", "layout", layout, "points", len(v.points))
	v.syncTransforms()
}

// transition runs the capture-source, run-layout, capture-target and
// restore-source stages in order.
func (v *Visualization) transition() {
	captureSource(v.points)
	v.debugStage(StageCaptureSource, "points", len(v.points))
	ComputeLayout(v.layout, v.points)
	v.debugStage(StageRunLayout, "layout", v.layout)
	captureTarget(v.points)
	v.debugStage(StageCaptureTarget, "points", len(v.points))
	RestoreSource(v.points)
	v.debugStage(StageRestoreSource, "points", len(v.points))
}

// SetSelected sets the selected point (nil for none) and recolors.
func (v *Visualization) SetSelected(p *Point) {
	if p == v.selected {
		return
	}
	v.selected = p
	v.syncColors()
}

// Mount attaches r and writes the current transforms and colors into it.
func (v *Visualization) Mount(r Renderable) {
	v.renderable = r
	v.syncTransforms()
	v.syncColors()
}

// Unmount detaches the renderable. Later changes are applied on the next
// Mount.
func (v *Visualization) Unmount() {
	v.renderable = nil
}

// Update advances the animation by dt seconds. Call it once per rendered
// frame.
func (v *Visualization) Update(dt float64) {
	v.frame++
	v.frameSyncs = 0
	v.syncTime = 0

	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}
	wasAnimating := v.driver.State() == StateAnimating
	progress := v.driver.Step(dt, v.points)

	v.stats = FrameStats{
		Frame:    v.frame,
		Points:   len(v.points),
		Progress: progress,
		State:    v.driver.State(),
		SyncTime: v.syncTime,
		Syncs:    v.frameSyncs,
	}
	if v.debug {
		v.stats.AnimateTime = time.Since(t0) - v.syncTime
	}
	if wasAnimating {
		v.debugLog(v.stats)
		if v.driver.State() == StateSettled {
			v.logger.Debug("animation settled", "layout", v.layout, "frame", v.frame)
		}
	}
}

// handleFrame is the driver's frame callback: interpolation has already run,
// so instances are synced before the host hears about the frame.
func (v *Visualization) handleFrame(progress float64) {
	v.syncTransforms()
	if v.onFrame != nil {
		v.onFrame(progress)
	}
}

func (v *Visualization) syncTransforms() {
	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}
	if v.sync.SyncTransforms(v.renderable, v.points) {
		v.frameSyncs++
	}
	if v.debug {
		v.syncTime += time.Since(t0)
	}
}

func (v *Visualization) syncColors() {
	if v.sync.SyncColors(v.renderable, v.points, v.selected) {
		v.debugStage(StageSyncColors, "points", len(v.points), "selected", v.selected != nil)
	}
}

// PointerDown records a pointer press on the rendered instances.
func (v *Visualization) PointerDown(e PointerEvent) {
	v.picker.PointerDown(e)
}

// Click resolves a click to a selection toggle and reports it through the
// OnSelect callback. The returned decision tells the host whether to stop
// propagating the event.
func (v *Visualization) Click(e PointerEvent) Decision {
	d := v.picker.Click(e, v.slots, v.selected)
	v.logger.Debug("click", "instance", e.InstanceID, "decision", d.Kind)
	if d.Changes() && v.onSelect != nil {
		v.onSelect(d.Point)
	}
	return d
}

// Points returns the current collection. The slice MUST NOT be mutated.
func (v *Visualization) Points() []*Point {
	return v.points
}

// Layout returns the active layout.
func (v *Visualization) Layout() Layout {
	return v.layout
}

// Selected returns the selected point, or nil.
func (v *Visualization) Selected() *Point {
	return v.selected
}

// Progress returns the animation progress in [0, 1].
func (v *Visualization) Progress() float64 {
	return v.driver.Progress()
}

// State returns whether the visualization is animating or settled.
func (v *Visualization) State() DriverState {
	return v.driver.State()
}

// Slots returns the slot map linking render slots to points.
func (v *Visualization) Slots() *SlotMap {
	return v.slots
}

// Picker returns the click picker, for adjusting its threshold.
func (v *Visualization) Picker() *Picker {
	return v.picker
}

// Stats returns the stats of the most recent Update.
func (v *Visualization) Stats() FrameStats {
	return v.stats
}
