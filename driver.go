package pointvis

// DriverState is the state of a Driver.
type DriverState uint8

const (
	StateSettled   DriverState = iota // progress is 1 and nothing is pending
	StateAnimating                    // progress is advancing toward 1
)

func (s DriverState) String() string {
	switch s {
	case StateSettled:
		return "settled"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Driver owns animation progress for one visualization. It restarts whenever
// the layout it is started with differs from the previous one, and on every
// step interpolates points and reports the frame.
//
// There is no timer: the host calls Step once per rendered frame.
type Driver struct {
	integrator Integrator
	onFrame    func(progress float64)

	layout   Layout
	started  bool
	state    DriverState
	progress float64
}

// NewDriver creates a settled driver. onFrame may be nil.
func NewDriver(integrator Integrator, onFrame func(progress float64)) *Driver {
	if integrator == nil {
		integrator = NewSpringIntegrator(0, 0)
	}
	return &Driver{
		integrator: integrator,
		onFrame:    onFrame,
		state:      StateSettled,
		progress:   1,
	}
}

// Start records layout and restarts the animation if it differs from the
// layout recorded by the previous Start. The first call always restarts.
// Source and target must already be prepared for layout. Reports whether a
// restart happened.
func (d *Driver) Start(layout Layout) bool {
	if d.started && layout == d.layout {
		return false
	}
	d.started = true
	d.layout = layout
	d.Restart()
	return true
}

// Restart resets progress to 0 and enters the animating state regardless of
// the recorded layout.
func (d *Driver) Restart() {
	d.integrator.Reset()
	d.progress = 0
	d.state = StateAnimating
}

// Step advances progress by dt seconds. While animating it interpolates
// points and calls the frame callback; once settled it returns 1 without
// touching points. A non-positive or NaN dt returns the current progress
// and writes nothing.
func (d *Driver) Step(dt float64, points []*Point) float64 {
	if d.state == StateSettled {
		return 1
	}
	if !(dt > 0) {
		return d.progress
	}
	progress, settled := d.integrator.Advance(dt)
	if settled {
		progress = 1
		d.state = StateSettled
	}
	d.progress = progress
	Interpolate(points, progress)
	if d.onFrame != nil {
		d.onFrame(progress)
	}
	return progress
}

// Progress returns the current progress in [0, 1].
func (d *Driver) Progress() float64 {
	return d.progress
}

// State returns whether the driver is animating or settled.
func (d *Driver) State() DriverState {
	return d.state
}

// Layout returns the layout recorded by the last Start.
func (d *Driver) Layout() Layout {
	return d.layout
}

// Integrator returns the integrator driving progress.
func (d *Driver) Integrator() Integrator {
	return d.integrator
}
