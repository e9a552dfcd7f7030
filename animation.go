package pointvis

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Integrator advances animation progress from 0 toward 1. Implementations
// swap the motion profile without touching transition or sync logic.
type Integrator interface {
	// Reset puts progress back at 0.
	Reset()
	// Advance moves progress forward by dt seconds and reports the clamped
	// progress and whether it has settled at 1. Non-positive dt is a no-op.
	Advance(dt float64) (progress float64, settled bool)
	// Progress returns the current clamped progress.
	Progress() float64
}

// Spring defaults match a mass-1 spring with tension 170 and friction 26.
var (
	DefaultSpringFrequency = math.Sqrt(170)
	DefaultSpringDamping   = 26 / (2 * math.Sqrt(170))
)

// springPrecision is the distance and speed under which a spring counts as
// settled.
const springPrecision = 1e-3

// SpringIntegrator drives progress with a damped spring whose rest position
// is 1. The motion has no fixed duration.
type SpringIntegrator struct {
	frequency float64
	damping   float64

	spring   harmonica.Spring
	springDT float64

	pos     float64
	vel     float64
	settled bool
}

// NewSpringIntegrator creates a spring with the given angular frequency and
// damping ratio. Non-positive values fall back to the defaults.
func NewSpringIntegrator(frequency, damping float64) *SpringIntegrator {
	if frequency <= 0 {
		frequency = DefaultSpringFrequency
	}
	if damping <= 0 {
		damping = DefaultSpringDamping
	}
	return &SpringIntegrator{frequency: frequency, damping: damping}
}

// Reset puts the spring back at rest at 0.
func (s *SpringIntegrator) Reset() {
	s.pos = 0
	s.vel = 0
	s.settled = false
}

// Advance implements Integrator.
func (s *SpringIntegrator) Advance(dt float64) (float64, bool) {
	if s.settled {
		return 1, true
	}
	if !(dt > 0) {
		return s.Progress(), false
	}
	if dt != s.springDT {
		s.spring = harmonica.NewSpring(dt, s.frequency, s.damping)
		s.springDT = dt
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 1)
	if math.Abs(1-s.pos) < springPrecision && math.Abs(s.vel) < springPrecision {
		s.pos = 1
		s.vel = 0
		s.settled = true
	}
	return s.Progress(), s.settled
}

// Progress implements Integrator.
func (s *SpringIntegrator) Progress() float64 {
	return clamp01(s.pos)
}

// Velocity returns the spring's current speed in progress units per second.
func (s *SpringIntegrator) Velocity() float64 {
	return s.vel
}

// TweenIntegrator drives progress over a fixed duration with an easing
// function.
type TweenIntegrator struct {
	tween    *gween.Tween
	progress float64
	done     bool
}

// NewTweenIntegrator creates an integrator that reaches 1 after duration
// seconds following fn. A nil fn is linear.
func NewTweenIntegrator(duration float64, fn ease.TweenFunc) *TweenIntegrator {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = DefaultTweenDuration
	}
	return &TweenIntegrator{tween: gween.New(0, 1, float32(duration), fn)}
}

// DefaultTweenDuration is used for tween integrators without a duration.
const DefaultTweenDuration = 1.0

// Reset rewinds the tween to 0.
func (t *TweenIntegrator) Reset() {
	t.tween.Reset()
	t.progress = 0
	t.done = false
}

// Advance implements Integrator.
func (t *TweenIntegrator) Advance(dt float64) (float64, bool) {
	if t.done {
		return 1, true
	}
	if !(dt > 0) {
		return t.progress, false
	}
	val, finished := t.tween.Update(float32(dt))
	t.progress = clamp01(float64(val))
	if finished {
		t.progress = 1
		t.done = true
	}
	return t.progress, t.done
}

// Progress implements Integrator.
func (t *TweenIntegrator) Progress() float64 {
	return t.progress
}

// Integrator names accepted by AnimationConfig.
const (
	IntegratorSpring    = "spring"
	IntegratorLinear    = "linear"
	IntegratorEaseInOut = "ease-in-out"
)

// NewIntegrator builds the integrator described by cfg. Unknown names get a
// spring.
func NewIntegrator(cfg AnimationConfig) Integrator {
	switch cfg.Integrator {
	case IntegratorLinear:
		return NewTweenIntegrator(cfg.Duration, ease.Linear)
	case IntegratorEaseInOut:
		return NewTweenIntegrator(cfg.Duration, ease.InOutCubic)
	default:
		return NewSpringIntegrator(cfg.Frequency, cfg.Damping)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
