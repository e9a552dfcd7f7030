package pointvis

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const frameDT = 1.0 / 60

func TestSpringIntegratorSettles(t *testing.T) {
	s := NewSpringIntegrator(0, 0)

	prev := 0.0
	settled := false
	frames := 0
	for ; frames < 600 && !settled; frames++ {
		var p float64
		p, settled = s.Advance(frameDT)
		if p < 0 || p > 1 {
			t.Fatalf("frame %d progress %f outside [0, 1]", frames, p)
		}
		if p+1e-12 < prev {
			t.Fatalf("frame %d progress %f went back from %f", frames, p, prev)
		}
		prev = p
	}
	if !settled {
		t.Fatal("spring did not settle within 600 frames")
	}
	if s.Progress() != 1 {
		t.Errorf("Progress() = %f after settling, want 1", s.Progress())
	}
	if frames < 10 {
		t.Errorf("settled after %d frames; a spring should take longer", frames)
	}

	p, done := s.Advance(frameDT)
	if p != 1 || !done {
		t.Errorf("Advance after settled = (%f, %v), want (1, true)", p, done)
	}
}

func TestSpringIntegratorReset(t *testing.T) {
	s := NewSpringIntegrator(DefaultSpringFrequency, DefaultSpringDamping)
	for i := 0; i < 20; i++ {
		s.Advance(frameDT)
	}
	s.Reset()
	if s.Progress() != 0 || s.Velocity() != 0 {
		t.Errorf("after Reset progress=%f velocity=%f, want 0", s.Progress(), s.Velocity())
	}
}

func TestSpringIntegratorIgnoresNonPositiveDT(t *testing.T) {
	s := NewSpringIntegrator(0, 0)
	for _, dt := range []float64{0, -1, math.NaN()} {
		p, settled := s.Advance(dt)
		if p != 0 || settled {
			t.Errorf("Advance(%v) = (%f, %v), want (0, false)", dt, p, settled)
		}
	}
}

func TestSpringIntegratorHandlesVariableDT(t *testing.T) {
	s := NewSpringIntegrator(0, 0)
	dts := []float64{frameDT, frameDT / 2, 2 * frameDT}
	for i := 0; i < 300; i++ {
		if _, settled := s.Advance(dts[i%len(dts)]); settled {
			return
		}
	}
	t.Fatal("spring did not settle with variable frame times")
}

func TestTweenIntegratorLinear(t *testing.T) {
	tw := NewTweenIntegrator(1, ease.Linear)

	p, done := tw.Advance(0.5)
	if done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(p-0.5) > 0.01 {
		t.Errorf("progress = %f at halfway, want ~0.5", p)
	}

	p, done = tw.Advance(0.5)
	if !done || p != 1 {
		t.Errorf("Advance = (%f, %v) after full duration, want (1, true)", p, done)
	}

	tw.Reset()
	if tw.Progress() != 0 {
		t.Errorf("Progress() = %f after Reset, want 0", tw.Progress())
	}
	if p, _ := tw.Advance(0.25); math.Abs(p-0.25) > 0.01 {
		t.Errorf("progress = %f after Reset and a quarter, want ~0.25", p)
	}
}

func TestTweenIntegratorEaseInOut(t *testing.T) {
	tw := NewTweenIntegrator(1, ease.InOutCubic)
	p, _ := tw.Advance(0.25)
	if p >= 0.25 {
		t.Errorf("ease-in-out progress at a quarter = %f, want < 0.25", p)
	}
}

func TestNewIntegratorSelects(t *testing.T) {
	tests := []struct {
		name   string
		spring bool
	}{
		{IntegratorSpring, true},
		{IntegratorLinear, false},
		{IntegratorEaseInOut, false},
		{"", true},
		{"bouncy", true},
	}
	for _, tt := range tests {
		i := NewIntegrator(AnimationConfig{Integrator: tt.name, Duration: 1})
		_, isSpring := i.(*SpringIntegrator)
		if isSpring != tt.spring {
			t.Errorf("NewIntegrator(%q) = %T", tt.name, i)
		}
	}
}
