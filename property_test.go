package pointvis

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/tanema/gween/ease"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	return gopter.NewProperties(parameters)
}

func TestLayoutProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("grid assigns unique cells and is deterministic", prop.ForAll(
		func(n int) bool {
			a := NewPoints(n, nil)
			b := NewPoints(n, nil)
			GridLayout(a)
			GridLayout(b)
			seen := make(map[[2]float64]bool, n)
			for i := range a {
				if a[i].Position() != b[i].Position() {
					return false
				}
				cell := [2]float64{a[i].X, a[i].Y}
				if seen[cell] {
					return false
				}
				seen[cell] = true
			}
			return true
		},
		gen.IntRange(0, 400),
	))

	properties.Property("spiral radius is max(1, sqrt(i+1)*0.8) and non-decreasing", prop.ForAll(
		func(n int) bool {
			points := NewPoints(n, nil)
			SpiralLayout(points)
			prev := 0.0
			for i, p := range points {
				want := math.Max(1, math.Sqrt(float64(i+1))*0.8)
				r := math.Hypot(p.X, p.Y)
				if math.Abs(r-want) > 1e-9 || want < prev {
					return false
				}
				prev = want
			}
			return true
		},
		gen.IntRange(0, 400),
	))

	properties.TestingRun(t)
}

func TestInterpolationProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("progress 0 is source and 1 is target", prop.ForAll(
		func(sx, sy, tx, ty float64) bool {
			p := &Point{SourceX: sx, SourceY: sy, SourceZ: 1, TargetX: tx, TargetY: ty, TargetZ: -1}
			points := []*Point{p}
			Interpolate(points, 0)
			if p.Position() != p.Source() {
				return false
			}
			Interpolate(points, 1)
			return p.Position() == p.Target()
		},
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("switching layouts mid-animation never jumps", prop.ForAll(
		func(n, quarters int) bool {
			v := New(DefaultConfig(),
				WithLogger(log.New(io.Discard)),
				WithIntegrator(NewTweenIntegrator(1, ease.Linear)),
				WithRenderable(&fakeRenderable{}),
			)
			points := NewPoints(n, nil)
			v.SetPoints(points)
			for i := 0; i < quarters; i++ {
				v.Update(0.25)
			}
			before := make([]Point, n)
			for i, p := range points {
				before[i] = *p
			}
			v.SetLayout("spiral")
			for i, p := range points {
				if p.Position() != before[i].Position() || p.Source() != before[i].Position() {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 150),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

func TestSelectionProperties(t *testing.T) {
	properties := newProperties()
	points := NewPoints(20, nil)
	slots := newTestSlots(points)

	properties.Property("clicks within the threshold toggle exactly one point", prop.ForAll(
		func(slot, selectedSlot int, dx, dy float64) bool {
			if math.Hypot(dx, dy) > DefaultDragThreshold {
				return true
			}
			var selected *Point
			if selectedSlot >= 0 {
				selected = points[selectedSlot]
			}
			p := NewPicker(DefaultDragThreshold)
			p.PointerDown(PointerEvent{ClientX: 100, ClientY: 100, InstanceID: slot})
			d := p.Click(PointerEvent{ClientX: 100 + dx, ClientY: 100 + dy, InstanceID: slot}, slots, selected)
			if points[slot] == selected {
				return d.Kind == DecisionDeselect && d.Point == nil
			}
			return d.Kind == DecisionSelect && d.Point == points[slot]
		},
		gen.IntRange(0, 19),
		gen.IntRange(-1, 19),
		gen.Float64Range(-5, 5),
		gen.Float64Range(-5, 5),
	))

	properties.Property("drags never change selection", prop.ForAll(
		func(slot int, dx, dy float64) bool {
			if math.Hypot(dx, dy) <= DefaultDragThreshold {
				return true
			}
			p := NewPicker(DefaultDragThreshold)
			p.PointerDown(PointerEvent{ClientX: 50, ClientY: 50, InstanceID: slot})
			d := p.Click(PointerEvent{ClientX: 50 + dx, ClientY: 50 + dy, InstanceID: slot}, slots, points[0])
			return d.Kind == DecisionDrag && !d.Changes() && d.StopPropagation
		},
		gen.IntRange(0, 19),
		gen.Float64Range(-200, 200),
		gen.Float64Range(-200, 200),
	))

	properties.Property("at most one point renders in the selected color", prop.ForAll(
		func(n, selectedSlot int) bool {
			pts := NewPoints(n, nil)
			var selected *Point
			if selectedSlot < n {
				selected = pts[selectedSlot]
			}
			r := &fakeRenderable{}
			newTestSync().SyncColors(r, pts, selected)
			count := 0
			for i := range pts {
				switch r.colorAt(i) {
				case rgb32(SelectedColor):
					count++
				case rgb32(DefaultColor):
				default:
					return false
				}
			}
			if selected == nil {
				return count == 0
			}
			return count == 1
		},
		gen.IntRange(1, 100),
		gen.IntRange(0, 150),
	))

	properties.TestingRun(t)
}
