package pointvis

import "math"

// DefaultDragThreshold is the pointer travel, in pixels, above which a click
// is treated as the end of a drag.
const DefaultDragThreshold = 5.0

// PointerEvent is a pointer-down or click reported by the host for the
// instance under the cursor.
type PointerEvent struct {
	ClientX, ClientY float64
	// InstanceID is the render slot under the cursor, or -1 for none.
	InstanceID int
}

// DecisionKind says what a click should do to the selection.
type DecisionKind uint8

const (
	DecisionNone     DecisionKind = iota // click did not resolve to a point
	DecisionDrag                         // pointer moved too far; selection unchanged
	DecisionSelect                       // select Decision.Point
	DecisionDeselect                     // clear the selection
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionNone:
		return "none"
	case DecisionDrag:
		return "drag"
	case DecisionSelect:
		return "select"
	case DecisionDeselect:
		return "deselect"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a click.
type Decision struct {
	Kind DecisionKind
	// Point is the point to select for DecisionSelect and nil otherwise.
	Point *Point
	// StopPropagation asks the host not to pass the click on.
	StopPropagation bool
}

// Changes reports whether the decision changes the selection.
func (d Decision) Changes() bool {
	return d.Kind == DecisionSelect || d.Kind == DecisionDeselect
}

// Picker turns pointer-down and click pairs into selection toggles. Both
// object picking and camera dragging share the pointer, so a click whose
// pointer traveled more than Threshold since pointer-down is ignored.
type Picker struct {
	Threshold float64

	downX, downY float64
}

// NewPicker creates a picker with the given drag threshold. Negative values
// use DefaultDragThreshold.
func NewPicker(threshold float64) *Picker {
	if threshold < 0 {
		threshold = DefaultDragThreshold
	}
	return &Picker{Threshold: threshold}
}

// PointerDown records where the pointer went down.
func (p *Picker) PointerDown(e PointerEvent) {
	p.downX = e.ClientX
	p.downY = e.ClientY
}

// Distance returns the screen distance from the recorded pointer-down to e.
func (p *Picker) Distance(e PointerEvent) float64 {
	return math.Hypot(p.downX-e.ClientX, p.downY-e.ClientY)
}

// Click decides how a click on e.InstanceID toggles selected.
func (p *Picker) Click(e PointerEvent, slots *SlotMap, selected *Point) Decision {
	if p.Distance(e) > p.Threshold {
		return Decision{Kind: DecisionDrag, StopPropagation: true}
	}
	if slots == nil {
		return Decision{Kind: DecisionNone}
	}
	point, ok := slots.Resolve(e.InstanceID)
	if !ok {
		return Decision{Kind: DecisionNone}
	}
	if point == selected {
		return Decision{Kind: DecisionDeselect}
	}
	return Decision{Kind: DecisionSelect, Point: point}
}
