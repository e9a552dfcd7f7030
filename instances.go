package pointvis

// Renderable is the host's instanced mesh. Implementations copy what they are
// given; pointvis never retains a reference into them and they must not
// retain one into pointvis.
type Renderable interface {
	// SetMatrixAt stores the transform for instance slot i.
	SetMatrixAt(i int, m Mat4)
	// MarkMatricesDirty flags the transform buffer for upload.
	MarkMatricesDirty()
	// ColorBuffer returns a buffer of at least 3*n floats holding RGB per
	// instance. The host owns and may reuse it.
	ColorBuffer(n int) []float32
	// MarkColorsDirty flags the color buffer for upload.
	MarkColorsDirty()
}

// Mounter is implemented by renderables that exist before the rendering side
// is ready. Unmounted renderables are skipped.
type Mounter interface {
	Mounted() bool
}

// mounted reports whether r can accept writes.
func mounted(r Renderable) bool {
	if r == nil {
		return false
	}
	if m, ok := r.(Mounter); ok {
		return m.Mounted()
	}
	return true
}

// InstanceSync writes point transforms and colors into a Renderable.
type InstanceSync struct {
	orientation Orientation
	defaultRGB  [3]float32
	selectedRGB [3]float32
	slots       *SlotMap
}

// NewInstanceSync creates a syncer using the given orientation and colors.
// slots receives the slot order on every transform sync; nil allocates one.
func NewInstanceSync(orientation Orientation, def, selected Color, slots *SlotMap) *InstanceSync {
	if slots == nil {
		slots = NewSlotMap()
	}
	return &InstanceSync{
		orientation: orientation,
		defaultRGB:  rgb32(def),
		selectedRGB: rgb32(selected),
		slots:       slots,
	}
}

func rgb32(c Color) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// Slots returns the slot map updated by SyncTransforms.
func (s *InstanceSync) Slots() *SlotMap {
	return s.slots
}

// SyncTransforms writes one transform per point into slot i and marks the
// transform buffer dirty once. It is a no-op if r is not mounted.
func (s *InstanceSync) SyncTransforms(r Renderable, points []*Point) bool {
	if !mounted(r) {
		return false
	}
	for i, p := range points {
		r.SetMatrixAt(i, s.orientation.Compose(p.X, p.Y, p.Z))
	}
	r.MarkMatricesDirty()
	s.slots.Record(points)
	return true
}

// SyncColors writes the selected color for the point identical to selected
// and the default color for all others, then marks the color buffer dirty
// once. It is a no-op if r is not mounted.
func (s *InstanceSync) SyncColors(r Renderable, points []*Point, selected *Point) bool {
	if !mounted(r) {
		return false
	}
	buf := r.ColorBuffer(len(points))
	for i, p := range points {
		c := &s.defaultRGB
		if selected != nil && p == selected {
			c = &s.selectedRGB
		}
		copy(buf[i*3:i*3+3], c[:])
	}
	r.MarkColorsDirty()
	return true
}
