package pointvis

import "github.com/google/uuid"

// SlotMap links render slots to points by ID. Slots are recorded from what
// was last written to the renderable, so a slot reported by a pointer event
// resolves to the point drawn there even after the collection changes.
type SlotMap struct {
	slots []uuid.UUID
	byID  map[uuid.UUID]*Point
}

// NewSlotMap creates an empty slot map.
func NewSlotMap() *SlotMap {
	return &SlotMap{byID: make(map[uuid.UUID]*Point)}
}

// Index rebuilds the ID lookup for points. Call it whenever the collection
// changes.
func (m *SlotMap) Index(points []*Point) {
	clear(m.byID)
	for _, p := range points {
		m.byID[p.ID] = p
	}
}

// Record stores the slot order for points, reusing the slot buffer.
func (m *SlotMap) Record(points []*Point) {
	if cap(m.slots) < len(points) {
		m.slots = make([]uuid.UUID, len(points))
	}
	m.slots = m.slots[:len(points)]
	for i, p := range points {
		m.slots[i] = p.ID
	}
}

// Len returns the number of recorded slots.
func (m *SlotMap) Len() int {
	return len(m.slots)
}

// ID returns the ID recorded at slot.
func (m *SlotMap) ID(slot int) (uuid.UUID, bool) {
	if slot < 0 || slot >= len(m.slots) {
		return uuid.Nil, false
	}
	return m.slots[slot], true
}

// Resolve returns the point drawn at slot. It reports false for slots out of
// range and for points no longer in the collection.
func (m *SlotMap) Resolve(slot int) (*Point, bool) {
	id, ok := m.ID(slot)
	if !ok {
		return nil, false
	}
	p, ok := m.byID[id]
	return p, ok
}

// Lookup returns the point with the given ID.
func (m *SlotMap) Lookup(id uuid.UUID) (*Point, bool) {
	p, ok := m.byID[id]
	return p, ok
}
