package ebitenhost

import "github.com/phanxgames/pointvis"

// InstanceBuffer is a CPU-side instance store. Game rebuilds its projected
// vertices only when the dirty flags say the contents changed.
type InstanceBuffer struct {
	matrices []pointvis.Mat4
	colors   []float32
	count    int

	mounted       bool
	matricesDirty bool
	colorsDirty   bool

	matrixUploads int
	colorUploads  int
}

// NewInstanceBuffer creates a mounted buffer with room for capacity
// instances.
func NewInstanceBuffer(capacity int) *InstanceBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &InstanceBuffer{
		matrices: make([]pointvis.Mat4, 0, capacity),
		colors:   make([]float32, 0, capacity*3),
		mounted:  true,
	}
}

// Mounted implements pointvis.Mounter. A nil buffer is never mounted.
func (b *InstanceBuffer) Mounted() bool {
	return b != nil && b.mounted
}

// SetMounted toggles whether the buffer accepts writes.
func (b *InstanceBuffer) SetMounted(mounted bool) {
	b.mounted = mounted
}

// SetMatrixAt implements pointvis.Renderable. The matrix slice grows with a
// high-water mark and never shrinks.
func (b *InstanceBuffer) SetMatrixAt(i int, m pointvis.Mat4) {
	if i >= len(b.matrices) {
		if i >= cap(b.matrices) {
			grown := make([]pointvis.Mat4, i+1, max(2*cap(b.matrices), i+1))
			copy(grown, b.matrices)
			b.matrices = grown
		} else {
			b.matrices = b.matrices[:i+1]
		}
	}
	b.matrices[i] = m
}

// MarkMatricesDirty implements pointvis.Renderable.
func (b *InstanceBuffer) MarkMatricesDirty() {
	b.matricesDirty = true
	b.matrixUploads++
}

// ColorBuffer implements pointvis.Renderable.
func (b *InstanceBuffer) ColorBuffer(n int) []float32 {
	need := n * 3
	if cap(b.colors) < need {
		b.colors = make([]float32, need)
	}
	b.colors = b.colors[:need]
	return b.colors
}

// MarkColorsDirty implements pointvis.Renderable.
func (b *InstanceBuffer) MarkColorsDirty() {
	b.colorsDirty = true
	b.colorUploads++
}

// SetCount sets how many instances are drawn.
func (b *InstanceBuffer) SetCount(n int) {
	b.count = n
}

// Count returns how many instances are drawn: the requested count limited to
// the instances that have a transform.
func (b *InstanceBuffer) Count() int {
	return min(b.count, len(b.matrices))
}

// Matrix returns the transform at slot i.
func (b *InstanceBuffer) Matrix(i int) pointvis.Mat4 {
	return b.matrices[i]
}

// Color returns the RGB color at slot i, or white if none was written.
func (b *InstanceBuffer) Color(i int) pointvis.Color {
	if i*3+2 >= len(b.colors) {
		return pointvis.Color{R: 1, G: 1, B: 1}
	}
	return pointvis.Color{
		R: float64(b.colors[i*3]),
		G: float64(b.colors[i*3+1]),
		B: float64(b.colors[i*3+2]),
	}
}

// Uploads returns how many times each buffer was marked dirty.
func (b *InstanceBuffer) Uploads() (matrices, colors int) {
	return b.matrixUploads, b.colorUploads
}

// consume reports and clears the dirty flags.
func (b *InstanceBuffer) consume() (matrices, colors bool) {
	matrices, colors = b.matricesDirty, b.colorsDirty
	b.matricesDirty = false
	b.colorsDirty = false
	return matrices, colors
}
