package ebitenhost

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phanxgames/pointvis"
)

func TestInstanceBuffer_NilNotMounted(t *testing.T) {
	var b *InstanceBuffer
	if b.Mounted() {
		t.Error("nil buffer should not be mounted")
	}
	if !NewInstanceBuffer(0).Mounted() {
		t.Error("new buffer should be mounted")
	}
}

func TestInstanceBuffer_MatricesGrow(t *testing.T) {
	b := NewInstanceBuffer(1)
	m := pointvis.IdentityMat4
	m[12] = 3
	b.SetMatrixAt(4, m)
	if len(b.matrices) != 5 {
		t.Fatalf("len = %d, want 5", len(b.matrices))
	}
	if got := b.Matrix(4); got[12] != 3 {
		t.Errorf("matrix[12] = %v, want 3", got[12])
	}

	b.SetCount(10)
	if b.Count() != 5 {
		t.Errorf("Count = %d, want 5 (limited by matrices)", b.Count())
	}
	b.SetCount(2)
	if b.Count() != 2 {
		t.Errorf("Count = %d, want 2", b.Count())
	}
}

func TestInstanceBuffer_ColorBufferHighWater(t *testing.T) {
	b := NewInstanceBuffer(0)
	buf := b.ColorBuffer(4)
	if len(buf) != 12 {
		t.Fatalf("len = %d, want 12", len(buf))
	}
	buf[0], buf[1], buf[2] = 1, 0.5, 0
	small := b.ColorBuffer(2)
	if len(small) != 6 || cap(small) < 12 {
		t.Errorf("len/cap = %d/%d, want 6/>=12", len(small), cap(small))
	}
	if c := b.Color(0); c.R != 1 || c.G != 0.5 || c.B != 0 {
		t.Errorf("Color(0) = %+v", c)
	}
	if c := b.Color(3); c != (pointvis.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Color past end = %+v, want white", c)
	}
}

func TestInstanceBuffer_DirtyFlags(t *testing.T) {
	b := NewInstanceBuffer(0)
	b.MarkMatricesDirty()
	b.MarkMatricesDirty()
	b.MarkColorsDirty()
	if m, c := b.Uploads(); m != 2 || c != 1 {
		t.Errorf("uploads = %d/%d, want 2/1", m, c)
	}
	if m, c := b.consume(); !m || !c {
		t.Error("expected both dirty")
	}
	if m, c := b.consume(); m || c {
		t.Error("consume should clear flags")
	}
}

func TestInstanceBuffer_SyncedByVisualization(t *testing.T) {
	g, vis := newTestGame(t)
	b := g.Buffer()
	if b.Count() != len(vis.Points()) {
		t.Fatalf("Count = %d, want %d", b.Count(), len(vis.Points()))
	}
	for i, p := range vis.Points() {
		m := b.Matrix(i)
		if got := m.Translation(); r3.Norm(r3.Sub(got, p.Position())) > 1e-6 {
			t.Errorf("slot %d at %v, want %v", i, got, p.Position())
		}
		if c := b.Color(i); c != pointvis.DefaultColor {
			t.Errorf("slot %d color %+v, want default", i, c)
		}
	}
}
