package ebitenhost

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"  ", "unlabeled"},
		{"after-click", "after-click"},
		{"grid v1.2", "grid_v1.2"},
		{"../etc/passwd", ".._etc_passwd"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	px := []byte{
		64, 32, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	unpremultiply(px)
	if px[0] != 127 || px[1] != 63 || px[3] != 128 {
		t.Errorf("half alpha = %v", px[:4])
	}
	if px[4] != 10 || px[5] != 20 || px[6] != 30 {
		t.Errorf("opaque pixel changed: %v", px[4:8])
	}
}

func TestScreenshot_Queues(t *testing.T) {
	g, _ := newTestGame(t)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 {
		t.Errorf("queued %d, want 2", len(g.screenshotQueue))
	}
}
