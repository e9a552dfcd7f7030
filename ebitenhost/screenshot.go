package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is used when RunConfig.ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the current frame. The PNG is
// written at the end of Draw as <dir>/<timestamp>_<label>.png.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots writes every queued capture of screen.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
		g.logger.Error("screenshot", "dir", g.screenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := &image.NRGBA{Pix: unpremultiply(pixels), Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		path := filepath.Join(g.screenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			g.logger.Error("screenshot", "err", err)
			continue
		}
		g.logger.Info("screenshot saved", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight alpha in
// place.
func unpremultiply(pixels []byte) []byte {
	for i := 0; i+3 < len(pixels); i += 4 {
		a := int(pixels[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for j := range 3 {
			pixels[i+j] = uint8(min(int(pixels[i+j])*255/a, 255))
		}
	}
	return pixels
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing everything
// else with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
