package pointvis

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at level, with the "pointvis"
// prefix and "HH:MM:SS.ms" timestamps.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "pointvis",
	})
}

func defaultLogger() *log.Logger {
	return NewLogger(os.Stderr, log.InfoLevel)
}

// FrameStats holds timing for the most recent frame. Durations are only
// measured in debug mode.
type FrameStats struct {
	Frame       uint64
	Points      int
	Progress    float64
	State       DriverState
	AnimateTime time.Duration
	SyncTime    time.Duration
	// Syncs counts transform uploads requested this frame.
	Syncs int
}

// debugLog writes the frame's stage timings at debug level.
func (v *Visualization) debugLog(stats FrameStats) {
	if !v.debug {
		return
	}
	v.logger.Debug("frame",
		"frame", stats.Frame,
		"points", stats.Points,
		"progress", stats.Progress,
		"state", stats.State,
		StageAnimate.String(), stats.AnimateTime,
		StageSyncInstances.String(), stats.SyncTime,
		"syncs", stats.Syncs,
	)
}

// debugStage logs a single pipeline stage outside the per-frame path.
func (v *Visualization) debugStage(stage Stage, keyvals ...any) {
	if !v.debug {
		return
	}
	v.logger.Debug(stage.String(), keyvals...)
}
