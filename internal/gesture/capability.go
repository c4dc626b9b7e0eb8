package gesture

import (
	"fmt"
	"log/slog"
	"time"
)

// Geometry reports the current track width. ok is false while the track has
// not been measured.
type Geometry interface {
	TrackWidth() (width float64, ok bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func() (float64, bool)

func (f GeometryFunc) TrackWidth() (float64, bool) { return f() }

// Animation is the decorative play/pause capability paused while dragging.
type Animation interface {
	Play() error
	Pause() error
}

// Scheduler runs fn once after d on the goroutine that owns the controller.
// cancel prevents a pending fn from running.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// invokeAnimation calls a decorative capability without letting its failure
// reach the gesture.
func invokeAnimation(logger *slog.Logger, op string, call func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("animation panicked", "op", op, "panic", fmt.Sprint(r))
		}
	}()
	if err := call(); err != nil {
		logger.Debug("animation failed", "op", op, "err", err)
	}
}
