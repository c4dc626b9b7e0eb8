package gesture

import (
	"log/slog"
	"sync"
	"time"
)

// returnAnimator drives the orb back to center after release and holds the
// control in the animating state until it settles.
type returnAnimator struct {
	scheduler Scheduler
	delay     time.Duration
	logger    *slog.Logger
	// lock is held by the caller of begin and stop, and taken by the
	// scheduled callback before it touches any state.
	lock sync.Locker

	gen    uint64
	cancel func()
}

// begin schedules settle to run after the delay. Any earlier pending settle
// is cancelled first.
func (a *returnAnimator) begin(settle func()) {
	a.stop()
	a.gen++
	gen := a.gen
	a.cancel = a.scheduler.AfterFunc(a.delay, func() {
		a.lock.Lock()
		defer a.lock.Unlock()
		if gen != a.gen {
			a.logger.Debug("stale settle ignored", "gen", gen)
			return
		}
		a.cancel = nil
		settle()
	})
}

// stop cancels a pending settle. Callbacks that already fired past the
// scheduler are dropped by the generation check.
func (a *returnAnimator) stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.gen++
}

func (a *returnAnimator) pending() bool {
	return a.cancel != nil
}

// timerScheduler runs callbacks on time.AfterFunc goroutines. The animator's
// lock serializes them with the controller.
type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
