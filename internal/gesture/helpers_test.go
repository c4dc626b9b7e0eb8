package gesture

import (
	"errors"
	"time"
)

type fakeTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	timers []*fakeTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// fire runs every due, uncancelled callback and reports how many ran.
func (s *manualScheduler) fire() int {
	n := 0
	pending := s.timers
	s.timers = nil
	for _, t := range pending {
		if t.cancelled || t.fired {
			continue
		}
		t.fired = true
		t.fn()
		n++
	}
	return n
}

// fireCancelled runs callbacks regardless of cancellation, simulating a tick
// that was already in flight.
func (s *manualScheduler) fireCancelled() {
	pending := s.timers
	s.timers = nil
	for _, t := range pending {
		t.fn()
	}
}

type recordingAnimation struct {
	plays  int
	pauses int
	err    error
	panics bool
}

func (a *recordingAnimation) Play() error {
	a.plays++
	if a.panics {
		panic("lottie gone")
	}
	return a.err
}

func (a *recordingAnimation) Pause() error {
	a.pauses++
	if a.panics {
		panic("lottie gone")
	}
	return a.err
}

var errAnimation = errors.New("animation unavailable")

func fixedTrack(width float64) Geometry {
	return GeometryFunc(func() (float64, bool) { return width, true })
}

type harness struct {
	ctrl     *Controller
	bus      *Bus
	sched    *manualScheduler
	anim     *recordingAnimation
	outcomes []Outcome
}

func newHarness(opts ...Option) *harness {
	h := &harness{bus: NewBus(), sched: &manualScheduler{}, anim: &recordingAnimation{}}
	base := []Option{
		WithEvents(h.bus),
		WithScheduler(h.sched),
		WithAnimation(h.anim),
		WithOutcomeHandler(func(o Outcome) { h.outcomes = append(h.outcomes, o) }),
	}
	h.ctrl = New(fixedTrack(600), append(base, opts...)...)
	return h
}
