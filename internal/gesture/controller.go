package gesture

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Controller owns the drag state of one control and decides, once per
// gesture, whether an outcome fires.
//
// Methods and the settle callback are serialized by an internal mutex, so the
// default timer scheduler may fire on its own goroutine. The outcome handler
// runs without the lock held and may call back into the controller.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	geometry  Geometry
	animation Animation
	events    Events
	onOutcome func(Outcome)
	logger    *slog.Logger

	state    DragState
	session  *Session
	unlisten func()
	animator *returnAnimator
	closed   bool
}

type Option func(*Controller)

func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithAnimation injects the decorative play/pause capability. nil is allowed.
func WithAnimation(a Animation) Option {
	return func(c *Controller) { c.animation = a }
}

// WithScheduler sets the settle timer source. Without it the controller uses
// time.AfterFunc. Hosts with an event loop should supply a scheduler that
// delivers on that loop so the settle lands between their own updates.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.animator.scheduler = s }
}

// WithEvents sets where move/release listeners are attached during a drag.
func WithEvents(e Events) Option {
	return func(c *Controller) { c.events = e }
}

func WithOutcomeHandler(fn func(Outcome)) Option {
	return func(c *Controller) { c.onOutcome = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(geometry Geometry, opts ...Option) *Controller {
	c := &Controller{
		cfg:      DefaultConfig(),
		geometry: geometry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		animator: &returnAnimator{scheduler: timerScheduler{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.events == nil {
		c.events = NewBus()
	}
	c.animator.delay = c.cfg.SettleDelay
	c.animator.logger = c.logger
	c.animator.lock = &c.mu
	return c
}

// Start begins a gesture at coordinate. It is ignored while the orb is
// settling, while another gesture is active, and after Close.
func (c *Controller) Start(coordinate float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	if c.state.Animating {
		c.logger.Debug("start ignored while settling", "coordinate", coordinate)
		return false
	}
	if c.state.Dragging {
		c.logger.Debug("start ignored while dragging", "session", c.session.ID)
		return false
	}

	c.state.Dragging = true
	c.session = &Session{
		ID:              uuid.NewString(),
		StartCoordinate: coordinate,
		StartPosition:   c.state.Position,
	}
	c.pauseAnimation()
	c.attach()
	checkInvariants(c.state)
	c.logger.Debug("gesture started", "session", c.session.ID, "coordinate", coordinate, "position", c.state.Position)
	return true
}

// Move updates the position from a pointer coordinate. It reports whether
// the position changed.
func (c *Controller) Move(coordinate float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.state.Dragging || c.session == nil {
		return false
	}
	if c.geometry == nil {
		return false
	}
	trackWidth, ok := c.geometry.TrackWidth()
	if !ok {
		return false
	}
	maxTravel, ok := MaxTravel(trackWidth, c.cfg.OrbWidth)
	if !ok {
		return false
	}

	delta := (coordinate - c.session.StartCoordinate) / maxTravel
	candidate := Clamp(c.session.StartPosition+delta, -1, 1)
	if candidate == c.state.Position {
		return false
	}
	c.state.Position = candidate
	checkInvariants(c.state)
	return true
}

// End releases the gesture. The outcome, if any, is delivered before the
// return animation is scheduled.
func (c *Controller) End() bool {
	c.mu.Lock()
	if c.closed || !c.state.Dragging {
		c.mu.Unlock()
		return false
	}
	c.state.Dragging = false
	c.detach()

	sessionID := ""
	if c.session != nil {
		sessionID = c.session.ID
	}
	c.session = nil

	position := c.state.Position
	outcome, ok := c.outcome()
	// Animating while the handler runs, so a Start from inside it is refused.
	c.state.Animating = true
	checkInvariants(c.state)
	c.mu.Unlock()

	if ok {
		c.logger.Info("gesture committed", "session", sessionID, "outcome", outcome.String())
		if c.onOutcome != nil {
			c.onOutcome(outcome)
		}
	} else {
		c.logger.Debug("gesture released without outcome", "session", sessionID, "position", position)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The outcome handler may have closed the control.
	if c.closed {
		c.state.Animating = false
		return true
	}
	c.animator.begin(c.settle)
	return true
}

// Close tears the control down: listeners are released and a pending settle
// is cancelled. Later calls on the controller are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.detach()
	c.animator.stop()
	c.session = nil
	c.logger.Debug("controller closed")
}

// settle runs from the animator with c.mu held.
func (c *Controller) settle() {
	if c.closed {
		return
	}
	c.state.Position = 0
	c.state.Animating = false
	checkInvariants(c.state)
	c.playAnimation()
}

func (c *Controller) outcome() (Outcome, bool) {
	switch {
	case c.state.Position >= 1:
		return OutcomeAccept, true
	case c.state.Position <= -1:
		return OutcomeDecline, true
	default:
		return 0, false
	}
}

func (c *Controller) attach() {
	c.detach()
	c.unlisten = c.events.Subscribe(Handlers{
		Move:    func(x float64) { c.Move(x) },
		Release: func() { c.End() },
	})
}

func (c *Controller) detach() {
	if c.unlisten != nil {
		c.unlisten()
		c.unlisten = nil
	}
}

func (c *Controller) pauseAnimation() {
	if c.animation == nil {
		return
	}
	invokeAnimation(c.logger, "pause", c.animation.Pause)
}

func (c *Controller) playAnimation() {
	if c.animation == nil {
		return
	}
	invokeAnimation(c.logger, "play", c.animation.Play)
}

func (c *Controller) State() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Position() float64 { return c.State().Position }
func (c *Controller) Dragging() bool    { return c.State().Dragging }
func (c *Controller) Animating() bool   { return c.State().Animating }
func (c *Controller) Config() Config    { return c.cfg }

func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Session returns a copy of the active gesture session.
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

func (c *Controller) Zone() Zone {
	return ZoneFor(c.Position(), c.cfg)
}

func (c *Controller) VisualOffset() float64 {
	return VisualOffset(c.Position(), c.cfg.MaxVisualOffset)
}

func (c *Controller) Inverted() bool {
	return IsInverted(c.Position())
}

// SettlePending reports whether a return animation is waiting to fire.
func (c *Controller) SettlePending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animator.pending()
}
