package slider

import (
	"io"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/swipeconfirm/internal/gesture"
)

// Options configures the widget. Widths are terminal cells.
type Options struct {
	Gesture       gesture.Config
	MaxTrackWidth int
	ArrowInterval time.Duration
	Logger        *slog.Logger
}

func DefaultOptions() Options {
	cfg := gesture.DefaultConfig()
	cfg.OrbWidth = 7
	cfg.MaxVisualOffset = 28
	return Options{
		Gesture:       cfg,
		MaxTrackWidth: 64,
		ArrowInterval: 180 * time.Millisecond,
	}
}

// layout is the measured track: content width and the screen cell of the
// track's top-left border corner.
type layout struct {
	width    int
	measured bool
	x, y     int
}

func (l *layout) TrackWidth() (float64, bool) {
	if !l.measured {
		return 0, false
	}
	return float64(l.width), true
}

// Model is a drag-to-confirm slider. Copies share state; only one copy should
// be driven by a program.
type Model struct {
	id     string
	opts   Options
	logger *slog.Logger

	ctrl   *gesture.Controller
	bus    *gesture.Bus
	sched  *teaScheduler
	arrows *Arrows
	queue  *cmdQueue
	layout *layout
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.MaxTrackWidth <= 0 {
		opts.MaxTrackWidth = DefaultOptions().MaxTrackWidth
	}
	id := uuid.NewString()
	queue := &cmdQueue{}
	m := Model{
		id:     id,
		opts:   opts,
		logger: logger.With("slider", id[:8]),
		bus:    gesture.NewBus(),
		sched:  newTeaScheduler(id, queue),
		arrows: newArrows(id, opts.ArrowInterval, queue),
		queue:  queue,
		layout: &layout{},
	}
	m.ctrl = gesture.New(m.layout,
		gesture.WithConfig(opts.Gesture),
		gesture.WithEvents(m.bus),
		gesture.WithScheduler(m.sched),
		gesture.WithAnimation(m.arrows),
		gesture.WithOutcomeHandler(func(o gesture.Outcome) { queue.push(outcomeCmd(o)) }),
		gesture.WithLogger(m.logger),
	)
	return m
}

func (m Model) Init() tea.Cmd {
	if err := m.arrows.Play(); err != nil {
		m.logger.Debug("arrows not started", "err", err)
	}
	return m.queue.drain()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case settleMsg:
		if msg.owner == m.id {
			m.sched.fire(msg.id)
		}
	case arrowTickMsg:
		if msg.owner == m.id {
			m.queue.push(m.arrows.advance(msg))
		}
	}
	return m, m.queue.drain()
}

// SetOrigin places the track's top-left corner on screen for hit-testing.
func (m Model) SetOrigin(x, y int) {
	m.layout.x, m.layout.y = x, y
}

// Resize fits the track into a window of the given width.
func (m Model) Resize(windowWidth int) {
	w := windowWidth - 2*m.layout.x - 2
	if w > m.opts.MaxTrackWidth {
		w = m.opts.MaxTrackWidth
	}
	m.layout.width = w
	m.layout.measured = float64(w) > m.opts.Gesture.OrbWidth
	m.logger.Debug("track resized", "width", w, "measured", m.layout.measured)
}

// Close tears down the controller and stops decorative timers.
func (m Model) Close() {
	m.ctrl.Close()
	m.arrows.close()
	m.sched.reset()
}

func (m Model) State() gesture.DragState        { return m.ctrl.State() }
func (m Model) Zone() gesture.Zone              { return m.ctrl.Zone() }
func (m Model) Controller() *gesture.Controller { return m.ctrl }
func (m Model) Arrows() *Arrows                 { return m.arrows }

// Width is the rendered width including borders.
func (m Model) Width() int {
	return m.layout.width + 2
}

func (m Model) orbWidth() int {
	return int(m.opts.Gesture.OrbWidth)
}

// orbLeft is the orb's first content column at the current position. The
// controller's visual offset is clamped so the orb stays inside the track.
func (m Model) orbLeft() int {
	center := (m.layout.width - m.orbWidth()) / 2
	if !m.layout.measured {
		return max(0, center)
	}
	left := center + int(math.Round(m.ctrl.VisualOffset()))
	return min(max(0, left), m.layout.width-m.orbWidth())
}
