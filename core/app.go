package core

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/internal/gesture"
	"github.com/jask/swipeconfirm/internal/slider"
)

// Screen rows above the slider: header, status bar, one blank line.
const (
	sliderX = 2
	sliderY = 3
)

type Model struct {
	width     int
	height    int
	slider    slider.Model
	keys      *KeyRegistry
	logger    *slog.Logger
	status    string
	statusErr bool
	result    gesture.Outcome
	decided   int
	quitting  bool

	startupErr error
}

func NewModel(s slider.Model, keys *KeyRegistry, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.SetOrigin(sliderX, sliderY)
	return Model{
		slider: s,
		keys:   keys,
		logger: logger,
		status: "Ready",
		width:  80,
		height: 16,
	}
}

// WithStartupError reports a non-fatal startup problem in the status bar once
// the program starts.
func (m Model) WithStartupError(err error) Model {
	m.startupErr = err
	return m
}

func (m Model) Init() tea.Cmd {
	if m.startupErr != nil {
		return tea.Batch(m.slider.Init(), ErrorCmd(m.startupErr))
	}
	return m.slider.Init()
}

func (m Model) ActiveScope() string {
	if m.result != 0 {
		return scopeResult
	}
	return scopeIdle
}

// Result is the last outcome received, or zero when cleared.
func (m Model) Result() gesture.Outcome {
	return m.result
}

func (m Model) Slider() slider.Model {
	return m.slider
}
