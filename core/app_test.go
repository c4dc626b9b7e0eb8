package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/internal/gesture"
	"github.com/jask/swipeconfirm/internal/slider"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := slider.DefaultOptions()
	opts.ArrowInterval = 0
	opts.Gesture.SettleDelay = time.Millisecond
	m := NewModel(slider.New(opts), NewKeyRegistry(DefaultKeyBindings()), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	return next.(Model)
}

// run feeds msg to the model and then every message its commands produce,
// until the model goes quiet.
func run(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next, cmd := m.Update(queue[0])
		m = next.(Model)
		queue = append(queue[1:], expand(cmd)...)
	}
	return m
}

func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, expand(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func drag(m Model, dx int) Model {
	x, y := m.Slider().OrbCell()
	m = run(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = run(m, tea.MouseMsg{X: x + dx, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return run(m, tea.MouseMsg{X: x + dx, Y: y, Action: tea.MouseActionRelease})
}

func TestFullDragShowsAccepted(t *testing.T) {
	m := drag(newTestModel(t), 60)
	if m.Result() != gesture.OutcomeAccept {
		t.Fatalf("result = %v, want accept", m.Result())
	}
	if !strings.Contains(m.View(), "Accepted") {
		t.Fatalf("view missing Accepted:\n%s", m.View())
	}
	if m.Slider().State() != (gesture.DragState{}) {
		t.Fatalf("slider did not settle: %+v", m.Slider().State())
	}
}

func TestFullDragLeftShowsDeclined(t *testing.T) {
	m := drag(newTestModel(t), -60)
	if m.Result() != gesture.OutcomeDecline {
		t.Fatalf("result = %v, want decline", m.Result())
	}
	if !strings.Contains(m.View(), "Declined") {
		t.Fatal("view missing Declined")
	}
}

func TestPartialDragLeavesNoResult(t *testing.T) {
	m := drag(newTestModel(t), 8)
	if m.Result() != 0 {
		t.Fatalf("result = %v after partial drag", m.Result())
	}
}

func TestClearResetsResult(t *testing.T) {
	m := drag(newTestModel(t), 60)
	m = run(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.Result() != 0 {
		t.Fatal("clear did not reset the result")
	}
	if m.ActiveScope() != scopeIdle {
		t.Fatalf("scope = %s", m.ActiveScope())
	}
}

func TestQuitClosesSlider(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit did not return tea.Quit")
	}
	if !m.Slider().Controller().Closed() {
		t.Fatal("slider controller left open on quit")
	}
	if m.View() != "Goodbye\n" {
		t.Fatalf("view after quit = %q", m.View())
	}
}

func TestNarrowWindowHint(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 8, Height: 12})
	m = next.(Model)
	if body := renderBody(m); !strings.Contains(body, "too narrow") {
		t.Fatalf("expected narrow hint:\n%s", body)
	}
}

func TestStartupErrorShownInStatusBar(t *testing.T) {
	m := newTestModel(t).WithStartupError(errors.New("open log file: permission denied"))
	for _, msg := range expand(m.Init()) {
		m = run(m, msg)
	}
	if !m.statusErr {
		t.Fatal("startup error not flagged")
	}
	if bar := RenderStatusBar(m); !strings.Contains(bar, "permission denied") {
		t.Fatalf("status bar = %q", bar)
	}

	m = drag(m, 60)
	if m.statusErr || m.status != "Accepted" {
		t.Fatalf("status = %q err=%v after outcome", m.status, m.statusErr)
	}
}
