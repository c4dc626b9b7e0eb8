package slider

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/swipeconfirm/internal/gesture"
)

func newTestSlider() Model {
	opts := DefaultOptions()
	opts.ArrowInterval = 0
	opts.Gesture.SettleDelay = time.Millisecond
	m := New(opts)
	m.SetOrigin(2, 2)
	m.Resize(70)
	return m
}

// collect runs cmd and any batched children, returning every message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func outcomes(msgs []tea.Msg) []gesture.Outcome {
	var out []gesture.Outcome
	for _, msg := range msgs {
		if o, ok := msg.(OutcomeMsg); ok {
			out = append(out, o.Outcome)
		}
	}
	return out
}

func TestSliderDragRightAccepts(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(press(x, y))
	if !m.State().Dragging {
		t.Fatal("press on orb did not start a drag")
	}
	m, _ = m.Update(motion(x+40, y+3))
	if m.State().Position != 1 {
		t.Fatalf("position = %v, want 1", m.State().Position)
	}
	if m.Zone() != gesture.ZoneAccept {
		t.Fatalf("zone = %s", m.Zone())
	}
	m, cmd := m.Update(release(x+40, y))
	msgs := collect(cmd)
	if got := outcomes(msgs); len(got) != 1 || got[0] != gesture.OutcomeAccept {
		t.Fatalf("outcomes = %v, want [accept]", got)
	}
	if !m.State().Animating {
		t.Fatal("expected settling after release")
	}
	for _, msg := range msgs {
		if _, ok := msg.(settleMsg); ok {
			m, _ = m.Update(msg)
		}
	}
	if m.State() != (gesture.DragState{}) {
		t.Fatalf("state after settle = %+v", m.State())
	}
}

func TestSliderDragLeftDeclines(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(motion(x-40, y))
	_, cmd := m.Update(release(x-40, y))
	if got := outcomes(collect(cmd)); len(got) != 1 || got[0] != gesture.OutcomeDecline {
		t.Fatalf("outcomes = %v, want [decline]", got)
	}
}

func TestSliderPartialDragHasNoOutcome(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(motion(x+10, y))
	if p := m.State().Position; p <= 0.2 || p >= 1 {
		t.Fatalf("position = %v, want partial accept zone", p)
	}
	_, cmd := m.Update(release(x+10, y))
	if got := outcomes(collect(cmd)); len(got) != 0 {
		t.Fatalf("partial drag emitted %v", got)
	}
}

func TestSliderPressOffOrbIgnored(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(press(x-20, y))
	if m.State().Dragging {
		t.Fatal("press beside the orb started a drag")
	}
	m, _ = m.Update(press(x, y+1))
	if m.State().Dragging {
		t.Fatal("press below the orb started a drag")
	}
	right := tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m, _ = m.Update(right)
	if m.State().Dragging {
		t.Fatal("right button started a drag")
	}
}

func TestSliderMotionWithoutDragIgnored(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(motion(x+40, y))
	m, _ = m.Update(release(x+40, y))
	if m.State() != (gesture.DragState{}) {
		t.Fatalf("state = %+v, want untouched", m.State())
	}
}

func TestSliderUnmeasuredTrackIgnoresInput(t *testing.T) {
	opts := DefaultOptions()
	opts.ArrowInterval = 0
	m := New(opts)
	if m.View() != "" {
		t.Fatal("unmeasured slider should render nothing")
	}
	m, _ = m.Update(press(3, 1))
	if m.State().Dragging {
		t.Fatal("drag started before measurement")
	}
}

func TestSliderStaleSettleIgnoredAfterClose(t *testing.T) {
	m := newTestSlider()
	x, y := m.OrbCell()
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(motion(x+5, y))
	m, cmd := m.Update(release(x+5, y))
	msgs := collect(cmd)
	m.Close()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	if !m.State().Animating {
		t.Fatalf("closed slider settled from a stale tick: %+v", m.State())
	}
}

func TestSliderIgnoresOtherSlidersMessages(t *testing.T) {
	a := newTestSlider()
	b := newTestSlider()
	x, y := a.OrbCell()
	a, _ = a.Update(press(x, y))
	a, _ = a.Update(motion(x+3, y))
	_, cmd := a.Update(release(x+3, y))
	for _, msg := range collect(cmd) {
		b, _ = b.Update(msg)
	}
	if b.State() != (gesture.DragState{}) {
		t.Fatalf("foreign settle touched slider b: %+v", b.State())
	}
}

func TestSliderViewFitsTrack(t *testing.T) {
	m := newTestSlider()
	view := m.View()
	if got := lipgloss.Width(view); got != m.Width() {
		t.Fatalf("view width = %d, want %d", got, m.Width())
	}
	if got := lipgloss.Height(view); got != 3 {
		t.Fatalf("view height = %d, want 3", got)
	}
	for _, want := range []string{"Decline", "Accept"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	x, y := m.OrbCell()
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(motion(x+14, y))
	if got := lipgloss.Width(m.View()); got != m.Width() {
		t.Fatalf("dragged view width = %d, want %d", got, m.Width())
	}
	nx, _ := m.OrbCell()
	if nx <= x {
		t.Fatalf("orb did not move right: %d -> %d", x, nx)
	}
}

func TestResizeClampsToMaxTrackWidth(t *testing.T) {
	m := newTestSlider()
	m.Resize(300)
	if m.Width() != DefaultOptions().MaxTrackWidth+2 {
		t.Fatalf("width = %d", m.Width())
	}
	m.Resize(10)
	if _, ok := m.layout.TrackWidth(); ok {
		t.Fatal("track narrower than the orb should be unmeasured")
	}
}

func TestMaxVisualOffsetPlacesOrb(t *testing.T) {
	tests := []struct {
		offset   float64
		wantLeft int
	}{
		{offset: 2, wantLeft: 30},
		{offset: 24, wantLeft: 52},
		{offset: 1000, wantLeft: 57},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.ArrowInterval = 0
		opts.Gesture.MaxVisualOffset = tt.offset
		m := New(opts)
		m.SetOrigin(2, 2)
		m.Resize(70)

		x, y := m.OrbCell()
		m, _ = m.Update(press(x, y))
		m, _ = m.Update(motion(x+60, y))
		if m.State().Position != 1 {
			t.Fatalf("offset %v: position = %v, want 1", tt.offset, m.State().Position)
		}
		if got := m.orbLeft(); got != tt.wantLeft {
			t.Fatalf("offset %v: orb left = %d, want %d", tt.offset, got, tt.wantLeft)
		}
		if got := lipgloss.Width(m.View()); got != m.Width() {
			t.Fatalf("offset %v: view width = %d, want %d", tt.offset, got, m.Width())
		}
	}
}
