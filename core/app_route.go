package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/internal/gesture"
	"github.com/jask/swipeconfirm/internal/slider"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmd tea.Cmd
		m.slider, cmd = m.slider.Update(msg)
		return m, cmd
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case slider.OutcomeMsg:
		m.result = msg.Outcome
		m.decided++
		m.logger.Info("outcome received", "outcome", msg.Outcome.String(), "count", m.decided)
		return m, StatusCmd(resultText(msg.Outcome))
	case tea.KeyMsg:
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			m.slider.Close()
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "clear", scope) {
			m.result = 0
			return m, StatusCmd("Ready")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.slider, cmd = m.slider.Update(msg)
	return m, cmd
}

func resultText(o gesture.Outcome) string {
	switch o {
	case gesture.OutcomeAccept:
		return "Accepted"
	case gesture.OutcomeDecline:
		return "Declined"
	default:
		return ""
	}
}
