package slider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/internal/gesture"
)

// OutcomeMsg is emitted once per committed gesture.
type OutcomeMsg struct {
	Outcome gesture.Outcome
}

type settleMsg struct {
	owner string
	id    uint64
}

type arrowTickMsg struct {
	owner string
	gen   uint64
}

func outcomeCmd(o gesture.Outcome) tea.Cmd {
	return func() tea.Msg { return OutcomeMsg{Outcome: o} }
}
