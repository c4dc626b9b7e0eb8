package slider

import tea "github.com/charmbracelet/bubbletea"

// handleMouse turns terminal mouse reports into gesture input. Presses start a
// gesture only on the orb; motion and release go through the bus, which has a
// listener only while a drag is active.
func (m Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.hitOrb(msg.X, msg.Y) {
			return
		}
		m.ctrl.Start(float64(msg.X))
	case tea.MouseActionMotion:
		m.bus.DispatchMove(float64(msg.X))
	case tea.MouseActionRelease:
		m.bus.DispatchRelease()
	}
}

// hitOrb reports whether the screen cell (x, y) lies on the orb.
func (m Model) hitOrb(x, y int) bool {
	if !m.layout.measured {
		return false
	}
	if y != m.layout.y+1 {
		return false
	}
	left := m.layout.x + 1 + m.orbLeft()
	return x >= left && x < left+m.orbWidth()
}

// OrbCell returns the screen cell at the middle of the orb.
func (m Model) OrbCell() (x, y int) {
	return m.layout.x + 1 + m.orbLeft() + m.orbWidth()/2, m.layout.y + 1
}
