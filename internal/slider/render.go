package slider

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/swipeconfirm/internal/gesture"
)

const (
	declineLabel = " ✕ Decline"
	acceptLabel  = "Accept ✓ "
)

func (m Model) View() string {
	width := m.layout.width
	if !m.layout.measured {
		return ""
	}
	zone := m.ctrl.Zone()
	inverted := m.ctrl.Inverted()

	left := m.orbLeft()
	right := left + m.orbWidth()

	before := m.renderSide(left, true, inverted)
	after := m.renderSide(width-right, false, inverted)
	orb := orbStyle.Foreground(orbColor(zone)).Render(orbFace(m.orbWidth(), m.ctrl.Dragging()))

	return trackStyle.
		BorderForeground(borderColor(zone)).
		Width(width).
		Render(before + orb + after)
}

// renderSide fills the span on one side of the orb with its label and arrows.
func (m Model) renderSide(span int, declineSide, inverted bool) string {
	if span <= 0 {
		return ""
	}
	label, style := acceptLabel, acceptLabelStyle
	arrows := m.arrows.Right()
	if declineSide {
		label, style = declineLabel, declineLabelStyle
		arrows = m.arrows.Left()
	}
	if inverted {
		style = style.Reverse(true)
	}
	labelW := ansi.StringWidth(label)
	arrowsW := ansi.StringWidth(arrows)

	if span < labelW+arrowsW+2 {
		return padCells(ansi.Truncate(style.Render(label), span, ""), span)
	}
	gap := span - labelW - arrowsW - 1
	if declineSide {
		return style.Render(label) + fillStyle.Render(strings.Repeat(" ", gap)) + arrows + fillStyle.Render(" ")
	}
	return fillStyle.Render(" ") + arrows + fillStyle.Render(strings.Repeat(" ", gap)) + style.Render(label)
}

func orbFace(width int, dragging bool) string {
	core := "◉"
	if dragging {
		core = "●"
	}
	if width < 3 {
		return core + strings.Repeat(" ", max(0, width-1))
	}
	inner := width - 2
	pad := (inner - 1) / 2
	return "(" + strings.Repeat(" ", pad) + core + strings.Repeat(" ", inner-1-pad) + ")"
}

func padCells(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + fillStyle.Render(strings.Repeat(" ", width-w))
}

// Describe summarises the control for a status line.
func Describe(s gesture.DragState, z gesture.Zone) string {
	var b strings.Builder
	switch {
	case s.Dragging:
		b.WriteString("dragging")
	case s.Animating:
		b.WriteString("settling")
	default:
		b.WriteString("idle")
	}
	b.WriteString(" · ")
	b.WriteString(z.String())
	return b.String()
}
