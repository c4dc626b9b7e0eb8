package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/swipeconfirm/internal/gesture"
	"github.com/jask/swipeconfirm/internal/slider"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	body := fitHeight(renderBody(m), available)
	main := strings.Join([]string{header, status, body}, "\n")
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// renderBody places the slider at (sliderX, sliderY) so hit-testing matches
// what is drawn.
func renderBody(m Model) string {
	pad := strings.Repeat(" ", sliderX)
	lines := []string{""}
	track := m.slider.View()
	if track == "" {
		lines = append(lines, pad+hintStyle.Render("Window too narrow for the slider"))
		return strings.Join(lines, "\n")
	}
	for _, l := range strings.Split(track, "\n") {
		lines = append(lines, pad+l)
	}
	lines = append(lines, "")
	switch m.result {
	case gesture.OutcomeAccept:
		lines = append(lines, pad+acceptedStyle.Render(resultText(m.result)))
	case gesture.OutcomeDecline:
		lines = append(lines, pad+declinedStyle.Render(resultText(m.result)))
	default:
		lines = append(lines, pad+hintStyle.Render("Drag the orb fully left or right"))
	}
	return strings.Join(lines, "\n")
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("swipeconfirm")
	right := headerHintStyle.Render(slider.Describe(m.slider.State(), m.slider.Zone()))
	if m.decided > 0 {
		right = headerHintStyle.Render(fmt.Sprintf("%d decided · ", m.decided)) + right
	}
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
