package slider

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/swipeconfirm/internal/gesture"
)

var (
	colorNeutralBorder lipgloss.Color = "#ffee92"
	colorAcceptBorder  lipgloss.Color = "#a8ff92"
	colorDeclineBorder lipgloss.Color = "#e74c6a"
	colorTrackBg       lipgloss.Color = "#181622"
	colorOrbBg         lipgloss.Color = "#25252f"
	colorOrbGlow       lipgloss.Color = "#fca732"
	colorAcceptText    lipgloss.Color = "#6ce796"
	colorDeclineText   lipgloss.Color = "#ff5a8b"
	colorArrowDim      lipgloss.Color = "#585b70"
)

var (
	trackStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Background(colorTrackBg)
	orbStyle = lipgloss.NewStyle().
			Background(colorOrbBg).
			Foreground(colorOrbGlow).
			Bold(true)
	acceptLabelStyle  = lipgloss.NewStyle().Foreground(colorAcceptText).Background(colorTrackBg)
	declineLabelStyle = lipgloss.NewStyle().Foreground(colorDeclineText).Background(colorTrackBg)
	fillStyle         = lipgloss.NewStyle().Background(colorTrackBg)

	arrowLitStyle = lipgloss.NewStyle().Foreground(colorOrbGlow).Background(colorTrackBg).Bold(true)
	arrowDimStyle = lipgloss.NewStyle().Foreground(colorArrowDim).Background(colorTrackBg)
)

func borderColor(z gesture.Zone) lipgloss.Color {
	switch z {
	case gesture.ZoneAccept:
		return colorAcceptBorder
	case gesture.ZoneDecline:
		return colorDeclineBorder
	default:
		return colorNeutralBorder
	}
}

func orbColor(z gesture.Zone) lipgloss.Color {
	switch z {
	case gesture.ZoneAccept:
		return colorAcceptText
	case gesture.ZoneDecline:
		return colorDeclineText
	default:
		return colorOrbGlow
	}
}
