package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/esolano/thermofan/internal/plant"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	statusIdle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusNormal   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	statusHigh     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	statusCritical = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	damagedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Padding(0, 1)

	pidOn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	pidOff = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func statusStyle(s plant.Status) lipgloss.Style {
	switch s {
	case plant.StatusIdle:
		return statusIdle
	case plant.StatusNormal:
		return statusNormal
	case plant.StatusHigh:
		return statusHigh
	default:
		return statusCritical
	}
}

// gauge renders a fixed-width bar for a value in [lo, hi], colored with
// the given style.
func gauge(value, lo, hi float64, width int, style lipgloss.Style) string {
	frac := 0.0
	if hi > lo {
		frac = (value - lo) / (hi - lo)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar)
}
