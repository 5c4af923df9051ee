package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joescharf/bugdesk/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"})
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF5555"})
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8A6D00", Dark: "#F1FA8C"})
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"})
	helpStyle   = lipgloss.NewStyle().Faint(true)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6272A4")).Padding(1, 2)
	badgeStyles = map[string]lipgloss.Style{
		render.ClassDanger: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
		render.ClassWarn:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F1FA8C")),
		render.ClassOK:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B")),
	}
)

func badge(class, text string) string {
	if st, ok := badgeStyles[class]; ok {
		return st.Render("[" + text + "]")
	}
	return "[" + text + "]"
}
