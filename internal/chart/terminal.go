package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/joescharf/bugdesk/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"})
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"})
)

// Terminal renders cfg as horizontal bars at most width cells wide. Bars
// are scaled from zero against this chart's own maximum.
func Terminal(cfg render.ChartConfig, width int) string {
	var b strings.Builder
	if cfg.Title != "" {
		b.WriteString(titleStyle.Render(cfg.Title))
		b.WriteString("\n")
	}

	if len(cfg.Data.Labels) == 0 || len(cfg.Data.Datasets) == 0 {
		b.WriteString(mutedStyle.Render("  (no data)"))
		b.WriteString("\n")
		return b.String()
	}
	values := cfg.Data.Datasets[0].Data

	labelW := 0
	for _, l := range cfg.Data.Labels {
		if w := runewidth.StringWidth(l); w > labelW {
			labelW = w
		}
	}
	barW := width - labelW - 10
	if barW < 10 {
		barW = 10
	}
	max := cfg.Max()

	for i, label := range cfg.Data.Labels {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		n := 0
		if max > 0 {
			n = v * barW / max
		}
		if v > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(&b, "  %s %s %d\n",
			runewidth.FillRight(label, labelW),
			barStyle.Render(strings.Repeat("█", n)),
			v)
	}
	return b.String()
}
