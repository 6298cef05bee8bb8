package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/probtable/internal/render"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Focused  lipgloss.Style

	Table render.Theme
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Table:   render.DefaultTheme(),
	}
}
