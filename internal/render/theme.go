package render

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Total    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Total:    lipgloss.NewStyle().Bold(true),
	}
}

// PlainTheme renders every element as-is.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Subtitle: s, Header: s, Total: s}
}
