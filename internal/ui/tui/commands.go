package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdComputeBinomial(deps Deps, n int, p float64) tea.Cmd {
	return func() tea.Msg {
		if deps.Computer == nil {
			return binomialDoneMsg{err: errors.New("Computer is nil")}
		}
		r, id, err := deps.Computer.Execute(context.Background(), n, p)
		return binomialDoneMsg{report: r, id: id, err: err}
	}
}
