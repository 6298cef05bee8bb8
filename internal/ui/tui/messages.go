package tui

import "github.com/aalvaropc/probtable/internal/domain"

type binomialDoneMsg struct {
	report domain.Report
	id     string
	err    error
}
