package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/probtable/internal/domain"
)

// BinomialComputer is satisfied by usecase.ComputeBinomial.
type BinomialComputer interface {
	Execute(ctx context.Context, n int, p float64) (domain.Report, string, error)
}

type Deps struct {
	Computer BinomialComputer

	DefaultProbability float64
	Precision          int

	Logger *slog.Logger
	Debug  bool
}
