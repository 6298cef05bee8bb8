package usecase

import (
	"context"

	"github.com/aalvaropc/probtable/internal/domain"
)

type ComputeBinomial struct {
	settings
}

func NewComputeBinomial(opts ...Option) *ComputeBinomial {
	return &ComputeBinomial{settings: newSettings(opts)}
}

// Execute builds the binomial distribution for (n, p) and returns its report
// together with the saved report ID (empty when no store is configured).
// Invalid parameters surface as domain.KindInvalidParameter errors.
func (uc *ComputeBinomial) Execute(ctx context.Context, n int, p float64) (domain.Report, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	d, err := domain.NewBinomialDistribution(n, p)
	if err != nil {
		uc.log.Warn("binomial.rejected", "n", n, "p", p, "err", err)
		return domain.Report{}, "", err
	}

	r := domain.NewBinomialReport(d, uc.now())
	uc.log.Info("binomial.computed", "n", n, "p", p, "total", r.Binomial.Total)

	id, err := uc.save(r)
	return r, id, err
}
