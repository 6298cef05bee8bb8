package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/ports"
)

type DescribeDiscrete struct {
	settings
	tables ports.TableLoader
}

func NewDescribeDiscrete(tl ports.TableLoader, opts ...Option) *DescribeDiscrete {
	return &DescribeDiscrete{settings: newSettings(opts), tables: tl}
}

// Execute loads a probability table and computes its expected value,
// variance and standard deviation.
func (uc *DescribeDiscrete) Execute(ctx context.Context, tableNameOrPath string) (domain.Report, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	tbl, err := uc.tables.LoadTable(tableNameOrPath)
	if err != nil {
		return domain.Report{}, "", err
	}

	d, err := domain.NewDiscreteDistribution(tbl.Values, tbl.Probabilities)
	if err != nil {
		return domain.Report{}, "", fmt.Errorf("table %q: %w", tbl.Name, err)
	}

	r := domain.NewDiscreteReport(tbl, tableNameOrPath, d, uc.now())
	uc.log.Info("discrete.computed",
		"table", tbl.Name,
		"rows", d.Len(),
		"expected_value", d.ExpectedValue(),
		"variance", d.Variance(),
	)

	id, err := uc.save(r)
	return r, id, err
}
