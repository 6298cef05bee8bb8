package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/probtable/internal/domain"
)

// MapTable checks the shape of a table file. Probability rules are left to
// domain.NewDiscreteDistribution so they are enforced in one place.
func MapTable(path string, yt YAMLTable) (domain.DiscreteTable, error) {
	name := strings.TrimSpace(yt.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if len(yt.Values) == 0 {
		return domain.DiscreteTable{}, invalidField(path, "values", "at least one value is required")
	}
	if len(yt.Probabilities) != len(yt.Values) {
		return domain.DiscreteTable{}, invalidField(path, "probabilities",
			fmt.Sprintf("expected %d entries to match values, got %d", len(yt.Values), len(yt.Probabilities)))
	}

	return domain.DiscreteTable{
		Name:          name,
		Values:        append([]float64(nil), yt.Values...),
		Probabilities: append([]float64(nil), yt.Probabilities...),
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
