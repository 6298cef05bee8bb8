package config

import (
	"os"

	"github.com/aalvaropc/probtable/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadTable(path string) (domain.DiscreteTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DiscreteTable{}, &domain.OpError{
			Op:   "config.load_table",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLTable
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DiscreteTable{}, &domain.OpError{
			Op:   "config.load_table",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapTable(path, dto)
}
