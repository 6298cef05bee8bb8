package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/probtable/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads probtable.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	d := y.Probtable.Defaults
	if d.Probability != nil {
		if p := *d.Probability; !(p >= 0 && p <= 1) {
			return cfg, invalidConfig(path, fmt.Errorf("defaults.probability %v must lie in [0,1]: %w", p, domain.ErrInvalidConfig))
		}
		cfg.Defaults.Probability = *d.Probability
	}
	if d.Precision != nil {
		if *d.Precision < 1 || *d.Precision > 15 {
			return cfg, invalidConfig(path, fmt.Errorf("defaults.precision %d must lie in [1,15]: %w", *d.Precision, domain.ErrInvalidConfig))
		}
		cfg.Defaults.Precision = *d.Precision
	}
	if d.Format != "" {
		if d.Format != "pretty" && d.Format != "json" {
			return cfg, invalidConfig(path, fmt.Errorf("defaults.format %q must be pretty or json: %w", d.Format, domain.ErrInvalidConfig))
		}
		cfg.Defaults.Format = d.Format
	}
	if y.Probtable.Paths.TablesDir != "" {
		cfg.Paths.TablesDir = y.Probtable.Paths.TablesDir
	}
	if y.Probtable.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Probtable.Paths.ReportsDir
	}

	return cfg, nil
}

func invalidConfig(path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

type yamlConfig struct {
	Probtable struct {
		Defaults struct {
			Probability *float64 `yaml:"probability"`
			Precision   *int     `yaml:"precision"`
			Format      string   `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			TablesDir  string `yaml:"tables_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"probtable"`
}
