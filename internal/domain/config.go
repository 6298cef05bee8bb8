package domain

// Config represents the probtable configuration loaded from probtable.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	Probability float64
	Precision   int
	Format      string
}

type PathsConfig struct {
	TablesDir  string
	ReportsDir string
}

// DefaultConfig provides sane defaults if probtable.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Probability: 0.5,
			Precision:   6,
			Format:      "pretty",
		},
		Paths: PathsConfig{
			TablesDir:  "tables",
			ReportsDir: "reports",
		},
	}
}
