package config

type YAMLTable struct {
	Name          string    `yaml:"name"`
	Values        []float64 `yaml:"values"`
	Probabilities []float64 `yaml:"probabilities"`
}
