package domain

import "time"

// ReportKind tells renderers which section of a Report is populated.
type ReportKind string

const (
	ReportBinomial ReportKind = "binomial"
	ReportDiscrete ReportKind = "discrete"
)

// Report is the rendering and persistence view of a computed distribution.
// It carries plain numbers only; formatting belongs to the renderers.
type Report struct {
	Kind      ReportKind `json:"kind"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`

	Binomial *BinomialSummary `json:"binomial,omitempty"`
	Discrete *DiscreteSummary `json:"discrete,omitempty"`
}

type BinomialSummary struct {
	N             int       `json:"n"`
	P             float64   `json:"p"`
	Probabilities []float64 `json:"probabilities"`
	Total         float64   `json:"total"`
	Mean          float64   `json:"mean"`
	Variance      float64   `json:"variance"`
	StdDev        float64   `json:"std_dev"`
}

type DiscreteSummary struct {
	TableName     string        `json:"table"`
	TablePath     string        `json:"table_path,omitempty"`
	Rows          []DiscreteRow `json:"rows"`
	ExpectedValue float64       `json:"expected_value"`
	Variance      float64       `json:"variance"`
	StdDev        float64       `json:"std_dev"`
}

// NewBinomialReport snapshots d into a report.
func NewBinomialReport(d *BinomialDistribution, at time.Time) Report {
	return Report{
		Kind:      ReportBinomial,
		Title:     "Binomial distribution",
		CreatedAt: at,
		Binomial: &BinomialSummary{
			N:             d.N(),
			P:             d.P(),
			Probabilities: d.AllProbabilities(),
			Total:         d.TotalProbability(),
			Mean:          d.Mean(),
			Variance:      d.Variance(),
			StdDev:        d.StdDev(),
		},
	}
}

// NewDiscreteReport snapshots d, computed from table t, into a report.
func NewDiscreteReport(t DiscreteTable, path string, d *DiscreteDistribution, at time.Time) Report {
	return Report{
		Kind:      ReportDiscrete,
		Title:     "Discrete random variable",
		CreatedAt: at,
		Discrete: &DiscreteSummary{
			TableName:     t.Name,
			TablePath:     path,
			Rows:          d.Rows(),
			ExpectedValue: d.ExpectedValue(),
			Variance:      d.Variance(),
			StdDev:        d.StdDev(),
		},
	}
}
