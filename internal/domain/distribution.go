package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BinomialDistribution is the probability mass function of a binomial variable
// with fixed (n, p). The vector P(X=0)..P(X=n) is computed once by the
// constructor and never changes afterwards, so instances are safe for
// concurrent reads.
type BinomialDistribution struct {
	n     int
	p     float64
	probs []float64
}

// NewBinomialDistribution validates n and p and computes the probability vector.
func NewBinomialDistribution(n int, p float64) (*BinomialDistribution, error) {
	if n < 0 {
		return nil, invalidParameter("binomial.new", "trial count must be non-negative")
	}
	if !(p >= 0 && p <= 1) {
		return nil, invalidParameter("binomial.new", "success probability must lie in [0,1]")
	}

	probs := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		probs[k] = Probability(n, k, p)
	}

	return &BinomialDistribution{n: n, p: p, probs: probs}, nil
}

func (d *BinomialDistribution) N() int { return d.n }

func (d *BinomialDistribution) P() float64 { return d.p }

// ProbabilityAt returns P(X=k), or 0 for k outside [0, n].
func (d *BinomialDistribution) ProbabilityAt(k int) float64 {
	if k < 0 || k > d.n {
		return 0
	}
	return d.probs[k]
}

// AllProbabilities returns a copy of the probability vector indexed by k.
func (d *BinomialDistribution) AllProbabilities() []float64 {
	out := make([]float64, len(d.probs))
	copy(out, d.probs)
	return out
}

// TotalProbability sums the vector. It should be within rounding error of 1.
func (d *BinomialDistribution) TotalProbability() float64 {
	return floats.Sum(d.probs)
}

// Mean is n·p.
func (d *BinomialDistribution) Mean() float64 {
	return float64(d.n) * d.p
}

// Variance is n·p·(1-p).
func (d *BinomialDistribution) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

func (d *BinomialDistribution) StdDev() float64 {
	return math.Sqrt(d.Variance())
}
