package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SumTolerance is how far the probabilities of a discrete table may drift from 1.
const SumTolerance = 1e-9

// DiscreteRow is one line of the hand-calculation table for a discrete variable.
type DiscreteRow struct {
	X         float64 `json:"x"`
	P         float64 `json:"p"`
	XP        float64 `json:"x_p"`
	Deviation float64 `json:"deviation"`
	DevSq     float64 `json:"deviation_sq"`
	Term      float64 `json:"term"`
}

// DiscreteDistribution is a random variable given by an explicit mass table.
type DiscreteDistribution struct {
	values   []float64
	probs    []float64
	mean     float64
	variance float64
}

func NewDiscreteDistribution(values, probabilities []float64) (*DiscreteDistribution, error) {
	const op = "discrete.new"

	if len(values) == 0 || len(probabilities) == 0 {
		return nil, invalidParameter(op, "values and probabilities must not be empty")
	}
	if len(values) != len(probabilities) {
		return nil, invalidParameter(op, fmt.Sprintf("got %d values but %d probabilities", len(values), len(probabilities)))
	}
	for i, p := range probabilities {
		if !(p >= 0 && p <= 1) {
			return nil, invalidParameter(op, fmt.Sprintf("probabilities[%d] = %v must lie in [0,1]", i, p))
		}
	}
	if sum := floats.Sum(probabilities); math.Abs(sum-1) > SumTolerance {
		return nil, invalidParameter(op, fmt.Sprintf("probabilities sum to %v, not 1", sum))
	}

	d := &DiscreteDistribution{
		values: append([]float64(nil), values...),
		probs:  append([]float64(nil), probabilities...),
	}

	d.mean = floats.Dot(d.values, d.probs)
	for i, x := range d.values {
		dev := x - d.mean
		d.variance += dev * dev * d.probs[i]
	}
	return d, nil
}

// ExpectedValue is μ = Σ x·P(x).
func (d *DiscreteDistribution) ExpectedValue() float64 { return d.mean }

// Variance is Σ (x-μ)²·P(x).
func (d *DiscreteDistribution) Variance() float64 { return d.variance }

func (d *DiscreteDistribution) StdDev() float64 { return math.Sqrt(d.variance) }

func (d *DiscreteDistribution) Len() int { return len(d.values) }

// Rows returns the per-value terms behind ExpectedValue and Variance.
func (d *DiscreteDistribution) Rows() []DiscreteRow {
	rows := make([]DiscreteRow, len(d.values))
	for i, x := range d.values {
		p := d.probs[i]
		dev := x - d.mean
		rows[i] = DiscreteRow{
			X:         x,
			P:         p,
			XP:        x * p,
			Deviation: dev,
			DevSq:     dev * dev,
			Term:      dev * dev * p,
		}
	}
	return rows
}
