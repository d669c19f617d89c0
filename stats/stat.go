// Package stats provides a streaming weighted accumulator for scalar
// measurement values.
//
// A Stat folds weighted observations into raw moment sums (weighted sum,
// weighted sum of squares, total weight), so mean and standard deviation
// are available at any point without retaining the samples themselves.
// Two Stats built from disjoint sample sets can be merged into one that
// is indistinguishable from a Stat built from the concatenated samples,
// which allows partial aggregation by independent producers.
//
// Standard deviation uses the uncorrected weighted moment formula
// (population stddev, ÷w not ÷(w−1)), matching the convention of the
// measurement pipeline this package serves.
package stats

import "math"

// Stat accumulates weighted observations as raw moment sums.
//
// The zero value is an empty accumulator ready for use. Stat is a plain
// value type: copy it freely, and have each concurrent producer own its
// own Stat, merging into a shared one under external synchronization.
type Stat struct {
	sum        float64
	sumSquares float64
	weight     float64
}

// NewStat creates a Stat holding a single observation of the given
// value and weight.
func NewStat(value, weight float64) Stat {
	return Stat{
		sum:        value * weight,
		sumSquares: value * value * weight,
		weight:     weight,
	}
}

// Add folds one weighted observation into the accumulator in O(1) time
// and space.
func (s *Stat) Add(value, weight float64) {
	s.sum += value * weight
	s.sumSquares += value * value * weight
	s.weight += weight
}

// Merge combines another accumulator into this one by adding the raw
// moment sums. Merge is associative and commutative: merging Stats built
// from disjoint sample sets is equivalent to accumulating the
// concatenation of those sets.
func (s *Stat) Merge(other Stat) {
	s.sum += other.sum
	s.sumSquares += other.sumSquares
	s.weight += other.weight
}

// Weight returns the total accumulated weight.
func (s Stat) Weight() float64 {
	return s.weight
}

// Mean returns the weighted mean of all observations.
//
// An empty accumulator has no mean; the raw division is returned (NaN),
// and callers must guard the zero-weight case themselves.
func (s Stat) Mean() float64 {
	return s.sum / s.weight
}

// StdDev returns the weighted standard deviation of all observations.
//
// A total weight of one or less carries no spread information, so the
// result is defined to be exactly 0 rather than NaN. No small-sample
// bias correction is applied.
func (s Stat) StdDev() float64 {
	if s.weight <= 1 {
		return 0
	}

	mean := s.Mean()
	variance := s.sumSquares/s.weight - mean*mean
	// Rounding can push the variance of near-constant samples slightly
	// below zero.
	if variance < 0 {
		return 0
	}

	return math.Sqrt(variance)
}
