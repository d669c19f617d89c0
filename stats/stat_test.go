package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatSingleSample(t *testing.T) {
	var s Stat
	s.Add(42.0, 1)

	require.Equal(t, 1.0, s.Weight())
	require.InDelta(t, 42.0, s.Mean(), 1e-12)
	require.Equal(t, 0.0, s.StdDev(), "single sample must have zero stddev, not NaN")
}

func TestStatZeroWeightMean(t *testing.T) {
	var s Stat
	require.True(t, math.IsNaN(s.Mean()))
	require.Equal(t, 0.0, s.StdDev())
}

func TestStatUnweighted(t *testing.T) {
	var s Stat
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v, 1)
	}

	// Known dataset: mean 5, population stddev 2.
	require.InDelta(t, 5.0, s.Mean(), 1e-12)
	require.InDelta(t, 2.0, s.StdDev(), 1e-12)
}

func TestStatWeighted(t *testing.T) {
	var s Stat
	s.Add(0.1, 100)
	s.Add(0.2, 100)
	s.Add(0.3, 100)

	// Equal weights cancel: same result as the unweighted values.
	require.InDelta(t, 0.2, s.Mean(), 1e-12)
	require.InDelta(t, math.Sqrt(2.0/300.0), s.StdDev(), 1e-12)
}

func TestStatConstantSamples(t *testing.T) {
	var s Stat
	for i := 0; i < 10; i++ {
		s.Add(3.14, 5)
	}

	require.InDelta(t, 3.14, s.Mean(), 1e-12)
	require.Equal(t, 0.0, s.StdDev(), "constant samples must not yield NaN from rounding")
}

func TestStatMergeEquivalence(t *testing.T) {
	left := []float64{1, 2, 3, 4}
	right := []float64{10, 20, 30}

	var whole Stat
	for _, v := range append(append([]float64{}, left...), right...) {
		whole.Add(v, 2)
	}

	var a, b Stat
	for _, v := range left {
		a.Add(v, 2)
	}
	for _, v := range right {
		b.Add(v, 2)
	}

	merged := a
	merged.Merge(b)
	require.InDelta(t, whole.Mean(), merged.Mean(), 1e-12)
	require.InDelta(t, whole.StdDev(), merged.StdDev(), 1e-12)
	require.Equal(t, whole.Weight(), merged.Weight())

	// Commutativity.
	reversed := b
	reversed.Merge(a)
	require.InDelta(t, merged.Mean(), reversed.Mean(), 1e-12)
	require.InDelta(t, merged.StdDev(), reversed.StdDev(), 1e-12)
}

func TestNewStat(t *testing.T) {
	s := NewStat(0.5, 200)

	var manual Stat
	manual.Add(0.5, 200)

	require.Equal(t, manual, s)
}
