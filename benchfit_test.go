package benchfit_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/benchfit"
	"github.com/arloliu/benchfit/curvefit"
	"github.com/arloliu/benchfit/report"
	"github.com/arloliu/benchfit/snapshot"
)

// familyRuns builds one run per input size for a quadratic workload,
// with three repetitions of the smallest size mixed in.
func familyRuns(t *testing.T) []report.Run {
	t.Helper()

	var runs []report.Run
	for _, n := range []int{8, 16, 32, 64, 128} {
		const iterations = 200
		perIter := 5.0 * float64(n) * float64(n)
		reps := 1
		if n == 8 {
			reps = 3
		}
		for i := 0; i < reps; i++ {
			runs = append(runs, report.Run{
				Name:        "BM_Pairs/" + strconv.Itoa(n),
				Iterations:  iterations,
				RealTime:    perIter * iterations,
				CPUTime:     perIter * iterations,
				Unit:        report.Nanosecond,
				Complexity:  curvefit.OAuto,
				ComplexityN: n,
			})
		}
	}

	return runs
}

func TestEndToEndSummarization(t *testing.T) {
	rows := benchfit.Summarize(familyRuns(t))

	// Repetition stats for BM_Pairs/8 plus the family complexity rows.
	require.Len(t, rows, 4)
	require.Equal(t, "BM_Pairs/8_mean", rows[0].Name)
	require.Equal(t, "BM_Pairs/8_stddev", rows[1].Name)
	require.Equal(t, "BM_Pairs_BigO", rows[2].Name)
	require.Equal(t, "BM_Pairs_RMS", rows[3].Name)
	require.Equal(t, curvefit.ONSquared, rows[2].Complexity)
	require.InDelta(t, 5.0, rows[2].CPUTime, 1e-6)
}

func TestEndToEndSnapshotRoundTrip(t *testing.T) {
	runs := familyRuns(t)

	data, err := snapshot.Encode(runs)
	require.NoError(t, err)

	restored, err := snapshot.Decode(data)
	require.NoError(t, err)

	// Summaries over the restored baseline match the originals.
	require.Equal(t, benchfit.Summarize(runs), benchfit.Summarize(restored))
}

func TestFitWrapper(t *testing.T) {
	ns := []int{8, 16, 32, 64}
	times := []float64{24, 48, 96, 192}

	result := benchfit.Fit(ns, times, curvefit.OAuto)
	require.Equal(t, curvefit.ON, result.Complexity)
	require.InDelta(t, 3.0, result.Coef, 1e-9)
}
