package report

import (
	"fmt"

	"github.com/arloliu/benchfit/curvefit"
	"github.com/arloliu/benchfit/stats"
)

// ComputeStats aggregates the repetitions of a single benchmark
// configuration into a "_mean" and a "_stddev" row.
//
// Failed runs are excluded from the aggregation; if fewer than two
// valid runs remain the result is nil, since repetition statistics are
// meaningless below two samples. Per-iteration real time, per-iteration
// CPU time, items/sec and bytes/sec are streamed into independent
// stats.Stat accumulators weighted by each run's iteration count. The
// mean row re-multiplies the time means by the iteration count to
// restore accumulated-time semantics; the stddev row carries the raw
// per-iteration deviations.
//
// The shared Label is carried into the derived rows only when it is
// identical across every input run; conflicting labels are cleared
// rather than guessing a representative one.
//
// All runs must share one benchmark name and one iteration count;
// repetitions of a configuration are only comparable when run under
// identical conditions, so a mismatch is a caller bug and panics.
func ComputeStats(runs []Run) []Run {
	errorCount := 0
	for i := range runs {
		if runs[i].Failed {
			errorCount++
		}
	}

	// No aggregate rows for a single valid run.
	if len(runs)-errorCount < 2 {
		return nil
	}

	var realTime, cpuTime, itemsPerSec, bytesPerSec stats.Stat

	// All repetitions run with the same iteration count, so the first
	// run is authoritative.
	iterations := runs[0].Iterations

	for i := range runs {
		run := &runs[i]
		if run.Name != runs[0].Name {
			panic(fmt.Sprintf("report: mismatched benchmark names in one aggregation: %q vs %q", runs[0].Name, run.Name))
		}
		if run.Iterations != iterations {
			panic(fmt.Sprintf("report: mismatched iteration counts for %q: %d vs %d", run.Name, iterations, run.Iterations))
		}
		if run.Failed {
			continue
		}

		weight := float64(run.Iterations)
		realTime.Add(run.RealTime/weight, weight)
		cpuTime.Add(run.CPUTime/weight, weight)
		itemsPerSec.Add(run.ItemsPerSecond, weight)
		bytesPerSec.Add(run.BytesPerSecond, weight)
	}

	label := sharedLabel(runs)

	mean := Run{
		Name:           runs[0].Name + "_mean",
		Label:          label,
		Iterations:     iterations,
		RealTime:       realTime.Mean() * float64(iterations),
		CPUTime:        cpuTime.Mean() * float64(iterations),
		ItemsPerSecond: itemsPerSec.Mean(),
		BytesPerSecond: bytesPerSec.Mean(),
		Unit:           runs[0].Unit,
	}

	stddev := Run{
		Name:           runs[0].Name + "_stddev",
		Label:          label,
		Iterations:     0,
		RealTime:       realTime.StdDev(),
		CPUTime:        cpuTime.StdDev(),
		ItemsPerSecond: itemsPerSec.StdDev(),
		BytesPerSecond: bytesPerSec.StdDev(),
		Unit:           runs[0].Unit,
	}

	return []Run{mean, stddev}
}

// sharedLabel returns the label common to all runs, or "" if any differ.
func sharedLabel(runs []Run) string {
	for i := 1; i < len(runs); i++ {
		if runs[i].Label != runs[0].Label {
			return ""
		}
	}

	return runs[0].Label
}

// ComputeBigO fits the asymptotic complexity of one benchmark family
// measured across multiple input sizes, returning a "_BigO" row with
// the fitted curve and leading coefficients and an "_RMS" row with the
// normalized residual errors.
//
// Each run contributes its ComplexityN tag and per-iteration real and
// CPU times. CPU time is fitted first with the requested curve; real
// time is then refitted with the CPU winner pinned, because measurement
// noise could otherwise select two different asymptotic classes for the
// same algorithm. Fewer than two runs return nil.
//
// The derived rows are named after the benchmark family (the portion of
// the name before its first '/'), and the RMS values are divided by the
// time-unit multiplier so residuals follow the same unit convention as
// the raw timings. A requested complexity of curvefit.ONone is a caller
// bug and panics inside the fit.
func ComputeBigO(runs []Run) []Run {
	if len(runs) < 2 {
		return nil
	}

	ns := make([]int, len(runs))
	realTimes := make([]float64, len(runs))
	cpuTimes := make([]float64, len(runs))
	for i := range runs {
		run := &runs[i]
		ns[i] = run.ComplexityN
		realTimes[i] = run.RealTime / float64(run.Iterations)
		cpuTimes[i] = run.CPUTime / float64(run.Iterations)
	}

	cpuFit := curvefit.Fit(ns, cpuTimes, runs[0].Complexity)
	// Pinning the CPU winner keeps both metrics on one asymptotic class.
	realFit := curvefit.Fit(ns, realTimes, cpuFit.Complexity)

	family := runs[0].FamilyName()

	bigO := Run{
		Name:       family + "_BigO",
		Label:      runs[0].Label,
		Iterations: 0,
		RealTime:   realFit.Coef,
		CPUTime:    cpuFit.Coef,
		Unit:       runs[0].Unit,
		Complexity: cpuFit.Complexity,
		BigORow:    true,
	}

	multiplier := runs[0].Unit.Multiplier()

	rms := Run{
		Name:       family + "_RMS",
		Label:      runs[0].Label,
		Iterations: 0,
		RealTime:   realFit.RMS / multiplier,
		CPUTime:    cpuFit.RMS / multiplier,
		Unit:       runs[0].Unit,
		Complexity: cpuFit.Complexity,
		RMSRow:     true,
	}

	return []Run{bigO, rms}
}
