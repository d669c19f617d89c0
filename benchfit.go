// Package benchfit provides post-processing statistics for repeated
// benchmark measurements: aggregating repetitions into mean/stddev
// summaries and fitting measured times against canonical asymptotic
// growth curves (constant, logarithmic, linear, linearithmic,
// quadratic, cubic).
//
// The engine is purely computational. It consumes completed measurement
// records produced by a timing harness and emits derived summary
// records; driving workloads, choosing repetition counts and rendering
// reports are the surrounding system's job.
//
// # Core Features
//
//   - Streaming weighted mean/stddev aggregation without retaining samples
//   - Closed-form least-squares fitting against a fixed growth-curve set
//   - Automatic best-curve selection by normalized RMS residual
//   - Flat-stream summarization with hash-keyed configuration grouping
//   - Compact compressed binary snapshots of run records (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Aggregating the repetitions of one configuration:
//
//	import "github.com/arloliu/benchfit"
//
//	rows := benchfit.ComputeStats(runs) // [mean, stddev] or nil
//
// Fitting a benchmark family measured at several input sizes:
//
//	rows := benchfit.ComputeBigO(runs) // [bigO, rms] or nil
//	fmt.Printf("complexity: %s\n", rows[0].Complexity)
//
// Or let the engine partition a flat, interleaved run stream itself:
//
//	rows := benchfit.Summarize(runs)
//
// Persisting a baseline for a later session:
//
//	data, err := snapshot.Encode(runs)
//	// ...
//	runs, err = snapshot.Decode(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the report
// and curvefit packages, which cover the common cases. Use those
// packages directly for fine-grained control, and the snapshot package
// for persistence.
package benchfit

import (
	"github.com/arloliu/benchfit/curvefit"
	"github.com/arloliu/benchfit/report"
)

// ComputeStats aggregates the repetitions of a single benchmark
// configuration into a "_mean" and a "_stddev" row, or nil when fewer
// than two valid repetitions exist. See report.ComputeStats.
func ComputeStats(runs []report.Run) []report.Run {
	return report.ComputeStats(runs)
}

// ComputeBigO fits the asymptotic complexity of one benchmark family
// measured across multiple input sizes, returning a "_BigO" and an
// "_RMS" row, or nil for fewer than two runs. See report.ComputeBigO.
func ComputeBigO(runs []report.Run) []report.Run {
	return report.ComputeBigO(runs)
}

// Summarize derives every available summary row from a flat, possibly
// interleaved sequence of completed runs. See report.Summarize.
func Summarize(runs []report.Run) []report.Run {
	return report.Summarize(runs)
}

// Fit computes the least-squares coefficient and normalized RMS of the
// measured times against the requested growth curve, selecting the
// best-fitting curve when bigO is curvefit.OAuto. See curvefit.Fit.
func Fit(ns []int, times []float64, bigO curvefit.BigO) curvefit.Result {
	return curvefit.Fit(ns, times, bigO)
}
