// Package report defines the benchmark run record and derives summary
// records from collections of completed runs.
//
// A Run is one completed execution of a named benchmark configuration,
// produced by the timing harness and treated as read-only here. The
// package derives two independent kinds of summary rows:
//
//   - ComputeStats turns the repetitions of a single configuration into
//     a "_mean" and a "_stddev" row.
//   - ComputeBigO turns measurements of one benchmark family across
//     multiple input sizes into a "_BigO" row (fitted asymptotic
//     complexity and leading coefficients) and an "_RMS" row (normalized
//     residual error).
//
// Summarize combines both over a flat, possibly interleaved run stream,
// partitioning it by configuration name and family.
//
// All runs handed to one aggregation call must belong to the same
// benchmark configuration, run under identical conditions; violations
// are caller bugs and panic. Degenerate inputs that arise from
// legitimate benchmark sessions, such as every repetition having
// failed, yield an empty result instead.
package report
