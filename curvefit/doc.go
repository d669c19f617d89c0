// Package curvefit fits benchmark timings to canonical asymptotic
// growth curves using closed-form least squares.
//
// Given parallel slices of input sizes and measured times, the package
// finds the scalar coefficient c minimizing the summed squared residual
// between the measurements and c·g(n) for a growth curve g, and reports
// the fit quality as a root-mean-square residual normalized by the mean
// of the measurements. Normalizing by the mean puts benchmarks of very
// different absolute time scales on one residual scale, which is what
// makes automatic model selection meaningful.
//
// # Growth Curves
//
// The curve set is a closed enumeration rather than arbitrary caller
// functions, keeping the model-selection search finite and its
// tie-break order deterministic:
//
//	O1        c        constant
//	OLogN     c·lg(n)  logarithmic
//	ON        c·n      linear
//	ONLogN    c·n·lg(n)
//	ONSquared c·n²     quadratic
//	ONCubed   c·n³     cubic
//
// # Automatic Selection
//
// Fitting with OAuto evaluates every curve and keeps the one with the
// lowest normalized RMS:
//
//	fit := curvefit.Fit(ns, times, curvefit.OAuto)
//	fmt.Printf("%s coef=%g rms=%g\n", fit.Complexity, fit.Coef, fit.RMS)
//
// # Contract
//
// The slices must have equal length, at least two points are required,
// and ONone is never a valid fitting target. Violations are caller bugs
// and panic immediately rather than producing a fit from malformed
// input.
package curvefit
