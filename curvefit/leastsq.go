package curvefit

import (
	"fmt"
	"math"
)

// Result holds the outcome of a least-squares fit against one growth curve.
//
// Coef is the leading coefficient of the fitted curve and RMS is the
// root-mean-square residual divided by the mean of the observed times,
// so fits over differently-scaled datasets compare on the same residual
// scale. A Result is immutable once produced.
type Result struct {
	// Coef is the leading coefficient minimizing the summed squared residual.
	Coef float64
	// RMS is the root-mean-square residual normalized by the mean observed time.
	RMS float64
	// Complexity is the growth curve the coefficient belongs to.
	Complexity BigO
}

func (r Result) String() string {
	return fmt.Sprintf("Result{Complexity: %s, Coef: %g, RMS: %.4f}", r.Complexity, r.Coef, r.RMS)
}

// leastSquares computes the closed-form single-coefficient fit of times
// against curve over the given input sizes:
//
//	c = Σ(tᵢ·g(nᵢ)) / Σ(g(nᵢ)²)
//
// and the RMS of the residuals tᵢ − c·g(nᵢ), normalized by the mean of
// the times. Length checks are the caller's responsibility.
func leastSquares(ns []int, times []float64, curve func(n int) float64) Result {
	var sigmaGNSquared, sigmaTime, sigmaTimeGN float64
	for i, n := range ns {
		gn := curve(n)
		sigmaGNSquared += gn * gn
		sigmaTime += times[i]
		sigmaTimeGN += times[i] * gn
	}

	coef := sigmaTimeGN / sigmaGNSquared

	var rms float64
	for i, n := range ns {
		residual := times[i] - coef*curve(n)
		rms += residual * residual
	}

	mean := sigmaTime / float64(len(ns))

	return Result{
		Coef: coef,
		RMS:  math.Sqrt(rms/float64(len(ns))) / mean,
	}
}

// autoCurves is the evaluation order for automatic model selection.
// O1 is the implicit baseline evaluated before all of these; only a
// strictly lower RMS replaces the running best, so earlier curves win
// ties.
var autoCurves = [...]BigO{OLogN, ON, ONLogN, ONSquared, ONCubed}

// Fit computes the least-squares coefficient and normalized RMS of the
// measured times against the requested growth curve.
//
// ns holds the input sizes and times the corresponding measurements;
// both must have the same length and carry at least two points. With a
// specific curve the fit is computed directly; with OAuto every curve
// is evaluated and the one with the lowest normalized RMS is returned,
// tagged in Result.Complexity. ONone is not a valid fitting target.
//
// Violating any of those preconditions is a bug in the caller and
// panics rather than producing a fit from malformed input.
func Fit(ns []int, times []float64, bigO BigO) Result {
	if len(ns) != len(times) {
		panic(fmt.Sprintf("curvefit: mismatched lengths: %d sizes vs %d times", len(ns), len(times)))
	}
	if len(ns) < 2 {
		panic(fmt.Sprintf("curvefit: need at least 2 points to fit, got %d", len(ns)))
	}
	if bigO == ONone {
		panic("curvefit: ONone is not a valid fitting target")
	}

	if bigO != OAuto {
		result := leastSquares(ns, times, bigO.curve())
		result.Complexity = bigO

		return result
	}

	// Constant complexity is the default baseline.
	best := leastSquares(ns, times, O1.curve())
	best.Complexity = O1

	for _, candidate := range autoCurves {
		current := leastSquares(ns, times, candidate.curve())
		if current.RMS < best.RMS {
			best = current
			best.Complexity = candidate
		}
	}

	return best
}
