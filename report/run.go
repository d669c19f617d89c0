package report

import (
	"strings"

	"github.com/arloliu/benchfit/curvefit"
)

// TimeUnit identifies the unit timings are reported in.
type TimeUnit uint8

const (
	Nanosecond  TimeUnit = iota // Nanosecond represents nanosecond timings.
	Microsecond                 // Microsecond represents microsecond timings.
	Millisecond                 // Millisecond represents millisecond timings.
	Second                      // Second represents second timings.
)

func (u TimeUnit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "us"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	default:
		return "unknown"
	}
}

// Multiplier returns the factor converting seconds into this unit.
func (u TimeUnit) Multiplier() float64 {
	switch u {
	case Nanosecond:
		return 1e9
	case Microsecond:
		return 1e6
	case Millisecond:
		return 1e3
	default:
		return 1.0
	}
}

// Run is one completed execution of a benchmark configuration.
//
// RealTime and CPUTime are accumulated over all Iterations of the run;
// per-iteration figures are obtained by dividing by Iterations. A Run is
// immutable once produced by the harness; this package only reads it.
//
// Derived rows produced by the aggregation functions reuse the same
// shape, distinguished by a Name suffix ("_mean", "_stddev", "_BigO",
// "_RMS") and the BigORow/RMSRow markers.
type Run struct {
	// Name is the benchmark configuration identifier, including any
	// input-size parameterization such as "BM_Sort/1024".
	Name string
	// Label is an optional descriptive label attached by the workload.
	Label string
	// Iterations is the iteration count the accumulated timings cover.
	Iterations int64
	// RealTime is the wall-clock time accumulated across all iterations.
	RealTime float64
	// CPUTime is the CPU time accumulated across all iterations.
	CPUTime float64
	// ItemsPerSecond is the measured item throughput, if any.
	ItemsPerSecond float64
	// BytesPerSecond is the measured byte throughput, if any.
	BytesPerSecond float64
	// Unit is the time unit the timings were requested in.
	Unit TimeUnit
	// Complexity is the growth curve requested for this benchmark family,
	// curvefit.ONone when no complexity analysis was asked for.
	Complexity curvefit.BigO
	// ComplexityN is the input-size tag used as the independent variable
	// for complexity fitting.
	ComplexityN int
	// Failed marks a run that produced no valid timing.
	Failed bool

	// BigORow marks a derived row carrying fitted complexity results.
	BigORow bool
	// RMSRow marks a derived row carrying normalized residual errors.
	RMSRow bool
}

// FamilyName returns the benchmark name stripped of its input-size
// parameterization: everything before the first '/'. Runs of
// "BM_Sort/8", "BM_Sort/64", ... share the family "BM_Sort".
func (r *Run) FamilyName() string {
	family, _, _ := strings.Cut(r.Name, "/")
	return family
}
