package curvefit

import (
	"math"
	"strings"
)

// BigO identifies an asymptotic growth curve.
type BigO uint8

const (
	ONone     BigO = iota // ONone means no complexity analysis was requested.
	O1                    // O1 represents constant complexity.
	OLogN                 // OLogN represents logarithmic complexity.
	ON                    // ON represents linear complexity.
	ONLogN                // ONLogN represents linearithmic complexity.
	ONSquared             // ONSquared represents quadratic complexity.
	ONCubed               // ONCubed represents cubic complexity.
	OAuto                 // OAuto selects the best-fitting curve automatically.
)

func (b BigO) String() string {
	switch b {
	case O1:
		return "1"
	case OLogN:
		return "lgN"
	case ON:
		return "N"
	case ONLogN:
		return "NlgN"
	case ONSquared:
		return "N**2"
	case ONCubed:
		return "N**3"
	case OAuto:
		return "auto"
	case ONone:
		return "none"
	default:
		return "unknown"
	}
}

// bigOFromString maps lower-cased names to BigO values.
var bigOFromString = map[string]BigO{
	"1":    O1,
	"lgn":  OLogN,
	"n":    ON,
	"nlgn": ONLogN,
	"n**2": ONSquared,
	"n**3": ONCubed,
	"auto": OAuto,
	"none": ONone,
}

// BigOFromString returns the BigO for a given name (case-insensitive).
// Unknown names return ONone.
func BigOFromString(name string) BigO {
	if bigO, exists := bigOFromString[strings.ToLower(name)]; exists {
		return bigO
	}

	return ONone
}

// curve returns the growth function g mapping an input size n to the
// model value that the leading coefficient scales.
func (b BigO) curve() func(n int) float64 {
	switch b {
	case OLogN:
		return func(n int) float64 { return math.Log2(float64(n)) }
	case ON:
		return func(n int) float64 { return float64(n) }
	case ONLogN:
		return func(n int) float64 { return float64(n) * math.Log2(float64(n)) }
	case ONSquared:
		return func(n int) float64 { return float64(n) * float64(n) }
	case ONCubed:
		return func(n int) float64 { return float64(n) * float64(n) * float64(n) }
	default:
		return func(int) float64 { return 1 }
	}
}
