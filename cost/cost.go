package cost

import (
	"math"

	"github.com/gridtied/gridtied/config"
)

// inf is the +∞ sentinel used to mark infeasible cells: IEEE-754
// positive infinity rather than a large finite constant, so no
// arbitrary ceiling needs picking and arithmetic on it stays exact.
var inf = float32(math.Inf(1))

// At returns the cost of placing a machine at value s, given its
// capacity interval [lower, upper], its forbidden resonance zones, and
// its policy reference r:
//
//   - +Inf if s < lower or s > upper;
//   - +Inf if s lies strictly inside any resonance (A, B);
//   - otherwise (s - r)^2.
func At(s, lower, upper float32, resonances []config.Resonance, r float32) float32 {
	if s < lower || s > upper {
		return inf
	}

	for _, res := range resonances {
		radius := 0.5 * (res.B - res.A)
		center := 0.5 * (res.B + res.A)
		if radius > float32(math.Abs(float64(s-center))) {
			return inf
		}
	}

	diff := s - r
	return diff * diff
}

// Feasible reports whether s lies in [lower, upper] and outside every
// resonance's open interior. It is the boolean half of At, used by the
// DP's exact-policy short circuit and by postcondition checks in
// tests, without paying for the squared-distance computation.
func Feasible(s, lower, upper float32, resonances []config.Resonance) bool {
	if s < lower || s > upper {
		return false
	}

	for _, res := range resonances {
		if s > res.A && s < res.B {
			return false
		}
	}

	return true
}

// IsInf reports whether c is the +∞ sentinel At returns for infeasible cells.
func IsInf(c float32) bool {
	return math.IsInf(float64(c), 1)
}

// Inf returns the +∞ sentinel used throughout gridtied for infeasible
// DP cells, so callers never need to construct it themselves.
func Inf() float32 { return inf }
