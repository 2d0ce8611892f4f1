package refine

import (
	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/policy"
)

// Run refines guess (the DP coarse solver's allocation, in
// configuration order matching items and refs) by locally
// re-optimizing within each machine's coarse-selected band, holding
// the total command u fixed. It falls back to returning guess
// unchanged whenever guess is empty or mismatched in length with
// items, since that signals malformed refiner input rather than a
// problem Minimize itself can solve.
func Run(m Minimizer, items []config.ItemConfig, refs []policy.Reference, guess config.Allocation, u float32) (config.Allocation, bool) {
	n := len(items)
	if n == 0 || len(guess) != n || len(refs) != n {
		return guess, n > 0 && len(guess) == n
	}

	x0 := make([]float64, n)
	ref := make([]float64, n)
	for i, entry := range guess {
		x0[i] = float64(entry.Value)
		ref[i] = float64(refs[i].Value)
	}

	lb, ub := BuildBounds(items, x0)

	x, ok := m.Minimize(x0, ref, lb, ub, float64(u), DefaultOptions())
	if !ok {
		return guess, true
	}

	result := make(config.Allocation, n)
	for i, item := range items {
		result[i] = config.Entry{Index: item.Index, Value: float32(x[i])}
	}

	return result, true
}
