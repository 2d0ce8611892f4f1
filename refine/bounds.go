package refine

import "github.com/gridtied/gridtied/config"

// BuildBounds computes, for each item and its coarse value x[i], the
// single resonance-free band [lb[i], ub[i]] that x[i] already lies in:
//
//   - if x[i] <= item.LowerBound, the item is pinned: lb=ub=LowerBound.
//   - otherwise scan the item's resonances in order, tracking the
//     lower edge of the current band starting at LowerBound; the
//     first resonance whose left edge a is itself >= x[i] identifies
//     the enclosing band [lower, a];
//   - if no resonance's left edge reaches x[i], the band is
//     [lower, item.UpperBound], where lower is the right edge of the
//     last resonance scanned (or LowerBound if there are none).
//
// x must be in the same order as items.
func BuildBounds(items []config.ItemConfig, x []float64) (lb, ub []float64) {
	lb = make([]float64, len(items))
	ub = make([]float64, len(items))

	for i, item := range items {
		lb[i] = float64(item.LowerBound)
		ub[i] = float64(item.UpperBound)

		if x[i] <= lb[i] {
			ub[i] = lb[i]
			continue
		}

		lower := lb[i]
		found := false

		for _, res := range item.Resonances {
			a, b := float64(res.A), float64(res.B)
			if x[i] <= a {
				lb[i] = lower
				ub[i] = a
				found = true
				break
			}

			lower = b
		}

		if !found {
			lb[i] = lower
		}
	}

	return lb, ub
}
