package policy

import "github.com/gridtied/gridtied/config"

// Reference is one machine's stable Index paired with its computed
// target operating point r[i].
type Reference struct {
	Index uint32
	Value float32
}

// Compute returns the policy reference for every item in items (which
// must already be filtered to enabled machines, in configuration
// order), given the current per-machine state vector indexed by
// ItemConfig.Index and the reference command U.
//
// Under Margin, state must be long enough to be indexed by every
// item's Index; a shorter state panics with an index out of range,
// and neither Compute nor alloc recovers from it.
func Compute(items []config.ItemConfig, state []float32, u float32, allocType config.AllocationType) []Reference {
	switch allocType {
	case config.Margin:
		return computeMargin(items, state, u)
	default:
		return computeProportional(items, u)
	}
}

func computeProportional(items []config.ItemConfig, u float32) []Reference {
	refs := make([]Reference, len(items))
	for i, item := range items {
		refs[i] = Reference{Index: item.Index, Value: item.AssignedFactor * u}
	}

	return refs
}

// computeMargin implements the MARGIN allocation rule:
//
//	xi = x[index_i], vi = upper_i - lower_i
//	Sx = sum(xi), Sv = sum(vi - xi)
//	delta = U - Sx
//	if U > Sx: r[i] = xi + delta*(vi-xi)/Sv   (Sv == 0 => r[i] = xi)
//	else:      r[i] = xi + delta*xi/Sx        (Sx == 0 => r[i] = xi)
func computeMargin(items []config.ItemConfig, state []float32, u float32) []Reference {
	n := len(items)
	xs := make([]float32, n)
	vs := make([]float32, n) // headroom vi - xi, per item

	var sumX, sumVX float32
	for i, item := range items {
		x := state[item.Index]
		xs[i] = x
		vs[i] = (item.UpperBound - item.LowerBound) - x
		sumX += x
		sumVX += vs[i]
	}

	delta := u - sumX
	refs := make([]Reference, n)
	surplus := u > sumX

	for i, item := range items {
		var r float32
		switch {
		case surplus && sumVX != 0:
			r = xs[i] + delta*vs[i]/sumVX
		case !surplus && sumX != 0:
			r = xs[i] + delta*xs[i]/sumX
		default:
			// Sv == 0 on the surplus branch, or Sx == 0 on the deficit
			// branch: hold r[i] = xi rather than divide by zero.
			r = xs[i]
		}
		refs[i] = Reference{Index: item.Index, Value: r}
	}

	return refs
}
