package smallload

import (
	"sort"

	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/cost"
	"github.com/gridtied/gridtied/internal/xslices"
)

// Attempt runs the small-load fast path over the enabled items, given
// the current state and the reference command u.
// It reports ok=false whenever the path does not apply (the
// dead-band check fails) or cannot find a non-blocked commit; callers
// fall through to the DP solver in that case.
func Attempt(items []config.ItemConfig, state []float32, u float32, deadSize float32) (result config.Allocation, ok bool) {
	solution := make(config.Allocation, len(items))
	for i, item := range items {
		solution[i] = config.Entry{Index: item.Index, Value: state[item.Index]}
	}

	delta := u - solution.Sum()
	if abs32(delta) > deadSize {
		return nil, false
	}

	byIndex := make(map[uint32]config.ItemConfig, len(items))
	for _, item := range items {
		byIndex[item.Index] = item
	}

	if !retrieve(byIndex, delta, solution) {
		return nil, false
	}

	sort.Slice(solution, func(i, j int) bool {
		return solution[i].Index < solution[j].Index
	})

	return solution, true
}

// retrieve greedily redistributes delta across solution, ordered by
// head-room, mutating solution in place. It returns true the first
// time it commits a non-blocked adjustment.
func retrieve(byIndex map[uint32]config.ItemConfig, delta float32, solution config.Allocation) bool {
	ascending := delta < 0
	sortByHeadroom(byIndex, solution, ascending)

	for i := range solution {
		entry := &solution[i]
		item := byIndex[entry.Index]
		cand := entry.Value + delta

		bandLow, bandHigh, blocked := blockingBand(cand, item)
		if !blocked {
			entry.Value = cand
			return true
		}

		var target float32
		if delta >= 0 {
			target = bandLow
		} else {
			target = bandHigh
		}

		delta -= target - entry.Value
		entry.Value = target
	}

	return false
}

// sortByHeadroom orders solution by remaining head-room
// (upper-lower)-value: descending when redistributing a surplus,
// ascending when redistributing a deficit.
func sortByHeadroom(byIndex map[uint32]config.ItemConfig, solution config.Allocation, ascending bool) {
	headroom := func(e config.Entry) float64 {
		item := byIndex[e.Index]
		return float64((item.UpperBound - item.LowerBound) - e.Value)
	}

	if ascending {
		xslices.SortByKeyDesc(solution, func(e config.Entry) float64 { return -headroom(e) })
		return
	}

	xslices.SortByKeyDesc(solution, headroom)
}

// blockingBand determines, for a candidate value cand against item's
// bounds and resonances, the band that blocks it: the below-lower gap
// (treated as the band [cand, lower]), the above-upper gap (treated as
// [upper, cand]), or the enclosing resonance (a, b). It returns the
// band's low/high edges — clamping to low on ascent and to high on
// descent reproduces the reference's near-edge rule in both cases,
// including the degenerate already-out-of-bounds case where the near
// edge is cand itself — and whether cand is blocked at all.
func blockingBand(cand float32, item config.ItemConfig) (low, high float32, blocked bool) {
	switch {
	case cand < item.LowerBound:
		return cand, item.LowerBound, true
	case cand > item.UpperBound:
		return item.UpperBound, cand, true
	}

	if !cost.Feasible(cand, item.LowerBound, item.UpperBound, item.Resonances) {
		for _, res := range item.Resonances {
			if cand > res.A && cand < res.B {
				return res.A, res.B, true
			}
		}
	}

	return 0, 0, false
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}
