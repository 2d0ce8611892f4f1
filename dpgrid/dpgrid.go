package dpgrid

import (
	"math"

	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/cost"
	"github.com/gridtied/gridtied/internal/colpool"
	"github.com/gridtied/gridtied/internal/xslices"
	"github.com/gridtied/gridtied/policy"
)

// CheckExactPolicy reports whether the policy reference itself is
// already feasible for every item: in range and outside every
// resonance. refs must be in the same order as items.
// When it returns ok=true, the reference values are the allocation
// and the DP grid never needs to be built.
func CheckExactPolicy(items []config.ItemConfig, refs []policy.Reference) (config.Allocation, bool) {
	result := make(config.Allocation, len(items))
	for i, item := range items {
		value := refs[i].Value
		if !cost.Feasible(value, item.LowerBound, item.UpperBound, item.Resonances) {
			return nil, false
		}

		result[i] = config.Entry{Index: item.Index, Value: value}
	}

	return result, true
}

// Solve builds and back-traces the DP coarse grid for items (already
// filtered to enabled machines, in configuration order) against the
// policy references refs (same order), the reference command u, and
// the cumulative-sum grid step resolution. When multiThreaded is set,
// each column's rows are computed across a bounded worker pool,
// joined before the next column starts.
//
// Solve reports ok=false when u is negative, items is empty, or no
// feasible path reaches the last column; callers have no recourse
// but to hand the problem to the refiner or surface a failure.
func Solve(items []config.ItemConfig, refs []policy.Reference, u, resolution float32, multiThreaded bool) (config.Allocation, bool) {
	if u < 0 || len(items) == 0 {
		return nil, false
	}

	g := build(items, u, resolution)
	fill(g, items, refs, multiThreaded)

	return backtrace(g, items)
}

// build allocates the grid with one column per item and one row per
// cumulative-sum step of size resolution from 0 up to the first
// multiple of resolution that is >= u (so the top row may exceed u by
// less than one step).
func build(items []config.ItemConfig, u, resolution float32) grid {
	rows := int(math.Ceil(float64(u/resolution))) + 1
	g := make(grid, len(items))

	for c := range g {
		g[c] = make([]cell, rows)
		for r := range g[c] {
			g[c][r] = cell{s: float32(r) * resolution, totalCost: cost.Inf()}
		}
	}

	return g
}

// fill runs the Bellman sweep column by column: column 0's cost is
// the direct cost kernel at its own cumulative value; each later
// column's cell (c, r) minimizes, over every feasible predecessor row
// i <= r in column c-1, the predecessor's cost plus the cost of
// assigning item c the difference (r-i)*resolution. Ties keep the
// first improvement found (strict <), matching the reference sweep's
// row-ascending scan order.
func fill(g grid, items []config.ItemConfig, refs []policy.Reference, multiThreaded bool) {
	for c := range g {
		column := g[c]
		compute := func(r int) {
			fillCell(g, items, refs, c, r)
		}

		if multiThreaded {
			colpool.Run(len(column), compute)
		} else {
			for r := range column {
				compute(r)
			}
		}
	}
}

func fillCell(g grid, items []config.ItemConfig, refs []policy.Reference, c, r int) {
	item := items[c]
	ref := refs[c].Value
	target := &g[c][r]

	if c == 0 {
		target.totalCost = cost.At(target.s, item.LowerBound, item.UpperBound, item.Resonances, ref)
		return
	}

	prevCol := g[c-1]
	for i := 0; i <= r; i++ {
		prev := &prevCol[i]
		if cost.IsInf(prev.totalCost) {
			continue
		}

		step := target.s - prev.s
		total := prev.totalCost + cost.At(step, item.LowerBound, item.UpperBound, item.Resonances, ref)

		if total < target.totalCost {
			target.totalCost = total
			target.pre = prev
		}
	}
}

// backtrace scans the last column from the highest row downward for
// the first feasible cell, walks its back-pointers to recover the
// cumulative-sum trace, reverses it to column order, and
// first-differences consecutive cumulative sums into per-item values.
func backtrace(g grid, items []config.ItemConfig) (config.Allocation, bool) {
	last := g[len(g)-1]

	descending := make([]cell, len(last))
	for r, c := range last {
		descending[len(last)-1-r] = c
	}

	idx := xslices.IndexFunc(descending, func(c cell) bool { return !cost.IsInf(c.totalCost) })
	if idx < 0 {
		return nil, false
	}
	best := descending[idx]

	var trace []float32
	for cur := &best; cur != nil; cur = cur.pre {
		trace = append(trace, cur.s)
	}

	// trace was collected from last column to first; reverse it.
	for l, r := 0, len(trace)-1; l < r; l, r = l+1, r-1 {
		trace[l], trace[r] = trace[r], trace[l]
	}

	result := make(config.Allocation, len(items))
	for i, item := range items {
		var value float32
		if i == 0 {
			value = trace[i]
		} else {
			value = trace[i] - trace[i-1]
		}

		result[i] = config.Entry{Index: item.Index, Value: value}
	}

	return result, true
}
