// Package dpgrid implements the DP coarse solver: a discretized
// cumulative-sum grid over the enabled machines, solved column by
// column with a Bellman sweep, then back-traced to recover the
// per-machine allocation.
//
// The grid has one column per enabled machine (in configuration
// order) and one row per cumulative-sum step from 0 up to the
// reference command U, spaced by the configured allocation
// resolution. Cell (c, r) holds the minimal total cost of allocating
// machines 0..c such that their combined output equals r steps; its
// back-pointer records which row of column c-1 achieved that minimum,
// so the final allocation is recovered by walking back-pointers from
// the best feasible cell of the last column and first-differencing
// the cumulative-sum trace.
//
// CheckExactPolicy reports whether the policy reference itself is
// already feasible for every machine (the "exact policy" short
// circuit): when it is, the reference is the allocation. alloc calls
// it before Solve and skips Solve on success; Solve itself does not
// make this check and always builds the grid.
package dpgrid
