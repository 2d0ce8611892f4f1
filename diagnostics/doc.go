// Package diagnostics renders a solved allocation to an HTML chart
// for offline inspection: one group of bars per enabled machine showing
// its capacity interval, the value GridTiedAllocation chose for it, and
// the running cumulative sum. Forbidden resonance bands are listed in
// the chart subtitle; they are not drawn on the bars.
//
// This is opt-in tooling, never on the Process call path — grounded
// on the pack's own use of go-echarts for visualizing the result of a
// constrained optimization run, retargeted here from a Pareto-front
// scatter to a per-machine capacity/resonance view.
package diagnostics
