// Package policy computes, for each enabled machine, the target
// operating point used as the quadratic target in the cost kernel.
//
// Two rules are supported, selected by config.AllocationType:
//
//   - Proportional: r[i] = AssignedFactor[i] * U.
//   - Margin: the surplus (U > sum(x)) or deficit (U <= sum(x)) between
//     U and the current state is distributed in proportion to
//     remaining head-room or current load, respectively.
//
// Compute returns r unclipped; feasibility against bounds and
// resonances is enforced downstream by cost and refine, never here
// (Open Question #1 in SPEC_FULL.md).
package policy
