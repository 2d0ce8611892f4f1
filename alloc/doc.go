// Package alloc implements GridTiedAllocation, the orchestrator that
// wires the rest of gridtied into the module's single entry point:
//
//  1. validate the run configuration — fail the call on any violation;
//  2. attempt the small-load fast path when enabled — return its
//     result on success;
//  3. compute the policy reference and run the DP coarse solver — fail
//     the call if neither an exact-policy shortcut nor the grid itself
//     yields a feasible allocation;
//  4. return the DP result directly when the refiner is disabled or
//     the DP result was the exact policy;
//  5. otherwise hand the DP result to the refiner as its initial guess
//     and return the refiner's result.
//
// Every step logs through a log.Logger so a caller can wire gridtied's
// internal decisions (which path was taken, why a call failed) into
// its own logging pipeline without gridtied depending on one.
package alloc
