// Package smallload implements the closed-form fast path used when the
// required change from the current state is small: seed the solution
// at the current state, compute the shortfall or surplus against the
// reference command, and redistribute it greedily across machines
// ordered by remaining head-room, clamping to the nearest feasible
// band edge whenever a machine would otherwise land inside a
// forbidden resonance or outside its capacity interval.
//
// Attempt reports success=false (never an error) whenever the fast
// path does not apply or cannot commit a non-blocked adjustment; the
// caller (alloc) falls through to the DP solver in that case.
package smallload
