// Package cost implements the pure per-cell cost kernel shared by the
// DP coarse solver and, conceptually, the refiner's objective: the
// squared distance to a policy reference, or +Inf when the candidate
// value falls outside the machine's capacity interval or strictly
// inside one of its forbidden resonance zones.
//
// Resonance endpoints are feasible: only the open interval (A, B) is
// forbidden, never the closed points A and B themselves.
package cost
