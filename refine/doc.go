// Package refine implements the optional nonlinear refinement stage:
// starting from the DP coarse solver's solution, it locally
// re-optimizes each machine's value within the single
// resonance-free band the coarse solution already landed in, subject
// to holding the total command U fixed.
//
// The coarse solution already picked which side of each resonance
// every machine sits on; refine never lets a machine jump to a
// different band; it only tightens the value inside the one it has.
// BuildBounds computes that per-machine band from the coarse value,
// and Minimizer.Minimize solves the resulting box- and
// equality-constrained least-squares problem. ProjectedGradient is
// the only Minimizer gridtied ships: an iterative gradient-projection
// scheme, since no constrained QP solver exists among this module's
// dependencies.
//
// Minimize degrades gracefully: on non-convergence within its
// iteration, time, or tolerance budget it returns its last iterate,
// never an error, matching the orchestrator's tolerance for a
// refiner that sometimes does nothing better than the coarse answer.
package refine
