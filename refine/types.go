package refine

import "time"

// Options bounds a Minimize call: a relative step-size tolerance, an
// absolute objective-improvement tolerance, a hard iteration cap, and
// a wall-clock budget, whichever is hit first.
type Options struct {
	// XTolRel stops the search once no coordinate's gradient step
	// (measured before clamping and projection) exceeds this fraction
	// of its own magnitude in one iteration.
	XTolRel float64
	// FTolAbs stops the search once the objective improves by less
	// than this absolute amount in one iteration.
	FTolAbs float64
	// MaxEval caps the number of gradient-projection iterations.
	MaxEval int
	// MaxTime caps wall-clock spent inside Minimize.
	MaxTime time.Duration
}

// DefaultOptions returns the default tuning: xtol_rel=1e-3,
// ftol_abs=1e-3, maxeval=1000, maxtime=50ms.
func DefaultOptions() Options {
	return Options{
		XTolRel: 1e-3,
		FTolAbs: 1e-3,
		MaxEval: 1000,
		MaxTime: 50 * time.Millisecond,
	}
}

// Minimizer solves min sum((x_i - ref_i)^2) subject to sum(x_i) ==
// target and lb_i <= x_i <= ub_i, starting from x0. It reports ok=true
// whenever it returns a usable iterate — including a non-converged
// best effort — and ok=false only when the problem itself is
// malformed (mismatched slice lengths, or an infeasible equality
// constraint given the box bounds).
type Minimizer interface {
	Minimize(x0, ref, lb, ub []float64, target float64, opts Options) (x []float64, ok bool)
}
