package refine

import "time"

// ProjectedGradient minimizes the separable quadratic sum((x_i -
// ref_i)^2) subject to box bounds and a single sum-equality
// constraint by alternating a gradient step with projection onto the
// feasible set (box intersected with the equality hyperplane).
//
// The step size 0.5 is exact for this objective: an unconstrained
// gradient step of size 0.5 on 2*(x_i-ref_i) lands directly on
// ref_i, so every iteration's work is spent entirely on projection,
// not on tuning a line search.
type ProjectedGradient struct{}

// Minimize implements Minimizer.
func (ProjectedGradient) Minimize(x0, ref, lb, ub []float64, target float64, opts Options) (x []float64, ok bool) {
	n := len(x0)
	if n != len(ref) || n != len(lb) || n != len(ub) {
		return nil, false
	}

	var sumLB, sumUB float64
	for i := range lb {
		if lb[i] > ub[i] {
			return nil, false
		}
		sumLB += lb[i]
		sumUB += ub[i]
	}
	if target < sumLB-1e-9 || target > sumUB+1e-9 {
		return nil, false
	}

	x = make([]float64, n)
	copy(x, x0)
	clampAll(x, lb, ub)
	projectEquality(x, lb, ub, target)

	deadline := time.Now().Add(opts.MaxTime)
	prevObjective := objective(x, ref)

	for iter := 0; iter < opts.MaxEval; iter++ {
		if iter&63 == 0 && time.Now().After(deadline) {
			break
		}

		next := make([]float64, n)
		maxRelStep := 0.0
		for i := range x {
			grad := 2 * (x[i] - ref[i])
			next[i] = x[i] - 0.5*grad

			if step := absf(next[i] - x[i]); absf(x[i]) > 0 {
				if rel := step / absf(x[i]); rel > maxRelStep {
					maxRelStep = rel
				}
			} else if step > maxRelStep {
				maxRelStep = step
			}
		}

		clampAll(next, lb, ub)
		projectEquality(next, lb, ub, target)

		nextObjective := objective(next, ref)
		x = next

		if maxRelStep < opts.XTolRel || absf(prevObjective-nextObjective) < opts.FTolAbs {
			prevObjective = nextObjective
			break
		}
		prevObjective = nextObjective
	}

	return x, true
}

// projectEquality redistributes the residual target-sum(x) across
// every coordinate not already pinned to a bound, iterating until the
// residual is exhausted or every coordinate saturates (an infeasible
// combination of box bounds and target, in which case the best
// attainable point is returned).
func projectEquality(x, lb, ub []float64, target float64) {
	const maxPasses = 64
	const tol = 1e-9

	for pass := 0; pass < maxPasses; pass++ {
		sum := 0.0
		for _, v := range x {
			sum += v
		}

		residual := target - sum
		if absf(residual) < tol {
			return
		}

		free := make([]int, 0, len(x))
		for i := range x {
			switch {
			case residual > 0 && x[i] < ub[i]:
				free = append(free, i)
			case residual < 0 && x[i] > lb[i]:
				free = append(free, i)
			}
		}

		if len(free) == 0 {
			return
		}

		share := residual / float64(len(free))
		for _, i := range free {
			x[i] += share
			if x[i] < lb[i] {
				x[i] = lb[i]
			}
			if x[i] > ub[i] {
				x[i] = ub[i]
			}
		}
	}
}

func clampAll(x, lb, ub []float64) {
	for i := range x {
		if x[i] < lb[i] {
			x[i] = lb[i]
		}
		if x[i] > ub[i] {
			x[i] = ub[i]
		}
	}
}

func objective(x, ref []float64) float64 {
	var sum float64
	for i := range x {
		diff := x[i] - ref[i]
		sum += diff * diff
	}

	return sum
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
