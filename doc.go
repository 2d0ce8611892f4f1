// Package gridtied solves a constrained resource allocation problem:
// given N controllable machines, each with a capacity interval and a
// set of forbidden "resonance" sub-intervals, and a scalar reference
// command U that the machines must collectively deliver, it assigns to
// each machine a scalar output so that:
//
//   - the sum of outputs approximates U;
//   - every output lies in its capacity interval and outside every
//     forbidden zone;
//   - the outputs stay close to a per-machine preferred operating point
//     derived from the current state and the configured allocation
//     policy.
//
// 🚀 What is gridtied?
//
//	A small, dependency-light allocation engine that runs, in order:
//
//	  • config     — immutable problem description + validation
//	  • policy     — per-machine target operating point (PROPORTIONAL/MARGIN)
//	  • cost       — pure quadratic cost kernel with bound/resonance pruning
//	  • smallload  — closed-form fast path for small reference changes
//	  • dpgrid     — a Bellman sweep over a discretised (machine × cumulative-sum)
//	    grid, with optional per-column parallel fan-out
//	  • refine     — a bounded-variable, equality-constrained minimizer that
//	    snaps the coarse DP solution onto its feasible sub-band
//
// ✨ Why choose gridtied?
//
//   - Deterministic — identical inputs and config produce byte-identical
//     outputs on the DP-only path.
//   - Degradable    — the refiner returns its last iterate when its time
//     or iteration budget runs out, and the DP result is returned when
//     the refiner rejects its input, rather than failing the whole call.
//   - Pure Go       — no cgo; one entry point, alloc.GridTiedAllocation.Process.
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	config/      — ItemConfig, RunConfig, validation, sentinel errors
//	policy/      — policy-reference computation (PROPORTIONAL/MARGIN)
//	cost/        — the pure cost kernel
//	smallload/   — the small-load fast path
//	dpgrid/      — the DP coarse solver (GriddedSTGraph)
//	refine/      — the nonlinear refinement stage
//	alloc/       — GridTiedAllocation, the top-level orchestrator
//	diagnostics/ — optional go-echarts visualization of a solved allocation
//	log/         — the injectable Logger interface
//
// See alloc.GridTiedAllocation for the single externally meaningful
// operation this module exposes.
package gridtied
