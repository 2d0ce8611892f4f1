package cost_test

import (
	"math"
	"testing"

	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/cost"
)

func TestAt_OutOfBounds(t *testing.T) {
	if !cost.IsInf(cost.At(-1, 0, 10, nil, 5)) {
		t.Fatal("want +Inf below lower bound")
	}
	if !cost.IsInf(cost.At(11, 0, 10, nil, 5)) {
		t.Fatal("want +Inf above upper bound")
	}
}

func TestAt_ResonanceInterior(t *testing.T) {
	res := []config.Resonance{{A: 4, B: 6}}

	if !cost.IsInf(cost.At(5, 0, 10, res, 5)) {
		t.Fatal("want +Inf strictly inside resonance")
	}
}

func TestAt_ResonanceEndpointsFeasible(t *testing.T) {
	res := []config.Resonance{{A: 4, B: 6}}

	for _, s := range []float32{4, 6} {
		c := cost.At(s, 0, 10, res, s)
		if cost.IsInf(c) {
			t.Fatalf("resonance endpoint %v must be feasible", s)
		}
	}
}

func TestAt_SquaredDistance(t *testing.T) {
	got := cost.At(7, 0, 10, nil, 4)
	want := float32(9) // (7-4)^2

	if math.Abs(float64(got-want)) > 1e-6 {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFeasible_MatchesAt(t *testing.T) {
	res := []config.Resonance{{A: 4, B: 6}}

	cases := []float32{-1, 0, 4, 5, 6, 10, 11}
	for _, s := range cases {
		want := !cost.IsInf(cost.At(s, 0, 10, res, 0))
		got := cost.Feasible(s, 0, 10, res)
		if want != got {
			t.Fatalf("s=%v: At-derived feasible=%v, Feasible=%v", s, want, got)
		}
	}
}
