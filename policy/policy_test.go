package policy_test

import (
	"math"
	"testing"

	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/policy"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestCompute_Proportional(t *testing.T) {
	items := []config.ItemConfig{
		{Index: 0, AssignedFactor: 0.3},
		{Index: 1, AssignedFactor: 0.7},
	}

	refs := policy.Compute(items, nil, 100, config.Proportional)

	want := []float32{30, 70}
	for i, r := range refs {
		if !almostEqual(r.Value, want[i]) {
			t.Fatalf("item %d: want %v, got %v", i, want[i], r.Value)
		}
	}
}

func TestCompute_Margin_Surplus(t *testing.T) {
	items := []config.ItemConfig{
		{Index: 0, LowerBound: 0, UpperBound: 100},
		{Index: 1, LowerBound: 0, UpperBound: 50},
	}
	state := []float32{20, 10}

	// Sx = 30, Sv = (100-20)+(50-10) = 80+40 = 120, U=90, delta=60.
	refs := policy.Compute(items, state, 90, config.Margin)

	want0 := float32(20) + 60*80/120 // 20 + 40 = 60
	want1 := float32(10) + 60*40/120 // 10 + 20 = 30

	if !almostEqual(refs[0].Value, want0) {
		t.Fatalf("item 0: want %v, got %v", want0, refs[0].Value)
	}
	if !almostEqual(refs[1].Value, want1) {
		t.Fatalf("item 1: want %v, got %v", want1, refs[1].Value)
	}
}

func TestCompute_Margin_Deficit(t *testing.T) {
	items := []config.ItemConfig{
		{Index: 0, LowerBound: 0, UpperBound: 100},
		{Index: 1, LowerBound: 0, UpperBound: 50},
	}
	state := []float32{20, 10}

	// Sx = 30, U = 15 < Sx, delta = -15.
	refs := policy.Compute(items, state, 15, config.Margin)

	want0 := float32(20) + (-15)*20/30 // 20 - 10 = 10
	want1 := float32(10) + (-15)*10/30 // 10 - 5 = 5

	if !almostEqual(refs[0].Value, want0) {
		t.Fatalf("item 0: want %v, got %v", want0, refs[0].Value)
	}
	if !almostEqual(refs[1].Value, want1) {
		t.Fatalf("item 1: want %v, got %v", want1, refs[1].Value)
	}
}

func TestCompute_Margin_SvZero_Recovers(t *testing.T) {
	items := []config.ItemConfig{
		{Index: 0, LowerBound: 0, UpperBound: 10}, // headroom 0 at state=10
	}
	state := []float32{10}

	// Sx = 10, Sv = 0, U = 20 > Sx → surplus branch with Sv==0 guard.
	refs := policy.Compute(items, state, 20, config.Margin)

	if !almostEqual(refs[0].Value, 10) {
		t.Fatalf("want r[0]=10 (hold at xi), got %v", refs[0].Value)
	}
}

func TestCompute_Margin_SxZero_Recovers(t *testing.T) {
	items := []config.ItemConfig{
		{Index: 0, LowerBound: 0, UpperBound: 10},
	}
	state := []float32{0}

	// Sx = 0, U = -5 < Sx → deficit branch with Sx==0 guard.
	refs := policy.Compute(items, state, -5, config.Margin)

	if !almostEqual(refs[0].Value, 0) {
		t.Fatalf("want r[0]=0 (hold at xi), got %v", refs[0].Value)
	}
}
