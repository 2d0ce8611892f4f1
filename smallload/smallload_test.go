package smallload_test

import (
	"math"
	"testing"

	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/smallload"
)

// scenarioItems returns spec.md §8's 8-item table.
func scenarioItems() []config.ItemConfig {
	type row struct {
		lb, ub, f float32
		res       []config.Resonance
	}
	rows := []row{
		{0, 250, 0.125, []config.Resonance{{A: 0, B: 30}, {A: 50, B: 110}}},
		{0, 200, 0.125, []config.Resonance{{A: 0, B: 40}, {A: 50, B: 60}}},
		{0, 150, 0.125, []config.Resonance{{A: 10, B: 30}, {A: 60, B: 100}}},
		{0, 180, 0.125, []config.Resonance{{A: 20, B: 50}, {A: 70, B: 120}}},
		{0, 200, 0.125, []config.Resonance{{A: 0, B: 20}, {A: 40, B: 130}}},
		{0, 150, 0.125, []config.Resonance{{A: 0, B: 10}, {A: 30, B: 50}}},
		{0, 200, 0.125, []config.Resonance{{A: 20, B: 40}, {A: 70, B: 100}}},
		{0, 400, 0.125, []config.Resonance{{A: 20, B: 60}, {A: 90, B: 110}}},
	}

	items := make([]config.ItemConfig, len(rows))
	for i, r := range rows {
		items[i] = config.ItemConfig{
			Index: uint32(i), Enabled: true,
			LowerBound: r.lb, UpperBound: r.ub, AssignedFactor: r.f,
			Resonances: r.res,
		}
	}

	return items
}

func scenarioState() []float32 {
	return []float32{100, 80, 45, 10, 100, 70, 10, 180}
}

// TestAttempt_S4 is spec.md §8's S4 scenario: U=600 against a state
// summing to 595, dead_size=100 — the fast path must succeed without
// ever invoking the DP solver, landing the whole +5 delta on the
// highest-headroom item in one commit.
func TestAttempt_S4(t *testing.T) {
	items := scenarioItems()
	state := scenarioState()

	result, ok := smallload.Attempt(items, state, 600, 100)
	if !ok {
		t.Fatal("want fast path to succeed")
	}

	if len(result) != len(items) {
		t.Fatalf("want %d entries, got %d", len(items), len(result))
	}

	for i := range result {
		if result[i].Index != uint32(i) {
			t.Fatalf("want index-ascending order, entry %d has index %d", i, result[i].Index)
		}
	}

	var sum float32
	for _, e := range result {
		sum += e.Value
	}
	if math.Abs(float64(sum-600)) > 1e-3 {
		t.Fatalf("want sum 600, got %v", sum)
	}

	// item 7 (highest headroom: 220) absorbs the whole +5 delta.
	if math.Abs(float64(result[7].Value-185)) > 1e-3 {
		t.Fatalf("want item 7 = 185, got %v", result[7].Value)
	}
	for i := 0; i < 7; i++ {
		if result[i].Value != state[i] {
			t.Fatalf("want item %d unchanged at %v, got %v", i, state[i], result[i].Value)
		}
	}
}

func TestAttempt_DeadBandExceeded(t *testing.T) {
	items := scenarioItems()
	state := scenarioState()

	_, ok := smallload.Attempt(items, state, 1200, 100)
	if ok {
		t.Fatal("want fast path to decline when |delta| exceeds dead size")
	}
}

func TestAttempt_ClampsIntoResonanceBand(t *testing.T) {
	// Single item whose commit would land inside its own resonance;
	// it must clamp to the near edge and fail to find a non-blocked
	// commit, since there is no second item to absorb the remainder.
	items := []config.ItemConfig{
		{Index: 0, Enabled: true, LowerBound: 0, UpperBound: 100,
			Resonances: []config.Resonance{{A: 40, B: 60}}},
	}
	state := []float32{35}

	_, ok := smallload.Attempt(items, state, 45, 100) // delta=10, cand=45 inside (40,60)
	if ok {
		t.Fatal("want failure: single item clamps to 40 and cannot proceed further")
	}
}
