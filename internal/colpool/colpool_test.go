package colpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/gridtied/gridtied/internal/colpool"
)

func TestRun_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 137
	var seen [n]int32

	colpool.Run(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestRun_ZeroIsNoop(t *testing.T) {
	called := false
	colpool.Run(0, func(int) { called = true })

	if called {
		t.Fatal("want fn never called for n=0")
	}
}
