package colpool

import (
	"runtime"
	"sync"
)

// Run executes fn(i) for every i in [0, n) across a bounded number of
// worker goroutines (min(n, runtime.NumCPU())) and blocks until all
// calls have returned. Each i is owned by exactly one call to fn, so
// callers with disjoint per-i writes (as dpgrid's per-cell cost
// computation is) need no additional locking.
//
// Run is the single join barrier gridtied ever needs: one call per DP
// column, never nested, never held across columns.
func Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
