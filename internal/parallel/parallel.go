// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map applies fn to each index in [0, n) and collects the results in index
// order. Work is split into contiguous chunks, one per worker; workers <= 0
// means NumWorkers().
func Map[T any](n, workers int, fn func(i int) T) []T {
	if n <= 0 {
		return nil
	}
	results := make([]T, n)

	if workers <= 0 {
		workers = NumWorkers()
	}
	if workers == 1 || n == 1 {
		for i := range results {
			results[i] = fn(i)
		}
		return results
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				results[i] = fn(i)
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
