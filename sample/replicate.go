package sample

import (
	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/parallel"
	"gonum.org/v1/gonum/stat"
)

// Replicate runs fn once per seed, each on its own freshly seeded generator,
// spread over workers goroutines (0 = one per CPU). Results come back in seed
// order and do not depend on the worker count.
func Replicate(seeds []uint32, workers int, fn func(mt *mt19937.MT19937) float64) []float64 {
	return parallel.Map(len(seeds), workers, func(i int) float64 {
		return fn(mt19937.NewWithSeed(seeds[i]))
	})
}

// Summarize returns the mean and standard deviation of replicate results.
func Summarize(results []float64) (mean, std float64) {
	return stat.MeanStdDev(results, nil)
}
