package sample_test

import (
	"math"
	"testing"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/sample"
)

func firstWord(mt *mt19937.MT19937) float64 {
	return float64(mt.Uint32())
}

func TestReplicateSeedOrder(t *testing.T) {
	seeds := []uint32{5489, 1, 2, 3, 42, 4357, 19650218}

	for _, workers := range []int{0, 1, 2, 16} {
		got := sample.Replicate(seeds, workers, firstWord)
		if len(got) != len(seeds) {
			t.Fatalf("workers=%d: got %d results", workers, len(got))
		}
		for i, s := range seeds {
			if want := float64(mt19937.NewWithSeed(s).Uint32()); got[i] != want {
				t.Errorf("workers=%d seed %d: got %v, expected %v", workers, s, got[i], want)
			}
		}
	}
}

func TestReplicateExponentialMeans(t *testing.T) {
	seeds := make([]uint32, 32)
	for i := range seeds {
		seeds[i] = uint32(i + 1)
	}

	means := sample.Replicate(seeds, 4, func(mt *mt19937.MT19937) float64 {
		return sample.Mean(mt, 10_000, func(src sample.Source) float64 {
			return sample.Exponential(src, 11)
		})
	})

	mean, std := sample.Summarize(means)
	t.Logf("mean of means=%v std=%v", mean, std)
	// Each mean has standard error 11/sqrt(10000) = 0.11.
	if math.Abs(mean-11) > 0.2 {
		t.Errorf("mean of replicate means %v too far from 11", mean)
	}
	if std <= 0 || std > 0.3 {
		t.Errorf("replicate std %v outside (0, 0.3]", std)
	}
}
