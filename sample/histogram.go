package sample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrBadBins is returned for a histogram with fewer than one bin.
	ErrBadBins = errors.New("histogram needs at least one bin")
	// ErrBadMean is returned for an exponential mean that is not a positive
	// finite number.
	ErrBadMean = errors.New("exponential mean must be positive and finite")
)

func checkHistogram(mean float64, bins int) error {
	if bins < 1 {
		return ErrBadBins
	}
	if mean <= 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return ErrBadMean
	}
	return nil
}

// Histogram draws exponential deviates with the given mean and counts their
// integer parts. Bin i holds values in [i, i+1) for i < bins-1; the last bin
// collects everything from bins-1 upwards.
func Histogram(src Source, mean float64, draws, bins int) ([]int, error) {
	if err := checkHistogram(mean, bins); err != nil {
		return nil, err
	}

	last := bins - 1
	counts := make([]int, bins)
	for i := 0; i < draws; i++ {
		x := Exponential(src, mean)
		if x >= float64(last) {
			counts[last]++
			continue
		}
		counts[int(x)]++
	}
	return counts, nil
}

// Expected returns the counts an ideal exponential distribution would put in
// each Histogram bin over the same number of draws.
func Expected(mean float64, draws, bins int) ([]float64, error) {
	if err := checkHistogram(mean, bins); err != nil {
		return nil, err
	}

	dist := distuv.Exponential{Rate: 1 / mean}
	out := make([]float64, bins)
	last := bins - 1
	for i := 0; i < last; i++ {
		out[i] = float64(draws) * (dist.CDF(float64(i+1)) - dist.CDF(float64(i)))
	}
	out[last] = float64(draws) * dist.Survival(float64(last))
	return out, nil
}

// ChiSquare is Pearson's statistic for observed bin counts against expected
// ones. Both slices must have the same length.
func ChiSquare(observed []int, expected []float64) float64 {
	obs := make([]float64, len(observed))
	for i, c := range observed {
		obs[i] = float64(c)
	}
	return stat.ChiSquare(obs, expected)
}
