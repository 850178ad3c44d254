// Package sample draws derived variates from a Mersenne Twister stream:
// uniform reals over an interval, exponential deviates, category draws and
// the frequency reports built from them.
//
// Every sampler is a pure function of the values it pulls from its Source.
// All state lives in the generator.
package sample

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Source is the part of a generator the samplers consume. Both
// *mt19937.MT19937 and *mt19937.Locked satisfy it.
type Source interface {
	// Float64 returns a value on [0, 1).
	Float64() float64
	// Float64Closed returns a value on [0, 1].
	Float64Closed() float64
}

// Uniform returns a value on [low, high). The result is unspecified when
// low > high.
func Uniform(src Source, low, high float64) float64 {
	return src.Float64()*(high-low) + low
}

// Exponential returns an exponential deviate with the given mean. The draw
// comes from [0, 1) so the logarithm's argument stays in (0, 1] and the
// result is always finite.
func Exponential(src Source, mean float64) float64 {
	return -mean * math.Log(1.0-src.Float64())
}

// ExponentialClosed is Exponential computed from a closed [0, 1] draw. It
// returns +Inf (for a positive mean) when the draw is exactly 1.
func ExponentialClosed(src Source, mean float64) float64 {
	return -mean * math.Log(1.0-src.Float64Closed())
}

// Mean averages draws calls to f. It returns NaN for draws <= 0.
func Mean(src Source, draws int, f func(Source) float64) float64 {
	if draws <= 0 {
		return math.NaN()
	}
	xs := make([]float64, draws)
	for i := range xs {
		xs[i] = f(src)
	}
	return stat.Mean(xs, nil)
}
