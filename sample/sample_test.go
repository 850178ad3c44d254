package sample_test

import (
	"math"
	"testing"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/sample"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// constSource always returns the same draw.
type constSource float64

func (c constSource) Float64() float64       { return float64(c) }
func (c constSource) Float64Closed() float64 { return float64(c) }

func TestUniformDegenerate(t *testing.T) {
	mt := mt19937.NewWithSeed(1)
	for _, a := range []float64{0, -89.2, 56.7, 1e9} {
		for range 1000 {
			if got := sample.Uniform(mt, a, a); got != a {
				t.Fatalf("Uniform(%v, %v) = %v", a, a, got)
			}
		}
	}
}

func TestUniformSymmetric(t *testing.T) {
	const draws = 1_000_000
	mt := mt19937.NewWithSeed(4357)

	xs := make([]float64, draws)
	for i := range xs {
		x := sample.Uniform(mt, -1, 1)
		if x < -1 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
		xs[i] = x
	}

	mean, std := stat.MeanStdDev(xs, nil)
	t.Logf("mean=%v std=%v", mean, std)
	if math.Abs(mean) > 0.005 {
		t.Errorf("sample mean %v too far from 0", mean)
	}
	// Uniform(-1, 1) has standard deviation 1/sqrt(3).
	if math.Abs(std-1/math.Sqrt(3)) > 0.005 {
		t.Errorf("sample std %v too far from %v", std, 1/math.Sqrt(3))
	}
}

func TestUniformUsesHalfOpenDraw(t *testing.T) {
	a := mt19937.NewWithSeed(8)
	b := mt19937.NewWithSeed(8)
	for range 100 {
		want := b.Float64()*(56.7-(-89.2)) + (-89.2)
		if got := sample.Uniform(a, -89.2, 56.7); got != want {
			t.Fatalf("got %v, expected %v", got, want)
		}
	}
}

func TestExponentialMean(t *testing.T) {
	mt := mt19937.NewWithSeed(11)
	for _, mean := range []float64{0.5, 1, 11} {
		got := sample.Mean(mt, 200_000, func(src sample.Source) float64 {
			return sample.Exponential(src, mean)
		})
		t.Logf("mean=%v sample mean=%v", mean, got)
		if math.Abs(got-mean) > 0.02*mean {
			t.Errorf("mean %v: sample mean %v outside 2%%", mean, got)
		}
	}
}

func TestExponentialFinite(t *testing.T) {
	mt := mt19937.NewWithSeed(5)
	for i := range 100_000 {
		x := sample.Exponential(mt, 11)
		if x < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			t.Fatalf("draw %d: %v", i, x)
		}
	}

	if got := sample.Exponential(constSource(0), 11); got != 0 {
		t.Errorf("draw 0: got %v, expected 0", got)
	}
}

func TestExponentialClosedAtOne(t *testing.T) {
	if got := sample.ExponentialClosed(constSource(1), 11); !math.IsInf(got, 1) {
		t.Errorf("closed draw of 1: got %v, expected +Inf", got)
	}
	if got := sample.ExponentialClosed(constSource(0.5), 2); math.Abs(got-2*math.Ln2) > 1e-12 {
		t.Errorf("closed draw of 0.5: got %v, expected %v", got, 2*math.Ln2)
	}
}

func TestMeanNoDraws(t *testing.T) {
	got := sample.Mean(constSource(0.5), 0, func(src sample.Source) float64 { return src.Float64() })
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestGeneratorDrivesDistuv(t *testing.T) {
	// *MT19937 is a math/rand/v2 Source, so gonum distributions can sample
	// from a reproducible stream.
	draw := func() []float64 {
		d := distuv.Exponential{Rate: 1.0 / 11, Src: mt19937.NewWithSeed(99)}
		xs := make([]float64, 50_000)
		for i := range xs {
			xs[i] = d.Rand()
		}
		return xs
	}

	a, b := draw(), draw()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d not reproducible: %v != %v", i, a[i], b[i])
		}
	}
	if mean := stat.Mean(a, nil); math.Abs(mean-11) > 0.5 {
		t.Errorf("distuv sample mean %v too far from 11", mean)
	}
}

func BenchmarkExponential(b *testing.B) {
	mt := mt19937.NewWithSeed(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sample.Exponential(mt, 11)
	}
}
