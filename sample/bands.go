package sample

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ErrBadBands is returned for thresholds that are not ascending values in [0, 1].
var ErrBadBands = errors.New("band thresholds must be ascending values in [0, 1]")

// DefaultBands splits [0, 1] into class A (x <= 0.5), class B (x <= 0.65) and
// class C (everything above).
var DefaultBands = Bands{0.5, 0.65}

// Bands holds inclusive upper thresholds of consecutive classes. A value above
// the last threshold falls in the overflow class, so there are len(b)+1
// classes in total.
type Bands []float64

// NewBands validates thresholds and returns them as Bands.
func NewBands(thresholds ...float64) (Bands, error) {
	for i, t := range thresholds {
		if t < 0 || t > 1 || math.IsNaN(t) {
			return nil, fmt.Errorf("threshold %d = %v: %w", i, t, ErrBadBands)
		}
		if i > 0 && t < thresholds[i-1] {
			return nil, fmt.Errorf("threshold %d = %v below %v: %w", i, t, thresholds[i-1], ErrBadBands)
		}
	}
	return Bands(append([]float64(nil), thresholds...)), nil
}

// Classes is the number of classes, overflow included.
func (b Bands) Classes() int {
	return len(b) + 1
}

// Class returns the index of the first class whose threshold is >= x, or the
// overflow class.
func (b Bands) Class(x float64) int {
	return sort.Search(len(b), func(i int) bool { return x <= b[i] })
}

// Draw picks a class from one closed-interval draw.
func (b Bands) Draw(src Source) int {
	return b.Class(src.Float64Closed())
}

// SimulateClasses draws n classes and returns how many landed in each.
func SimulateClasses(src Source, b Bands, n int) []int {
	counts := make([]int, b.Classes())
	for i := 0; i < n; i++ {
		counts[b.Draw(src)]++
	}
	return counts
}

// Label names class i: "A" through "Z", then "C27", "C28", ...
func Label(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return "C" + strconv.Itoa(i+1)
}
