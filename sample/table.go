package sample

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyTable is returned when a frequency table has nothing to normalise.
var ErrEmptyTable = errors.New("frequency table has no observations")

// Table is a normalised frequency table.
type Table struct {
	Counts     []int
	Probs      []float64
	Cumulative []float64
}

// NewTable turns per-class counts into probabilities and cumulative
// probabilities. Counts must be non-empty, non-negative and not all zero.
func NewTable(counts []int) (*Table, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyTable
	}

	probs := make([]float64, len(counts))
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("class %s has negative count %d", Label(i), c)
		}
		probs[i] = float64(c)
	}

	total := floats.Sum(probs)
	if total == 0 {
		return nil, ErrEmptyTable
	}
	floats.Scale(1/total, probs)

	cumulative := make([]float64, len(probs))
	floats.CumSum(cumulative, probs)

	return &Table{
		Counts:     append([]int(nil), counts...),
		Probs:      probs,
		Cumulative: cumulative,
	}, nil
}

// Total is the number of observations in the table.
func (t *Table) Total() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Probability of each class:\n")
	writeRow(&sb, t.Probs)
	sb.WriteString("Cumulative probability of each class:\n")
	writeRow(&sb, t.Cumulative)
	return sb.String()
}

func writeRow(sb *strings.Builder, row []float64) {
	for i, p := range row {
		fmt.Fprintf(sb, " Class %s : %f |", Label(i), p)
	}
	sb.WriteByte('\n')
}
