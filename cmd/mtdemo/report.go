package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/logger"
	"github.com/nozzle/mt19937/sample"
)

// referenceKey is the key of the published mt19937ar test output.
var referenceKey = []uint32{0x123, 0x234, 0x345, 0x456}

// courseCounts is the worked frequency-table example.
var courseCounts = []int{100, 400, 600, 400, 100, 200}

// run prints every configured report to w, in the order given.
func run(config Config, w io.Writer) error {
	mt, err := config.Generator()
	if err != nil {
		return fmt.Errorf("seed generator: %w", err)
	}

	for _, name := range config.Reports {
		start := time.Now()
		if err := runReport(name, config, mt, w); err != nil {
			return fmt.Errorf("%s report: %w", name, err)
		}
		logger.Log().Debug().Str("report", name).Dur("took", time.Since(start)).Msg("report done")
	}
	return nil
}

func runReport(name string, config Config, mt *mt19937.MT19937, w io.Writer) error {
	switch name {
	case "reference":
		return reportReference(w)
	case "uniform":
		return reportUniform(w, mt, config)
	case "classes":
		return reportClasses(w, mt, config)
	case "table":
		return reportTable(w, courseCounts)
	case "exponential":
		return reportExponential(w, mt, config)
	case "histogram":
		return reportHistogram(w, mt, config)
	case "streams":
		return reportStreams(w, config)
	}
	return fmt.Errorf("unknown report %q", name)
}

// reportReference reproduces the layout of mt19937ar.out.
func reportReference(w io.Writer) error {
	mt, err := mt19937.NewFromArray(referenceKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "1000 outputs of Uint32()")
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(w, "%10d ", mt.Uint32())
		if i%5 == 4 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1000 outputs of Float64()")
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(w, "%10.8f ", mt.Float64())
		if i%5 == 4 {
			fmt.Fprintln(w)
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

func reportUniform(w io.Writer, mt *mt19937.MT19937, config Config) error {
	fmt.Fprintf(w, "Uniform(%v, %v):\n", config.Low, config.High)
	for i := 0; i < 11 && i < config.Draws; i++ {
		fmt.Fprintf(w, "%f\n", sample.Uniform(mt, config.Low, config.High))
	}
	if config.Draws == 0 {
		return nil
	}
	mean := sample.Mean(mt, config.Draws, func(src sample.Source) float64 {
		return sample.Uniform(src, config.Low, config.High)
	})
	_, err := fmt.Fprintf(w, "Average after %d draws = %f (expected %f)\n\n",
		config.Draws, mean, (config.Low+config.High)/2)
	return err
}

func reportClasses(w io.Writer, mt *mt19937.MT19937, config Config) error {
	bands, err := sample.NewBands(config.Bands...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Draws : %d\n", config.Draws)
	counts := sample.SimulateClasses(mt, bands, config.Draws)
	for i, c := range counts {
		fmt.Fprintf(w, " Class %s : %d |", sample.Label(i), c)
	}
	fmt.Fprintln(w)
	if config.Draws == 0 {
		return nil
	}
	return reportTable(w, counts)
}

func reportTable(w io.Writer, counts []int) error {
	tab, err := sample.NewTable(counts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tab)
	return err
}

func reportExponential(w io.Writer, mt *mt19937.MT19937, config Config) error {
	fmt.Fprintf(w, "Exponential(%f) = %f\n", config.Mean, sample.Exponential(mt, config.Mean))
	if config.Draws == 0 {
		return nil
	}
	mean := sample.Mean(mt, config.Draws, func(src sample.Source) float64 {
		return sample.Exponential(src, config.Mean)
	})
	_, err := fmt.Fprintf(w, "Average after %d draws = %f\n\n", config.Draws, mean)
	return err
}

func reportHistogram(w io.Writer, mt *mt19937.MT19937, config Config) error {
	counts, err := sample.Histogram(mt, config.Mean, config.Draws, config.Bins)
	if err != nil {
		return err
	}
	expected, err := sample.Expected(config.Mean, config.Draws, config.Bins)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Histogram of %d Exponential(%v) draws:\n", config.Draws, config.Mean)
	for _, c := range counts {
		fmt.Fprintf(w, " %d |", c)
	}
	fmt.Fprintln(w)
	if config.Draws > 0 {
		fmt.Fprintf(w, "Chi-square against the exponential law (%d bins) = %f\n",
			config.Bins, sample.ChiSquare(counts, expected))
	}
	fmt.Fprintln(w)

	if config.CSV == "" {
		return nil
	}
	if err := saveHistogramCSV(config.CSV, counts, expected); err != nil {
		return err
	}
	logger.Log().Info().Str("path", config.CSV).Int("bins", len(counts)).Msg("histogram saved")
	return nil
}

func reportStreams(w io.Writer, config Config) error {
	if config.Streams <= 0 || config.Draws == 0 {
		return nil
	}

	seeds, err := config.StreamSeeds()
	if err != nil {
		return err
	}
	means := sample.Replicate(seeds, config.Workers, func(mt *mt19937.MT19937) float64 {
		return sample.Mean(mt, config.Draws, func(src sample.Source) float64 {
			return sample.Exponential(src, config.Mean)
		})
	})

	fmt.Fprintf(w, "Exponential(%v) average over %d draws per stream:\n", config.Mean, config.Draws)
	for i, m := range means {
		fmt.Fprintf(w, " seed %d : %f\n", seeds[i], m)
	}
	mean, std := sample.Summarize(means)
	_, err = fmt.Fprintf(w, "Across %d streams: mean %f, std %f\n\n", len(means), mean, std)
	return err
}

// saveHistogramCSV writes bin,observed,expected rows.
func saveHistogramCSV(filename string, counts []int, expected []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"bin", "observed", "expected"}); err != nil {
		return err
	}
	for i, c := range counts {
		record := []string{
			strconv.Itoa(i),
			strconv.Itoa(c),
			strconv.FormatFloat(expected[i], 'f', 6, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
