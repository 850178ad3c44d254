// Command mtdemo prints sampling reports drawn from a Mersenne Twister stream:
// the mt19937ar reference output, uniform draws, class frequencies and
// exponential deviates.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nozzle/mt19937/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	seed := flag.Uint64("seed", 0, "Scalar seed (default 5489)")
	key := flag.String("key", "", "Comma separated array seed, e.g. 0x123,0x234")
	draws := flag.Int("draws", 0, "Number of draws per report (default 1000)")
	mean := flag.Float64("mean", 0, "Mean of the exponential law (default 11)")
	low := flag.Float64("low", 0, "Lower bound of the uniform report (default -89.2)")
	high := flag.Float64("high", 0, "Upper bound of the uniform report (default 56.7)")
	bands := flag.String("bands", "", "Comma separated class thresholds (default 0.5,0.65)")
	bins := flag.Int("bins", 0, "Histogram bins (default 22)")
	streams := flag.Int("streams", 0, "Independent streams in the streams report (default 8)")
	workers := flag.Int("workers", 0, "Workers for the streams report (0 = one per CPU)")
	reports := flag.String("reports", "", "Comma separated reports: reference,uniform,classes,table,exponential,histogram,streams")
	outputCSV := flag.String("csv", "", "Write the histogram to this CSV file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error, silent")
	jsonLogs := flag.Bool("json-logs", false, "Log JSON instead of console output")
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		logger.Log().Fatal().Err(err).Msg("load config")
	}

	// Flags given on the command line win over the file.
	var parseErr error
	keep := func(err error) {
		if parseErr == nil {
			parseErr = err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "seed":
			config.Seed, err = parseSeed(*seed)
		case "key":
			config.Key, err = parseKey(*key)
		case "draws":
			config.Draws = *draws
		case "mean":
			config.Mean = *mean
		case "low":
			config.Low = *low
		case "high":
			config.High = *high
		case "bands":
			config.Bands, err = parseFloats(*bands)
		case "bins":
			config.Bins = *bins
		case "streams":
			config.Streams = *streams
		case "workers":
			config.Workers = *workers
		case "reports":
			config.Reports = parseList(*reports)
		case "csv":
			config.CSV = *outputCSV
		case "log-level":
			config.LogLevel = *logLevel
		case "json-logs":
			config.JSONLogs = *jsonLogs
		}
		keep(err)
	})
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
		flag.Usage()
		os.Exit(2)
	}

	if config.JSONLogs {
		logger.SetJSONWriter(os.Stderr)
	}
	if err := logger.SetLevel(config.LogLevel); err != nil {
		logger.Log().Fatal().Err(err).Msg("configure logging")
	}

	if err := config.Validate(); err != nil {
		logger.Log().Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(2)
	}

	logger.Log().Debug().
		Uint32("seed", config.Seed).
		Int("key_words", len(config.Key)).
		Int("draws", config.Draws).
		Strs("reports", config.Reports).
		Msg("starting")

	if err := run(config, os.Stdout); err != nil {
		logger.Log().Fatal().Err(err).Msg("run")
	}
}
