package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/sample"
	"gopkg.in/yaml.v3"
)

// Config drives which reports the demo prints and how the generator is seeded.
type Config struct {
	// Seed is the scalar seed, used when Key is empty.
	Seed uint32 `yaml:"seed"`
	// Key seeds the generator by array when non-empty.
	Key []uint32 `yaml:"key"`

	Draws int     `yaml:"draws"`
	Mean  float64 `yaml:"mean"`
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`

	Bands []float64 `yaml:"bands"`
	Bins  int       `yaml:"bins"`

	// Streams is the number of independently seeded generators in the
	// streams report. They are seeded Seed, Seed+1, ... or, when Key is set,
	// with the first Streams words of the key-seeded generator.
	Streams int `yaml:"streams"`
	Workers int `yaml:"workers"`

	Reports []string `yaml:"reports"`

	// CSV, when set, receives the histogram as bin,observed,expected rows.
	CSV string `yaml:"csv"`

	LogLevel string `yaml:"log_level"`
	JSONLogs bool   `yaml:"json_logs"`
}

var allReports = []string{"reference", "uniform", "classes", "table", "exponential", "histogram", "streams"}

// DefaultConfig mirrors the runs of the original exercise: 1000 draws, a mean
// of 11 and 22 histogram bins.
func DefaultConfig() Config {
	return Config{
		Seed:     mt19937.DefaultSeed,
		Draws:    1000,
		Mean:     11,
		Low:      -89.2,
		High:     56.7,
		Bands:    append([]float64(nil), sample.DefaultBands...),
		Bins:     22,
		Streams:  8,
		Workers:  0,
		Reports:  []string{"uniform", "classes", "exponential", "histogram"},
		LogLevel: "info",
	}
}

// loadConfig decodes a YAML file over the defaults.
func loadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return config, fmt.Errorf("decode config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the values no report can work with.
func (c Config) Validate() error {
	if c.Draws < 0 {
		return fmt.Errorf("draws must be >= 0, got %d", c.Draws)
	}
	if c.Mean <= 0 {
		return fmt.Errorf("mean must be > 0, got %v", c.Mean)
	}
	if c.Low > c.High {
		return fmt.Errorf("low %v is above high %v", c.Low, c.High)
	}
	if c.Bins < 1 {
		return fmt.Errorf("bins must be >= 1, got %d", c.Bins)
	}
	if _, err := sample.NewBands(c.Bands...); err != nil {
		return err
	}
	for _, r := range c.Reports {
		if !knownReport(r) {
			return fmt.Errorf("unknown report %q (known: %s)", r, strings.Join(allReports, ","))
		}
	}
	return nil
}

// Generator builds the configured generator.
func (c Config) Generator() (*mt19937.MT19937, error) {
	if len(c.Key) > 0 {
		return mt19937.NewFromArray(c.Key)
	}
	return mt19937.NewWithSeed(c.Seed), nil
}

// StreamSeeds returns the scalar seed of each generator in the streams report.
func (c Config) StreamSeeds() ([]uint32, error) {
	seeds := make([]uint32, c.Streams)
	if len(c.Key) == 0 {
		for i := range seeds {
			seeds[i] = c.Seed + uint32(i)
		}
		return seeds, nil
	}

	mt, err := mt19937.NewFromArray(c.Key)
	if err != nil {
		return nil, err
	}
	for i := range seeds {
		seeds[i] = mt.Uint32()
	}
	return seeds, nil
}

func knownReport(name string) bool {
	for _, r := range allReports {
		if r == name {
			return true
		}
	}
	return false
}

// parseSeed narrows a -seed flag value to 32 bits.
func parseSeed(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("seed %d does not fit in 32 bits", v)
	}
	return uint32(v), nil
}

// parseKey reads a comma separated list of 32-bit words. Each word may be
// decimal, 0x hex or 0 octal.
func parseKey(s string) ([]uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	key := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("key word %d: %w", i, err)
		}
		key[i] = uint32(v)
	}
	return key, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
