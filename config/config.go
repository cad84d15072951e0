// Package config holds the settings of a sortbench run, read from a TOML file
// and overridden by command line flags.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// InputConfig describes where records come from.
type InputConfig struct {
	Path      string
	Lines     int  // records to load, 0 for all
	SkipLines int  // header lines to drop before parsing
	Dedupe    bool // keep only the first record per symbol
}

// OutputConfig names the files results are written to. An empty path
// disables that output.
type OutputConfig struct {
	AnalysisPath string
	SortedPath   string
	Console      bool
}

// BenchConfig drives the benchmark runner.
type BenchConfig struct {
	Algorithms []string
	Workers    int
	Seed       int64 // shuffle seed, 0 picks one from the clock
	Verify     bool
}

type LogConfig struct {
	Level string
}

type Config struct {
	Input  InputConfig
	Output OutputConfig
	Bench  BenchConfig
	Log    LogConfig
}

// Default returns the settings used when no file or flag says otherwise.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			AnalysisPath: "analysis.txt",
			SortedPath:   "sorted.txt",
			Console:      true,
		},
		Bench: BenchConfig{
			Algorithms: []string{"bubble", "merge", "quick", "heap", "transposition"},
			Workers:    1,
			Verify:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load overlays the TOML file at path on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err = toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings no run could honour.
func (c *Config) Validate() error {
	if c.Input.Lines < 0 {
		return errors.Errorf("input lines must not be negative, got %d", c.Input.Lines)
	}
	if c.Input.SkipLines < 0 {
		return errors.Errorf("input skip lines must not be negative, got %d", c.Input.SkipLines)
	}
	if c.Bench.Workers < 1 {
		return errors.Errorf("bench workers must be at least 1, got %d", c.Bench.Workers)
	}
	if len(c.Bench.Algorithms) == 0 {
		return errors.New("no algorithms selected")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
