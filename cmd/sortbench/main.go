package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/kabu1204/go-sortbench/bench"
	"github.com/kabu1204/go-sortbench/config"
	"github.com/kabu1204/go-sortbench/dataset"
	"github.com/kabu1204/go-sortbench/record"
	"github.com/kabu1204/go-sortbench/report"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.WithField("pkg", "main")

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with [Input], [Output], [Bench] and [Log] sections",
	}
	analysisPath = cli.StringFlag{
		Name:  "analysis",
		Usage: "CSV file the measurements are appended to, empty to skip",
	}
	sortedPath = cli.StringFlag{
		Name:  "sorted",
		Usage: "file the sorted outputs are written to, empty to skip",
	}
	algorithms = cli.StringFlag{
		Name:  "algorithms",
		Usage: "comma separated algorithms to run (bubble, merge, quick, heap, transposition)",
	}
	workers = cli.IntFlag{
		Name:  "workers",
		Usage: "benchmark runs executed at once; above 1 the timings disturb each other",
	}
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the shuffled distribution, 0 picks one from the clock",
	}
	skipLines = cli.IntFlag{
		Name:  "skip",
		Usage: "header lines to drop from the input",
	}
	dedupe = cli.BoolFlag{
		Name:  "dedupe",
		Usage: "keep only the first record of every symbol",
	}
	noVerify = cli.BoolFlag{
		Name:  "no-verify",
		Usage: "do not check that every output is sorted",
	}
	quiet = cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print the result table",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "panic, fatal, error, warn, info, debug or trace",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sortbench"
	app.Version = "v0.1.0"
	app.Usage = "times five sorting algorithms over sorted, shuffled and reversed stock quotes"
	app.ArgsUsage = "<filename> <numLines>"
	app.Flags = []cli.Flag{
		configFile, analysisPath, sortedPath, algorithms, workers, seed,
		skipLines, dedupe, noVerify, quiet, logLevel,
	}
	app.Action = func(c *cli.Context) error {
		return run(c)
	}
	return app
}

// loadConfig layers the config file, the positional arguments and the flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String(configFile.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if c.NArg() > 0 {
		cfg.Input.Path = c.Args().Get(0)
	}
	if c.NArg() > 1 {
		lines, err := strconv.Atoi(c.Args().Get(1))
		if err != nil {
			return nil, errors.Wrapf(err, "numLines %q", c.Args().Get(1))
		}
		cfg.Input.Lines = lines
	}

	if c.IsSet(analysisPath.Name) {
		cfg.Output.AnalysisPath = c.String(analysisPath.Name)
	}
	if c.IsSet(sortedPath.Name) {
		cfg.Output.SortedPath = c.String(sortedPath.Name)
	}
	if c.IsSet(algorithms.Name) {
		cfg.Bench.Algorithms = strings.Split(c.String(algorithms.Name), ",")
	}
	if c.IsSet(workers.Name) {
		cfg.Bench.Workers = c.Int(workers.Name)
	}
	if c.IsSet(seed.Name) {
		cfg.Bench.Seed = c.Int64(seed.Name)
	}
	if c.IsSet(skipLines.Name) {
		cfg.Input.SkipLines = c.Int(skipLines.Name)
	}
	if c.Bool(dedupe.Name) {
		cfg.Input.Dedupe = true
	}
	if c.Bool(noVerify.Name) {
		cfg.Bench.Verify = false
	}
	if c.Bool(quiet.Name) {
		cfg.Output.Console = false
	}
	if c.IsSet(logLevel.Name) {
		cfg.Log.Level = c.String(logLevel.Name)
	}

	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Input.Path == "" {
		return errors.New("usage: sortbench [options] <filename> <numLines>")
	}
	level, _ := logrus.ParseLevel(cfg.Log.Level)
	logrus.SetLevel(level)

	records, err := readRecords(cfg.Input)
	if errors.Cause(err) == dataset.ErrNoData {
		fmt.Fprintln(c.App.Writer, "No data available.")
		return nil
	}
	if err != nil {
		return err
	}

	algs, err := bench.NewRegistry[record.Record]().Lookup(cfg.Bench.Algorithms...)
	if err != nil {
		return err
	}

	if cfg.Bench.Seed == 0 {
		cfg.Bench.Seed = time.Now().UnixNano()
	}
	log.WithField("seed", cfg.Bench.Seed).Debug("shuffling")
	dists := dataset.Distributions(records, record.Compare, cfg.Bench.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &bench.Runner[record.Record]{
		Algorithms: algs,
		Compare:    record.Compare,
		Workers:    cfg.Bench.Workers,
		Verify:     cfg.Bench.Verify,
		KeepOutput: cfg.Output.SortedPath != "",
	}
	results, err := runner.Run(ctx, dists)
	if err != nil {
		return err
	}

	return writeReports(c, cfg.Output, results)
}

func readRecords(in config.InputConfig) ([]record.Record, error) {
	f, err := os.Open(in.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	return dataset.Load(f, dataset.LoadOptions{
		Lines:     in.Lines,
		SkipLines: in.SkipLines,
		Dedupe:    in.Dedupe,
	})
}

func writeReports(c *cli.Context, out config.OutputConfig, results []bench.Result[record.Record]) error {
	if out.Console {
		if err := report.Console(c.App.Writer, results); err != nil {
			return err
		}
	}

	if out.AnalysisPath != "" {
		f, err := os.OpenFile(out.AnalysisPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrap(err, "opening analysis file")
		}
		err = report.Analysis(f, results)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	if out.SortedPath != "" {
		f, err := os.Create(out.SortedPath)
		if err != nil {
			return errors.Wrap(err, "creating sorted file")
		}
		err = report.Sorted(f, results)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	for _, t := range report.Summary(results) {
		log.WithFields(logrus.Fields{
			"algorithm": t.Algorithm,
			"runs":      t.Runs,
			"elapsed":   t.Elapsed,
		}).Info("total")
	}
	return nil
}
