// Command parfor-bench times a sequential loop against parallel.For on a
// simple scaling workload and checks that both produce the same result.
//
// Usage:
//
//	parfor-bench [-config file.toml] [-size n] [-repeats n] [-engine name]
//
// Settings can also be given in a TOML file or through PARFOR_*
// environment variables; see package internal/config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/exascience/parfor/internal/config"
	"github.com/exascience/parfor/parallel"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("parfor-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "parfor-bench: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "parfor-bench: %v\n", err)
		return exitUsage
	}

	engine, err := parallel.EngineByName(cfg.Engine)
	if err != nil {
		logger.Error("select engine", "err", err)
		return exitUsage
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}
	logger.Info("starting",
		"size", cfg.Size,
		"repeats", cfg.Repeats,
		"engine", engine,
		"procs", parallel.ProcessorCount(),
	)

	result := runWorkload(cfg.Size, cfg.Repeats, parallel.Loop{Engine: engine})
	logger.Info("before", "took", result.Before)
	logger.Info("after", "took", result.After)

	if result.Mismatch >= 0 {
		logger.Error("results differ",
			"index", result.Mismatch,
			"before", result.Sequential[result.Mismatch],
			"after", result.Parallel[result.Mismatch],
		)
		return exitMismatch
	}
	logger.Info("results match", "speedup", fmt.Sprintf("%.2fx", result.Speedup()))
	return exitOK
}

func newLogger(w io.Writer, cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var formatter log.Formatter
	switch cfg.LogFormat {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Formatter: formatter,
		Prefix:    "parfor-bench",
	}), nil
}
