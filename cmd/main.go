// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"prospect-scan/internal/batch"
	"prospect-scan/internal/config"
	"prospect-scan/internal/document"
	"prospect-scan/internal/formatters"
	csvformatter "prospect-scan/internal/formatters/csv"
	jsonformatter "prospect-scan/internal/formatters/json"
	textformatter "prospect-scan/internal/formatters/text"
	"prospect-scan/internal/match"
	"prospect-scan/internal/observability"
	"prospect-scan/internal/prospect"
	"prospect-scan/internal/scanner"
	"prospect-scan/internal/segments"
	"prospect-scan/internal/version"
)

// cliFlags holds command line flag values. Numeric sentinels of -1 mean
// "not set, fall back to the config file".
type cliFlags struct {
	prospectsPath string
	documentsPath string
	configFile    string

	format           string
	confidenceLevels string
	outputFile       string

	batchSize          int
	workers            int
	chunkSizeMB        int
	overlapChars       int
	contextChars       int
	includeCompanyOnly bool

	segmentsDir  string
	keepSegments bool

	verbose     bool
	debug       bool
	noColor     bool
	showVersion bool
}

func parseFlags() *cliFlags {
	f := &cliFlags{}

	flag.StringVar(&f.prospectsPath, "prospects", "", "Path to the prospects CSV file (required)")
	flag.StringVar(&f.documentsPath, "documents", "", "Path to the document corpus directory or file (required)")
	flag.StringVar(&f.configFile, "config", "", "Path to config file (default: auto-discover)")

	flag.StringVar(&f.format, "format", "", "Output format: text, json, csv")
	flag.StringVar(&f.confidenceLevels, "confidence", "", "Confidence tiers to report: high,medium,low or all")
	flag.StringVar(&f.outputFile, "output", "", "Write output to file instead of stdout")

	flag.IntVar(&f.batchSize, "batch-size", -1, "Prospects per batch (memory ceiling tunable)")
	flag.IntVar(&f.workers, "workers", -1, "Concurrent document scans per batch")
	flag.IntVar(&f.chunkSizeMB, "chunk-size-mb", -1, "Streaming chunk size in MB")
	flag.IntVar(&f.overlapChars, "overlap-chars", -1, "Chunk overlap in characters")
	flag.IntVar(&f.contextChars, "context-chars", -1, "Context snippet padding in characters")
	flag.BoolVar(&f.includeCompanyOnly, "include-company-only", false, "Report company-only matches (low confidence)")

	flag.StringVar(&f.segmentsDir, "segments-dir", "", "Directory for batch segment files")
	flag.BoolVar(&f.keepSegments, "keep-segments", false, "Keep segment files after the merge")

	flag.BoolVar(&f.verbose, "verbose", false, "Show context snippets and progress")
	flag.BoolVar(&f.debug, "debug", false, "Emit per-operation debug records to stderr")
	flag.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	if flags.prospectsPath == "" || flags.documentsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -prospects and -documents are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := loadConfiguration(flags.configFile)
	opts, runCfg := resolveConfiguration(cfg, flags)

	if runCfg.noColor {
		color.NoColor = true
	}

	prospects, err := loadProspects(flags.prospectsPath)
	if err != nil {
		fatal(err)
	}

	docs, err := document.NewDirSource(flags.documentsPath)
	if err != nil {
		fatal(err)
	}

	store, err := segments.NewFileStore(runCfg.segmentsDir)
	if err != nil {
		fatal(err)
	}

	level := observability.LevelMetrics
	if runCfg.debug {
		level = observability.LevelDebug
	}
	observer := observability.NewObserver(level, os.Stderr)
	if runCfg.verbose && term.IsTerminal(int(os.Stderr.Fd())) {
		observer.WithProgressSink(&stderrProgress{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := batch.New(store, observer).Match(ctx, prospects, docs, opts)
	if err != nil {
		fatal(err)
	}

	output, err := formatResults(results, runCfg)
	if err != nil {
		fatal(err)
	}

	if runCfg.outputFile != "" {
		if err := os.WriteFile(runCfg.outputFile, []byte(output+"\n"), 0o644); err != nil {
			fatal(fmt.Errorf("failed to write output file: %w", err))
		}
		return
	}
	fmt.Println(output)
}

// runConfig holds the resolved, flag-over-config output settings.
type runConfig struct {
	format           string
	confidenceLevels string
	outputFile       string
	segmentsDir      string
	verbose          bool
	debug            bool
	noColor          bool
}

// loadConfiguration loads the configuration file or returns default config.
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading config file: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// resolveConfiguration merges config-file values with flag overrides.
func resolveConfiguration(cfg *config.Config, flags *cliFlags) (batch.Options, runConfig) {
	opts := batch.Options{
		BatchSize:          cfg.Matching.BatchSize,
		Workers:            cfg.Matching.Workers,
		IncludeCompanyOnly: cfg.Matching.IncludeCompanyOnly || flags.includeCompanyOnly,
		KeepSegments:       cfg.Segments.Keep || flags.keepSegments,
		Scanner: scanner.Config{
			ChunkSize:    cfg.Matching.ChunkSizeMB * 1024 * 1024,
			OverlapChars: cfg.Matching.OverlapChars,
			ContextChars: cfg.Matching.ContextChars,
		},
	}
	if flags.batchSize > 0 {
		opts.BatchSize = flags.batchSize
	}
	if flags.workers > 0 {
		opts.Workers = flags.workers
	}
	if flags.chunkSizeMB > 0 {
		opts.Scanner.ChunkSize = flags.chunkSizeMB * 1024 * 1024
	}
	if flags.overlapChars > 0 {
		opts.Scanner.OverlapChars = flags.overlapChars
	}
	if flags.contextChars > 0 {
		opts.Scanner.ContextChars = flags.contextChars
	}

	rc := runConfig{
		format:           cfg.Defaults.Format,
		confidenceLevels: cfg.Defaults.ConfidenceLevels,
		outputFile:       flags.outputFile,
		segmentsDir:      cfg.Segments.Dir,
		verbose:          cfg.Defaults.Verbose || flags.verbose,
		debug:            cfg.Defaults.Debug || flags.debug,
		noColor:          cfg.Defaults.NoColor || flags.noColor,
	}
	if flags.format != "" {
		rc.format = flags.format
	}
	if flags.confidenceLevels != "" {
		rc.confidenceLevels = flags.confidenceLevels
	}
	if flags.segmentsDir != "" {
		rc.segmentsDir = flags.segmentsDir
	}
	return opts, rc
}

func loadProspects(path string) ([]prospect.Prospect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prospects file: %w", err)
	}
	defer f.Close()

	prospects, err := prospect.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	if len(prospects) == 0 {
		return nil, fmt.Errorf("no usable prospect rows in %s", path)
	}
	return prospects, nil
}

func formatResults(results []match.Result, rc runConfig) (string, error) {
	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	registry.Register(csvformatter.NewFormatter())

	f, ok := registry.Get(rc.format)
	if !ok {
		return "", fmt.Errorf("unknown output format %q", rc.format)
	}

	return f.Format(results, formatters.Options{
		ConfidenceLevel: formatters.ParseConfidenceLevels(rc.confidenceLevels),
		Verbose:         rc.verbose,
		NoColor:         rc.noColor,
	})
}

// stderrProgress prints progress events as single overwritable lines.
type stderrProgress struct{}

func (s *stderrProgress) Notify(event string, data map[string]any) {
	if event == "progress" {
		fmt.Fprintf(os.Stderr, "\rbatch %v/%v", data["batch"], data["batches"])
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", event, data)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
