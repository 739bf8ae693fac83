package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/sanonone/countrydb/pkg/config"
	"github.com/sanonone/countrydb/pkg/loader"
	"github.com/sanonone/countrydb/pkg/metrics"
	"github.com/sanonone/countrydb/pkg/query"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, loads the dataset and prints the requested report to stdout.
// It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("countrydb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to the YAML configuration file")
	datasetPath := fs.String("dataset", "", "Dataset file (overrides dataset_path from the config)")
	reportName := fs.String("report", "summary", "Report to print: "+reportNames())
	code := fs.String("code", "", "Country code for the lookup report")
	logLevel := fs.String("log-level", "", "Log level (overrides log_level from the config)")
	dumpMetrics := fs.Bool("metrics", false, "Print collected metrics to stderr on exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "countrydb: %v\n", err)
		return 1
	}
	if *datasetPath != "" {
		cfg.DatasetPath = *datasetPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *dumpMetrics {
		cfg.MetricsEnabled = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "countrydb: %v\n", err)
		return 1
	}

	logger := cfg.NewLogger(stderr)

	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		m = metrics.New(registry)
	}

	l, err := loader.New(
		loader.WithLogger(logger),
		loader.WithMetrics(m),
		loader.WithValidation(cfg.ValidateSchema),
	)
	if err != nil {
		logger.Error("failed to create loader", "error", err)
		return 1
	}
	ds, err := l.Load(ctx, cfg.DatasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "error", err)
		return 1
	}

	repo := query.New(ds.Countries, query.WithLogger(logger), query.WithMetrics(m))

	report, ok := reports[*reportName]
	if !ok {
		fmt.Fprintf(stderr, "countrydb: unknown report %q (available: %s)\n", *reportName, reportNames())
		return 2
	}
	result, err := report(repo, reportArgs{Code: *code})
	if err != nil {
		logger.Error("report failed", "report", *reportName, "error", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to encode report", "error", err)
		return 1
	}

	if registry != nil && *dumpMetrics {
		if err := writeMetrics(stderr, registry); err != nil {
			logger.Error("failed to write metrics", "error", err)
			return 1
		}
	}
	return 0
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
