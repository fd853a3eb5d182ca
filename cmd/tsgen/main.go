package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/synaptecltd/tsgen"
	"github.com/synaptecltd/tsgen/internal/config"
	"github.com/synaptecltd/tsgen/internal/exporter"
	"github.com/synaptecltd/tsgen/internal/logging"
	"github.com/synaptecltd/tsgen/internal/metrics"
	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "tsgen:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var seed *uint64

	flags := flag.NewFlagSet("tsgen", flag.ContinueOnError)
	scenarioPath := flags.String("scenario", "", "scenario yaml file")
	out := flags.String("out", "-", "output file (.csv or .xlsx), - for csv on stdout")
	metricsPath := flags.String("metrics", "", "write generation metrics to this file in Prometheus text format")
	noEnvelope := flags.Bool("no-envelope", false, "skip the envelopes requested by the scenario; envelopes get their own <name>_t time column")
	flags.Func("seed", "seed for reproducible noise, overrides TSGEN_SEED", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		seed = &v
		return nil
	})
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		return errors.New("-scenario is required")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if seed == nil {
		seed = settings.Seed
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	scenario, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", zap.Error(err))
		return err
	}

	registry := prometheus.NewRegistry()
	jobs := scenario.Synthesizers(seed, logger, tsgen.WithObserver(metrics.New(registry)))

	series, err := tsgen.GenerateBatch(ctx, jobs, settings.Workers)
	if *metricsPath != "" {
		if err := prometheus.WriteToTextfile(*metricsPath, registry); err != nil {
			logger.Warn("failed to write metrics", zap.String("path", *metricsPath), zap.Error(err))
		}
	}
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}

	if scenario.Envelope != nil && !*noEnvelope {
		series, err = appendEnvelope(series, scenario.Envelope)
		if err != nil {
			logger.Error("envelope failed", zap.Error(err))
			return err
		}
	}

	time := scenario.Grid.Times()
	if *out == "-" {
		err = exporter.WriteCSV(stdout, time, series)
	} else {
		err = exporter.WriteFile(*out, time, series)
	}
	if err != nil {
		logger.Error("failed to write output", zap.String("out", *out), zap.Error(err))
		return err
	}

	logger.Info("scenario generated",
		zap.String("scenario", *scenarioPath),
		zap.Int("series", len(series)),
		zap.Int("samples", scenario.Grid.Count),
	)
	return nil
}

func appendEnvelope(series []tsgen.Series, cfg *config.EnvelopeConfig) ([]tsgen.Series, error) {
	for _, s := range series {
		if s.Name != cfg.Series {
			continue
		}
		low, high, err := s.Envelope(cfg.DMin, cfg.DMax, cfg.Split, cfg.SplineBoundary())
		if err != nil {
			return nil, err
		}
		return append(series, low, high), nil
	}
	return nil, fmt.Errorf("envelope refers to unknown series: %s", cfg.Series)
}
