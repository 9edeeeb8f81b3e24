package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/vitals-sim/internal/config"
	"github.com/oshokin/vitals-sim/internal/domain/alarm"
	"github.com/oshokin/vitals-sim/internal/logger"
	"github.com/oshokin/vitals-sim/internal/repository/readings"
)

// Options controls a simulation run.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// SourceFile overrides the input CSV from the configuration.
	SourceFile string
	// Format overrides the report format from the configuration.
	Format string
	// LogLevel overrides the diagnostic log level from the configuration.
	LogLevel string
	// Output receives the report; defaults to os.Stdout.
	Output io.Writer
	// ErrOutput receives user-facing error notices; defaults to os.Stderr.
	ErrOutput io.Writer
}

var (
	// ErrSourceUnavailable indicates the input file could not be opened.
	ErrSourceUnavailable = errors.New("input source unavailable")
	// errUnknownLogLevel is returned for a log level zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Run loads settings, opens the readings stream and simulates it to completion.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "vitals-sim")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Command line values override the configuration file.
	if opts.SourceFile != "" {
		cfg.SourceFile = opts.SourceFile
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = config.Validate(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	level, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	logger.SetLevel(level)

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	errOutput := opts.ErrOutput
	if errOutput == nil {
		errOutput = os.Stderr
	}

	src, err := readings.Open(cfg.SourceFile)
	if err != nil {
		_, _ = fmt.Fprintf(errOutput, "[SYSTEM ERROR] Input file '%s' is missing.\nPlease verify the file location.\n", cfg.SourceFile)

		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	defer func() {
		_ = src.Close()
	}()

	ctx = logger.WithKV(ctx, "source", src.Path())

	logger.InfoKV(ctx, "Simulation started",
		"sample_period", cfg.SamplePeriod.String(),
		"display_every", cfg.DisplayEvery,
		"format", cfg.Format,
	)

	sim := New(cfg.SamplePeriod, cfg.DisplayEvery, newReporter(cfg.Format, output))

	summary, err := sim.Simulate(ctx, src)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	logger.InfoKV(ctx, "Simulation finished",
		"records", summary.Records,
		"displayed", summary.Displayed,
		"elapsed", summary.Elapsed.String(),
		"warning", summary.Tiers[alarm.Warning],
		"critical", summary.Tiers[alarm.Critical],
		"sensor_errors", summary.Tiers[alarm.Failure],
		"truncated", summary.Truncated,
	)

	return nil
}

// newReporter picks the reporter for a validated format.
//
//nolint:ireturn // Callers only need the Reporter behaviour.
func newReporter(format string, w io.Writer) Reporter {
	if format == config.FormatJSON {
		return NewJSONReporter(w)
	}

	return NewTextReporter(w)
}
