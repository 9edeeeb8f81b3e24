package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the simulation parameters shared by the vitals-sim commands.
type Config struct {
	// SourceFile is the path to the CSV stream of heart_rate,spo2 pairs.
	SourceFile string `yaml:"source_file"`
	// SamplePeriod is how far the simulated clock advances per record.
	SamplePeriod time.Duration `yaml:"sample_period"`
	// DisplayEvery forces a report block for every N-th record.
	DisplayEvery int `yaml:"display_every"`
	// Format selects the report encoding written to stdout.
	Format string `yaml:"format"`
	// LogLevel is the minimum zap level for diagnostic logs.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for simulation settings.
	DefaultConfigFilename = "vitals-sim.yaml"

	// DefaultSourceFile is the input stream the firmware bench reads.
	DefaultSourceFile = "patient_data.csv"

	// DefaultSamplePeriod matches the 1 kHz sampling of the sensor front end.
	DefaultSamplePeriod = time.Millisecond

	// DefaultDisplayEvery prints one block per simulated second.
	DefaultDisplayEvery = 1000

	// DefaultLogLevel is the default diagnostic log level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidSamplePeriod is returned when the simulated clock would not advance.
	errInvalidSamplePeriod = errors.New("sample period must be positive")
	// errInvalidDisplayEvery is returned for a negative display interval.
	errInvalidDisplayEvery = errors.New("display interval must not be negative")
	// errUnknownFormat is returned for an unsupported report format.
	errUnknownFormat = errors.New("unknown report format")
)

// Default returns the settings the firmware bench runs with.
func Default() *Config {
	return &Config{
		SourceFile:   DefaultSourceFile,
		SamplePeriod: DefaultSamplePeriod,
		DisplayEvery: DefaultDisplayEvery,
		Format:       FormatText,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file at the default location yields Default; a missing file
// that was asked for explicitly is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills in defaults for empty fields and rejects invalid ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.SourceFile == "" {
		cfg.SourceFile = DefaultSourceFile
	}

	// Zero means "not set"; a negative period would run the clock backwards.
	switch {
	case cfg.SamplePeriod == 0:
		cfg.SamplePeriod = DefaultSamplePeriod
	case cfg.SamplePeriod < 0:
		return fmt.Errorf("%w: %s", errInvalidSamplePeriod, cfg.SamplePeriod)
	}

	// Zero disables the periodic block; only the first record and alarms are shown.
	if cfg.DisplayEvery < 0 {
		return fmt.Errorf("%w: %d", errInvalidDisplayEvery, cfg.DisplayEvery)
	}

	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, cfg.Format)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return nil
}
