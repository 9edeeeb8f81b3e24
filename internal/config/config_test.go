package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate checks defaults filling and rejection of invalid values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings get defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	assert.Equal(t, DefaultSourceFile, cfg.SourceFile)
	assert.Equal(t, DefaultSamplePeriod, cfg.SamplePeriod)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// Negative period.
	cfg = &Config{SamplePeriod: -time.Millisecond}
	require.ErrorIs(t, Validate(cfg), errInvalidSamplePeriod)

	// Negative display interval.
	cfg = &Config{DisplayEvery: -1}
	require.ErrorIs(t, Validate(cfg), errInvalidDisplayEvery)

	// Unknown format.
	cfg = &Config{Format: "xml"}
	require.ErrorIs(t, Validate(cfg), errUnknownFormat)

	cfg = &Config{Format: FormatJSON}
	require.NoError(t, Validate(cfg))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		SourceFile:   "vitals.csv",
		SamplePeriod: 4 * time.Millisecond,
		DisplayEvery: 250,
		Format:       FormatJSON,
		LogLevel:     "debug",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoad_PartialYAML verifies that omitted keys keep their defaults.
func TestLoad_PartialYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_file: ward7.csv\nsample_period: 2ms\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ward7.csv", cfg.SourceFile)
	assert.Equal(t, 2*time.Millisecond, cfg.SamplePeriod)
	assert.Equal(t, DefaultDisplayEvery, cfg.DisplayEvery)
	assert.Equal(t, FormatText, cfg.Format)
}

// TestLoad_Errors covers missing explicit files and malformed YAML.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sample_period: [oops"), 0o600))

	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("format: xml\n"), 0o600))

	_, err = Load(invalid)
	require.ErrorIs(t, err, errUnknownFormat)
}

// TestSave_NilConfig asserts that a nil configuration is rejected.
func TestSave_NilConfig(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil), errConfigIsNotSet)
}

// TestRegisterLayout pins the hardware constants the firmware relies on.
func TestRegisterLayout(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1000, TimerAutoReload)
	require.Equal(t, 200, MaxHeartRateBPM)
	require.Equal(t, 10, DutyScale)
	// Warning and critical patterns are complementary halves of the port.
	require.Equal(t, ODRFailure, ODRWarning|ODRCritical)
	require.Zero(t, ODRWarning&ODRCritical)
}
