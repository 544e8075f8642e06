// Package testsupport provides shared helpers for package tests: test
// configurations, file fixtures, and stub engine binaries.
package testsupport

import (
	"testing"

	"mediaconv/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ScanDir = base
	cfg.Paths.LogDir = t.TempDir()

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithHistoryDisabled turns off conversion history on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// WithFFmpeg overrides the engine binary on the test config.
func WithFFmpeg(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Engine.FFmpegBinary = path
	}
}
