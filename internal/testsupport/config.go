// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"gavelmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The oracle is disabled by default; tests that exercise escalation enable it
// and point BaseURL at a local httptest server.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Oracle.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithOracle enables the oracle against the supplied endpoint.
func WithOracle(baseURL, apiKey string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Oracle.Enabled = true
		cfg.Oracle.BaseURL = baseURL
		cfg.Oracle.APIKey = apiKey
	}
}
