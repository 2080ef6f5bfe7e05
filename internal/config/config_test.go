package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gavelmatch/internal/config"
)

func TestLoadDefaultConfigUsesEnvOracleKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("ORACLE_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "gavelmatch", "state")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Oracle.APIKey != "test-key" {
		t.Fatalf("expected oracle key from env, got %q", cfg.Oracle.APIKey)
	}
	if cfg.Oracle.BaseURL != config.Default().Oracle.BaseURL {
		t.Fatalf("unexpected oracle base url: %q", cfg.Oracle.BaseURL)
	}
	if cfg.Matching.AcceptThreshold != 0.85 {
		t.Fatalf("unexpected accept threshold: %v", cfg.Matching.AcceptThreshold)
	}
	if cfg.Engine.Workers != 4 {
		t.Fatalf("unexpected worker default: %d", cfg.Engine.Workers)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
}

func TestLoadParsesExplicitFile(t *testing.T) {
	t.Setenv("ORACLE_API_KEY", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
state_dir = "` + filepath.Join(dir, "state") + `"

[matching]
title_weight = 0.6
date_weight = 0.3
type_weight = 0.1
accept_threshold = 0.9

[oracle]
enabled = false

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected to load %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Matching.TitleWeight != 0.6 {
		t.Fatalf("unexpected title weight: %v", cfg.Matching.TitleWeight)
	}
	if cfg.Matching.AcceptThreshold != 0.9 {
		t.Fatalf("unexpected accept threshold: %v", cfg.Matching.AcceptThreshold)
	}
	if cfg.Oracle.Enabled {
		t.Fatal("expected oracle disabled")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := config.Default()
	cfg.Oracle.Enabled = false
	cfg.Matching.TitleWeight = 0.9
	cfg.Matching.DateWeight = 0.9
	cfg.Matching.TypeWeight = 0.1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected weight-sum validation error")
	}
	if !strings.Contains(err.Error(), "sum to 1") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	cfg := config.Default()
	cfg.Oracle.Enabled = false
	cfg.Matching.TitleWeight = -0.1
	cfg.Matching.DateWeight = 0.95
	cfg.Matching.TypeWeight = 0.15

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected non-negative weight validation error")
	}
}

func TestValidateRequiresOracleKeyWhenEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Oracle.Enabled = true
	cfg.Oracle.APIKey = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected oracle key validation error")
	}
	if !strings.Contains(err.Error(), "oracle.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsFloorAboveAccept(t *testing.T) {
	cfg := config.Default()
	cfg.Oracle.Enabled = false
	cfg.Matching.MinimumFloor = 0.95

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected floor/accept ordering validation error")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[matching]") {
		t.Fatal("sample config missing matching section")
	}
}
