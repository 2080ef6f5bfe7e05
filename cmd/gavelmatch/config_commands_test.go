package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitCommand(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "config.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, "", "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing-file error, got %v", err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowRedactsAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ORACLE_API_KEY", "sk-test-secret")

	out, _, err := runCLI(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "<redacted>")
	if strings.Contains(out, "sk-test-secret") {
		t.Fatalf("config show leaked the API key: %q", out)
	}
}
