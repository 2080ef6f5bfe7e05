package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	videosPath string
	eventsPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
state_dir = %q
export_dir = %q
log_dir = %q

[oracle]
enabled = false

[logging]
format = "json"
level = "warn"
`,
		filepath.Join(base, "state"),
		filepath.Join(base, "exports"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		videosPath: filepath.Join(base, "videos.json"),
		eventsPath: filepath.Join(base, "events.json"),
	}
	env.writeFeeds(t)
	return env
}

// writeFeeds seeds one unambiguous video and one dateless ambiguous video.
// With the oracle disabled the first resolves algorithmically and the second
// stays unmatched.
func (env *cliTestEnv) writeFeeds(t *testing.T) {
	t.Helper()

	videos := `[
  {"id": "v-1", "title": "Markup of H.R. 1234", "committee": "hsag", "published": "2024-03-05"},
  {"id": "v-2", "title": "Hearing on Farm Bill Implementation", "committee": "hsag", "published": ""}
]`
	events := `[
  {"id": "e-100", "committee": "hsag", "chamber": "house", "date": "2024-03-05", "title": "Markup of H.R. 1234", "category": "markup"},
  {"id": "e-101", "committee": "hsag", "chamber": "house", "date": "2024-03-04", "title": "Hearing on Farm Bill Implementation", "category": "hearing"},
  {"id": "e-102", "committee": "hsag", "chamber": "house", "date": "2024-03-06", "title": "Hearing on Farm Bill Implementation Part 2", "category": "hearing"}
]`
	if err := os.WriteFile(env.videosPath, []byte(videos), 0o644); err != nil {
		t.Fatalf("write video feed: %v", err)
	}
	if err := os.WriteFile(env.eventsPath, []byte(events), 0o644); err != nil {
		t.Fatalf("write event feed: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got %q", want, output)
	}
}

func TestCLIMatchVerdictsAndExport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath,
		"match", "--videos", env.videosPath, "--events", env.eventsPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Matched")
	requireContains(t, out, "Unmatched")

	out, _, err = runCLI(t, env.configPath, "verdicts", "list", "--json")
	if err != nil {
		t.Fatalf("verdicts list --json: %v", err)
	}
	var views []verdictJSON
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("parse verdicts JSON: %v\noutput: %s", err, out)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 verdicts, got %d", len(views))
	}
	byVideo := make(map[string]verdictJSON, len(views))
	for _, view := range views {
		byVideo[view.VideoID] = view
	}
	if got := byVideo["v-1"]; got.Method != "algorithmic" || got.EventID != "e-100" {
		t.Fatalf("unexpected v-1 verdict: %+v", got)
	}
	if got := byVideo["v-2"]; got.Method != "unmatched" || got.EventID != "" {
		t.Fatalf("unexpected v-2 verdict: %+v", got)
	}

	out, _, err = runCLI(t, env.configPath, "verdicts", "list", "--method", "unmatched")
	if err != nil {
		t.Fatalf("verdicts list --method: %v", err)
	}
	requireContains(t, out, "v-2")
	if strings.Contains(out, "e-100") {
		t.Fatalf("unmatched filter leaked matched verdicts: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "verdicts", "show", "v-1")
	if err != nil {
		t.Fatalf("verdicts show: %v", err)
	}
	requireContains(t, out, `"event_id": "e-100"`)

	exportPath := filepath.Join(env.baseDir, "out", "matches.json")
	out, _, err = runCLI(t, env.configPath, "export", "--out", exportPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Exported 2 verdicts (1 matched)")
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), `"v-1"`)
	requireContains(t, string(data), `"e-100"`)

	out, _, err = runCLI(t, env.configPath, "verdicts", "clear", "--unmatched")
	if err != nil {
		t.Fatalf("verdicts clear --unmatched: %v", err)
	}
	requireContains(t, out, "Removed 1 verdicts")

	out, _, err = runCLI(t, env.configPath, "verdicts", "clear")
	if err != nil {
		t.Fatalf("verdicts clear: %v", err)
	}
	requireContains(t, out, "Removed 1 verdicts")
}

func TestCLIMatchRerunReusesVerdicts(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath,
		"match", "--videos", env.videosPath, "--events", env.eventsPath); err != nil {
		t.Fatalf("first match: %v", err)
	}

	out, _, err := runCLI(t, env.configPath,
		"match", "--videos", env.videosPath, "--events", env.eventsPath)
	if err != nil {
		t.Fatalf("second match: %v", err)
	}
	requireContains(t, out, "Reused\t2")
}

func TestCLIVerdictsListRejectsUnknownMethod(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "verdicts", "list", "--method", "psychic")
	if err == nil || !strings.Contains(err.Error(), "unknown method") {
		t.Fatalf("expected unknown method error, got %v", err)
	}
}

func TestCLIExportRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "export", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported export format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestCLIOracleHealthDisabled(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "oracle", "health")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected disabled oracle error, got %v", err)
	}
}
