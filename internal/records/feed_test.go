package records

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gavelmatch/internal/logging"
)

func writeFeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}
	return path
}

func TestLoadVideosSkipsDefects(t *testing.T) {
	path := writeFeed(t, "videos.json", `[
		{"id": "vid-1", "title": "Oversight Hearing", "committee": "hsif00", "published": "2024-03-05"},
		{"id": "", "title": "No identifier", "committee": "hsif00"},
		{"id": "vid-2", "title": "", "committee": "hsif00"},
		{"id": "vid-3", "title": "Unknown date", "committee": "hsif00", "published": "last week"}
	]`)

	videos, stats, err := LoadVideos(path, logging.NewNop())
	if err != nil {
		t.Fatalf("LoadVideos: %v", err)
	}
	if stats.Accepted != 2 || stats.Skipped != 2 {
		t.Fatalf("stats = %+v, want accepted 2 skipped 2", stats)
	}
	if len(videos) != 2 {
		t.Fatalf("len(videos) = %d, want 2", len(videos))
	}
	if !videos[0].HasDate() {
		t.Error("vid-1 should have a resolved date")
	}
	if videos[1].HasDate() {
		t.Error("vid-3 unparseable date should be treated as unknown")
	}
}

func TestLoadVideosDateDay(t *testing.T) {
	path := writeFeed(t, "videos.json", `[
		{"id": "vid-1", "title": "Budget Hearing", "committee": "hsap00", "published": "2024-03-05T18:30:00Z"}
	]`)

	videos, _, err := LoadVideos(path, nil)
	if err != nil {
		t.Fatalf("LoadVideos: %v", err)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := videos[0].Day(); !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}

func TestLoadVideosMissingFile(t *testing.T) {
	if _, _, err := LoadVideos(filepath.Join(t.TempDir(), "absent.json"), nil); err == nil {
		t.Fatal("expected error for missing feed file")
	}
}

func TestLoadEventsSkipsDefects(t *testing.T) {
	path := writeFeed(t, "events.json", `[
		{"id": "115538", "committee": "hsif00", "chamber": "House", "date": "2024-03-05", "title": "Markup of H.R. 1234", "category": "Markup"},
		{"id": "115539", "committee": "hsif00", "chamber": "House", "date": "", "title": "No date"},
		{"id": "115540", "committee": "", "date": "2024-03-06", "title": "No committee"},
		{"id": "115541", "committee": "hsif00", "date": "not-a-date", "title": "Bad date"}
	]`)

	events, stats, err := LoadEvents(path, logging.NewNop())
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if stats.Accepted != 1 || stats.Skipped != 3 {
		t.Fatalf("stats = %+v, want accepted 1 skipped 3", stats)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Category != CategoryMarkup {
		t.Errorf("category = %q, want %q", events[0].Category, CategoryMarkup)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Markup", CategoryMarkup},
		{"markup session", CategoryMarkup},
		{"Hearing", CategoryRegularSession},
		{"Committee Meeting", CategoryRegularSession},
		{"Field Hearing", CategoryFieldEvent},
		{"", CategoryUnknown},
		{"Roundtable", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
