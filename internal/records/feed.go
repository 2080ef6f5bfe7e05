package records

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gavelmatch/internal/logging"
)

// videoFeedEntry is the wire shape produced by the channel ingestion
// collaborator. The date may be absent or null when the scraper only saw an
// approximate "N days ago" timestamp it could not resolve.
type videoFeedEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Committee string `json:"committee"`
	Published string `json:"published"`
	SourceURL string `json:"source_url"`
}

// eventFeedEntry is the wire shape produced by the registry fetch collaborator.
type eventFeedEntry struct {
	ID        string `json:"id"`
	Committee string `json:"committee"`
	Chamber   string `json:"chamber"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	SubUnit   string `json:"sub_unit"`
}

// FeedStats counts accepted and skipped records for one feed load.
type FeedStats struct {
	Accepted int
	Skipped  int
}

// LoadVideos reads a video feed file. Records with input defects are skipped
// with a warning; a defective record never fails the load.
func LoadVideos(path string, logger *slog.Logger) ([]VideoRecord, FeedStats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	var stats FeedStats

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("read video feed: %w", err)
	}
	var entries []videoFeedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, stats, fmt.Errorf("parse video feed: %w", err)
	}

	videos := make([]VideoRecord, 0, len(entries))
	for idx, entry := range entries {
		video := VideoRecord{
			ID:        strings.TrimSpace(entry.ID),
			Title:     strings.TrimSpace(entry.Title),
			Committee: strings.TrimSpace(entry.Committee),
			SourceURL: strings.TrimSpace(entry.SourceURL),
		}
		if published := strings.TrimSpace(entry.Published); published != "" {
			parsed, err := parseFeedDate(published)
			if err != nil {
				logger.Warn("video has unparseable publish date; treating as unknown",
					logging.String("video_id", video.ID),
					logging.String("published", published),
					logging.Error(err))
			} else {
				video.Published = &parsed
			}
		}
		if err := video.Validate(); err != nil {
			stats.Skipped++
			logger.Warn("skipping defective video record",
				logging.Int("index", idx),
				logging.String("video_id", entry.ID),
				logging.Error(err))
			continue
		}
		stats.Accepted++
		videos = append(videos, video)
	}
	return videos, stats, nil
}

// LoadEvents reads an event feed file, applying the same skip-on-defect rule
// as LoadVideos.
func LoadEvents(path string, logger *slog.Logger) ([]EventRecord, FeedStats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	var stats FeedStats

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("read event feed: %w", err)
	}
	var entries []eventFeedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, stats, fmt.Errorf("parse event feed: %w", err)
	}

	events := make([]EventRecord, 0, len(entries))
	for idx, entry := range entries {
		event := EventRecord{
			ID:        strings.TrimSpace(entry.ID),
			Committee: strings.TrimSpace(entry.Committee),
			Chamber:   strings.TrimSpace(entry.Chamber),
			Title:     strings.TrimSpace(entry.Title),
			Category:  ParseCategory(entry.Category),
			SubUnit:   strings.TrimSpace(entry.SubUnit),
		}
		if date := strings.TrimSpace(entry.Date); date != "" {
			parsed, err := parseFeedDate(date)
			if err != nil {
				stats.Skipped++
				logger.Warn("skipping event with unparseable date",
					logging.Int("index", idx),
					logging.String("event_id", entry.ID),
					logging.String("date", date),
					logging.Error(err))
				continue
			}
			event.Date = parsed
		}
		if err := event.Validate(); err != nil {
			stats.Skipped++
			logger.Warn("skipping defective event record",
				logging.Int("index", idx),
				logging.String("event_id", entry.ID),
				logging.Error(err))
			continue
		}
		stats.Accepted++
		events = append(events, event)
	}
	return events, stats, nil
}

func parseFeedDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func errMissingField(kind, field string) error {
	return fmt.Errorf("%s record missing %s", kind, field)
}
