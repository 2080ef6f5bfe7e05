package records

import (
	"strings"
	"time"
)

// Category classifies an official event record.
type Category string

const (
	CategoryRegularSession Category = "regular-session"
	CategoryMarkup         Category = "markup"
	CategoryFieldEvent     Category = "field-event"
	CategoryUnknown        Category = "unknown"
)

// ParseCategory maps the registry's free-text event type onto the enum.
// Unrecognized values become CategoryUnknown rather than an error.
func ParseCategory(value string) Category {
	switch normalized := strings.ToLower(strings.TrimSpace(value)); {
	case normalized == "":
		return CategoryUnknown
	case strings.Contains(normalized, "markup"):
		return CategoryMarkup
	case strings.Contains(normalized, "field"):
		return CategoryFieldEvent
	case strings.Contains(normalized, "hearing"),
		strings.Contains(normalized, "meeting"),
		strings.Contains(normalized, "session"):
		return CategoryRegularSession
	default:
		return CategoryUnknown
	}
}

// EventRecord is one official event from the authoritative registry.
// Dates have day granularity. Immutable once ingested.
type EventRecord struct {
	ID        string    `json:"id"`
	Committee string    `json:"committee"`
	Chamber   string    `json:"chamber,omitempty"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	SubUnit   string    `json:"sub_unit,omitempty"`
}

// Day returns the event date truncated to day granularity in UTC.
func (e EventRecord) Day() time.Time {
	t := e.Date.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate reports the first defect that makes the record unusable.
func (e EventRecord) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errMissingField("event", "id")
	}
	if strings.TrimSpace(e.Committee) == "" {
		return errMissingField("event", "committee")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errMissingField("event", "title")
	}
	if e.Date.IsZero() {
		return errMissingField("event", "date")
	}
	return nil
}
