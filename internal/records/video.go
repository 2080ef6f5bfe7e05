package records

import (
	"strings"
	"time"
)

// VideoRecord is one recording published by a committee channel. The
// published date is nil when the upstream resolver could not pin an exact
// day. Immutable once ingested.
type VideoRecord struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Committee string     `json:"committee"`
	Published *time.Time `json:"published,omitempty"`
	SourceURL string     `json:"source_url,omitempty"`
}

// HasDate reports whether the video's publish date was resolved.
func (v VideoRecord) HasDate() bool {
	return v.Published != nil && !v.Published.IsZero()
}

// Day returns the publish date truncated to day granularity in UTC.
// Only meaningful when HasDate is true.
func (v VideoRecord) Day() time.Time {
	if !v.HasDate() {
		return time.Time{}
	}
	t := v.Published.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate reports the first defect that makes the record unusable.
func (v VideoRecord) Validate() error {
	if strings.TrimSpace(v.ID) == "" {
		return errMissingField("video", "id")
	}
	if strings.TrimSpace(v.Title) == "" {
		return errMissingField("video", "title")
	}
	if strings.TrimSpace(v.Committee) == "" {
		return errMissingField("video", "committee")
	}
	return nil
}
