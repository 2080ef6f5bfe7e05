package match

import (
	"time"

	"gavelmatch/internal/records"
	"gavelmatch/internal/textutil"
)

// TitleScore returns the normalized title similarity between a video title
// and an event title, in [0, 1].
func TitleScore(videoTitle, eventTitle string) float64 {
	return textutil.TitleSimilarity(videoTitle, eventTitle)
}

// DaysApart returns the absolute day distance between two day-granular dates.
func DaysApart(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

// DateScore decays linearly from 1.0 at zero day-distance to 0 at the window
// edge. Distances beyond the window score 0; the candidate generator excludes
// those pairs before scoring.
func DateScore(videoDay, eventDay time.Time, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	distance := DaysApart(videoDay, eventDay)
	if distance > windowDays {
		return 0
	}
	return 1 - float64(distance)/float64(windowDays)
}

// TypeScore compares the category implied by the video's title against the
// event's category: 1.0 on agreement, 0.5 when either side is unknown, 0.0
// on an explicit mismatch.
func TypeScore(videoTitle string, eventCategory records.Category) float64 {
	videoCategory := records.ParseCategory(videoTitle)
	if videoCategory == records.CategoryUnknown || eventCategory == records.CategoryUnknown {
		return 0.5
	}
	if videoCategory == eventCategory {
		return 1.0
	}
	return 0.0
}
