package match

import (
	"sort"
	"strconv"
	"strings"

	"gavelmatch/internal/records"
)

// EventIndex groups the event feed by normalized committee code so candidate
// generation is a map lookup instead of a full scan per video.
type EventIndex struct {
	byCommittee map[string][]records.EventRecord
}

// NewEventIndex builds an index over the full event collection. Events within
// a committee are kept sorted by identifier for reproducible iteration.
func NewEventIndex(events []records.EventRecord) *EventIndex {
	index := &EventIndex{byCommittee: make(map[string][]records.EventRecord)}
	for _, event := range events {
		code := normalizeCommittee(event.Committee)
		if code == "" {
			continue
		}
		index.byCommittee[code] = append(index.byCommittee[code], event)
	}
	for code := range index.byCommittee {
		bucket := index.byCommittee[code]
		sort.Slice(bucket, func(i, j int) bool {
			return eventIDLess(bucket[i].ID, bucket[j].ID)
		})
	}
	return index
}

// Committee returns the events registered under a committee code.
func (ix *EventIndex) Committee(code string) []records.EventRecord {
	if ix == nil {
		return nil
	}
	return ix.byCommittee[normalizeCommittee(code)]
}

// CandidateSet is the bounded set of events plausibly corresponding to one
// video. DateUnbounded marks sets generated without a date filter because
// the video's publish date is unknown; such matches are low-confidence
// eligible and their date component scores 0.
type CandidateSet struct {
	Events        []records.EventRecord
	DateUnbounded bool
}

// GenerateCandidates produces the candidate set for one video: same
// committee code, and event date within the window of the video's resolved
// date. When the video has no date the committee's full date range is
// offered. An empty result is valid.
func GenerateCandidates(video records.VideoRecord, index *EventIndex, windowDays int) CandidateSet {
	bucket := index.Committee(video.Committee)
	if len(bucket) == 0 {
		return CandidateSet{}
	}

	if !video.HasDate() {
		events := make([]records.EventRecord, len(bucket))
		copy(events, bucket)
		return CandidateSet{Events: events, DateUnbounded: true}
	}

	videoDay := video.Day()
	var events []records.EventRecord
	for _, event := range bucket {
		if DaysApart(videoDay, event.Day()) <= windowDays {
			events = append(events, event)
		}
	}
	return CandidateSet{Events: events}
}

func normalizeCommittee(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// eventIDLess orders event identifiers numerically when both parse as
// integers, lexicographically otherwise. Registry identifiers are numeric
// strings of varying width.
func eventIDLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
