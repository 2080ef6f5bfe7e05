package match

import (
	"testing"

	"gavelmatch/internal/config"
	"gavelmatch/internal/records"
)

func TestScorerCompositeInUnitInterval(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	set := CandidateSet{Events: []records.EventRecord{
		event("100", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
		event("101", "Hearing on Broadband", "hsju", "2024-03-07", records.CategoryRegularSession),
	}}

	candidates := scorer.Score(video("v1", "Full Committee Markup", "hsju", "2024-03-05"), set)
	for _, candidate := range candidates {
		if candidate.Composite < 0 || candidate.Composite > 1 {
			t.Errorf("composite %v for event %s outside [0,1]", candidate.Composite, candidate.Event.ID)
		}
	}
}

func TestScorerRanksDescending(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	set := CandidateSet{Events: []records.EventRecord{
		event("100", "Hearing on Broadband", "hsju", "2024-03-08", records.CategoryRegularSession),
		event("101", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
	}}

	candidates := scorer.Score(video("v1", "Markup of H.R. 1234", "hsju", "2024-03-05"), set)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Event.ID != "101" {
		t.Fatalf("expected exact match ranked first, got %s", candidates[0].Event.ID)
	}
	if candidates[0].Composite < candidates[1].Composite {
		t.Fatal("candidates not ranked descending")
	}
}

func TestScorerDeterministicAcrossRuns(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	set := CandidateSet{Events: []records.EventRecord{
		event("103", "Markup of H.R. 5", "hsju", "2024-03-04", records.CategoryMarkup),
		event("101", "Markup of H.R. 3", "hsju", "2024-03-06", records.CategoryMarkup),
		event("102", "Markup of H.R. 4", "hsju", "2024-03-04", records.CategoryMarkup),
	}}
	v := video("v1", "Full Committee Markup", "hsju", "2024-03-05")

	first := scorer.Score(v, set)
	second := scorer.Score(v, set)
	if len(first) != len(second) {
		t.Fatalf("ranking length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Event.ID != second[i].Event.ID {
			t.Fatalf("ranking differs at %d: %s vs %s", i, first[i].Event.ID, second[i].Event.ID)
		}
		if first[i].Composite != second[i].Composite {
			t.Fatalf("composite differs at %d", i)
		}
	}
}

func TestScorerTieBreaksOnLowestEventID(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	// Identical titles, dates, and categories produce identical composites.
	set := CandidateSet{Events: []records.EventRecord{
		event("115540", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
		event("115538", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
		event("115539", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
	}}

	candidates := scorer.Score(video("v1", "Markup of H.R. 1234", "hsju", "2024-03-05"), set)
	want := []string{"115538", "115539", "115540"}
	for i, id := range want {
		if candidates[i].Event.ID != id {
			t.Fatalf("tie-break order wrong at %d: got %s, want %s", i, candidates[i].Event.ID, id)
		}
	}
}

func TestScorerDateUnboundedZeroesDateComponent(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	set := CandidateSet{
		Events: []records.EventRecord{
			event("100", "Markup of H.R. 1234", "hsju", "2024-03-05", records.CategoryMarkup),
		},
		DateUnbounded: true,
	}

	candidates := scorer.Score(video("v1", "Markup of H.R. 1234", "hsju", ""), set)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].DateScore != 0 {
		t.Fatalf("expected zero date score, got %v", candidates[0].DateScore)
	}
}

func TestScorerEmptySet(t *testing.T) {
	scorer := NewScorer(config.Default().Matching)
	if got := scorer.Score(video("v1", "Markup", "hsju", "2024-03-05"), CandidateSet{}); got != nil {
		t.Fatalf("expected nil for empty set, got %#v", got)
	}
}
