package match

import (
	"sort"

	"gavelmatch/internal/config"
	"gavelmatch/internal/records"
)

// Candidate is one scored (video, event) pairing. Transient: recomputed
// every run, never persisted.
type Candidate struct {
	Event      records.EventRecord
	TitleScore float64
	DateScore  float64
	TypeScore  float64
	Composite  float64
}

// Scorer combines the three similarity primitives into one composite score
// per candidate and ranks candidates. Stateless and safe for concurrent use.
type Scorer struct {
	cfg config.Matching
}

// NewScorer constructs a scorer over validated matching configuration.
func NewScorer(cfg config.Matching) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes component and composite scores for every event in the set
// and returns candidates ranked descending by composite. Ties break
// deterministically on the lowest event identifier. Date-unbounded sets
// score 0 on the date component.
func (s *Scorer) Score(video records.VideoRecord, set CandidateSet) []Candidate {
	if len(set.Events) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(set.Events))
	for _, event := range set.Events {
		candidate := Candidate{
			Event:      event,
			TitleScore: TitleScore(video.Title, event.Title),
			TypeScore:  TypeScore(video.Title, event.Category),
		}
		if !set.DateUnbounded && video.HasDate() {
			candidate.DateScore = DateScore(video.Day(), event.Day(), s.cfg.DateWindowDays)
		}
		candidate.Composite = s.cfg.TitleWeight*candidate.TitleScore +
			s.cfg.DateWeight*candidate.DateScore +
			s.cfg.TypeWeight*candidate.TypeScore
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Composite != candidates[j].Composite {
			return candidates[i].Composite > candidates[j].Composite
		}
		return eventIDLess(candidates[i].Event.ID, candidates[j].Event.ID)
	})
	return candidates
}
