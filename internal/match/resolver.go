package match

import (
	"context"
	"fmt"
	"log/slog"

	"gavelmatch/internal/config"
	"gavelmatch/internal/logging"
	"gavelmatch/internal/records"
	"gavelmatch/internal/services/oracle"
	"gavelmatch/internal/verdicts"
)

// State names a position in the per-video resolution state machine.
type State string

const (
	StatePending   State = "pending"
	StateAccepted  State = "accepted"
	StateEscalated State = "escalated"
	StateRejected  State = "rejected"
)

// Oracle is the disambiguation surface the resolver escalates to. A nil
// oracle means escalated videos resolve unmatched.
type Oracle interface {
	Disambiguate(ctx context.Context, req oracle.Request) (oracle.Selection, error)
}

// Resolution is the outcome of resolving one video. Event is nil when the
// video stays unmatched. OracleErr records an escalation failure the caller
// may want to log; the resolution itself has already failed closed.
type Resolution struct {
	VideoID    string
	Event      *records.EventRecord
	Confidence float64
	Method     verdicts.Method
	Escalated  bool
	Reasons    []string
	OracleErr  error
}

// Resolver decides ACCEPT / ESCALATE / REJECT per video from ranked
// candidates. Safe for concurrent use.
type Resolver struct {
	cfg    config.Matching
	oracle Oracle
	logger *slog.Logger
}

// NewResolver constructs a resolver. oracleClient may be nil when the
// oracle is disabled.
func NewResolver(cfg config.Matching, oracleClient Oracle, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		cfg:    cfg,
		oracle: oracleClient,
		logger: logging.WithComponent(logger, "resolver"),
	}
}

// Resolve runs the state machine for one video over its ranked candidates.
// It never returns an error: every failure path collapses to an unmatched
// resolution so the caller can keep processing other videos.
func (r *Resolver) Resolve(ctx context.Context, video records.VideoRecord, candidates []Candidate) Resolution {
	if len(candidates) == 0 {
		return rejected(video, "no candidate events for committee "+video.Committee)
	}

	top := candidates[0]
	if top.Composite < r.cfg.MinimumFloor {
		return rejected(video, fmt.Sprintf("best composite %.2f below floor %.2f", top.Composite, r.cfg.MinimumFloor))
	}

	if len(candidates) == 1 {
		return r.accepted(video, top, fmt.Sprintf("single candidate with composite %.2f", top.Composite))
	}

	margin := top.Composite - candidates[1].Composite
	if top.Composite >= r.cfg.AcceptThreshold && margin >= r.cfg.MarginThreshold {
		return r.accepted(video, top,
			fmt.Sprintf("composite %.2f with margin %.2f over runner-up", top.Composite, margin))
	}

	return r.escalate(ctx, video, candidates)
}

func (r *Resolver) accepted(video records.VideoRecord, top Candidate, decision string) Resolution {
	event := top.Event
	return Resolution{
		VideoID:    video.ID,
		Event:      &event,
		Confidence: top.Composite,
		Method:     verdicts.MethodAlgorithmic,
		Reasons:    append(describeCandidate(video, top), decision),
	}
}

// escalate submits the top-K candidates to the oracle. Any oracle failure,
// including a contract violation, fails closed to unmatched.
func (r *Resolver) escalate(ctx context.Context, video records.VideoRecord, candidates []Candidate) Resolution {
	if r.oracle == nil {
		res := rejected(video, "ambiguous candidates and oracle disabled")
		res.Escalated = true
		return res
	}

	topK := candidates
	if k := r.cfg.EscalationTopK; k > 0 && len(topK) > k {
		topK = topK[:k]
	}

	req := oracle.Request{
		VideoTitle: video.Title,
		Candidates: make([]oracle.CandidateSummary, 0, len(topK)),
	}
	if video.HasDate() {
		req.VideoDate = video.Day().Format(dayFormat)
	}
	for _, candidate := range topK {
		req.Candidates = append(req.Candidates, oracle.CandidateSummary{
			EventID:  candidate.Event.ID,
			Title:    candidate.Event.Title,
			Date:     candidate.Event.Day().Format(dayFormat),
			Category: string(candidate.Event.Category),
		})
	}

	selection, err := r.oracle.Disambiguate(ctx, req)
	if err != nil {
		r.logger.Warn("oracle escalation failed",
			logging.String("video_id", video.ID),
			logging.Int("candidates", len(topK)),
			logging.Error(err))
		res := rejected(video, "oracle escalation failed; left unmatched")
		res.Escalated = true
		res.OracleErr = err
		return res
	}

	if selection.None {
		res := rejected(video, fmt.Sprintf("oracle declared none of %d candidates applicable", len(topK)))
		res.Escalated = true
		return res
	}

	chosen := topK[selection.Index]
	event := chosen.Event
	reasons := append(describeCandidate(video, chosen),
		fmt.Sprintf("oracle selected candidate %d (event %s)", selection.Index, event.ID))
	return Resolution{
		VideoID:    video.ID,
		Event:      &event,
		Confidence: r.cfg.OracleTrust,
		Method:     verdicts.MethodOracleAssisted,
		Escalated:  true,
		Reasons:    reasons,
	}
}

func rejected(video records.VideoRecord, reason string) Resolution {
	return Resolution{
		VideoID: video.ID,
		Method:  verdicts.MethodUnmatched,
		Reasons: []string{reason},
	}
}

// describeCandidate renders the component signals behind an accepted match.
func describeCandidate(video records.VideoRecord, candidate Candidate) []string {
	reasons := []string{fmt.Sprintf("title similarity %.2f", candidate.TitleScore)}
	switch {
	case !video.HasDate():
		reasons = append(reasons, "video date unknown")
	case DaysApart(video.Day(), candidate.Event.Day()) == 0:
		reasons = append(reasons, "exact date match")
	default:
		reasons = append(reasons, fmt.Sprintf("event %d days from publish date",
			DaysApart(video.Day(), candidate.Event.Day())))
	}
	if candidate.TypeScore == 1.0 {
		reasons = append(reasons, "category agreement: "+string(candidate.Event.Category))
	}
	return reasons
}
