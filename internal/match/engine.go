package match

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"gavelmatch/internal/config"
	"gavelmatch/internal/logging"
	"gavelmatch/internal/records"
	"gavelmatch/internal/verdicts"
)

// Summary aggregates the outcome of one engine run.
type Summary struct {
	RunID          string
	Videos         int
	Algorithmic    int
	OracleAssisted int
	Unmatched      int
	Reused         int
	Escalated      int
	StoreFailures  int
	Elapsed        time.Duration
}

// Matched returns the number of videos resolved to an event.
func (s Summary) Matched() int {
	return s.Algorithmic + s.OracleAssisted
}

// Failed reports whether any verdict could not be durably saved. The CLI
// maps this to a non-zero exit status.
func (s Summary) Failed() bool {
	return s.StoreFailures > 0
}

// Engine evaluates the full video collection against the event collection,
// distributing videos across a worker pool. The verdict store is consulted
// before any scoring so unchanged videos are reused without recomputation
// or oracle calls.
type Engine struct {
	cfg      *config.Config
	store    *verdicts.Store
	scorer   *Scorer
	resolver *Resolver
	logger   *slog.Logger
	runID    string
}

// NewEngine constructs an engine. oracleClient may be nil when the oracle
// is disabled; escalated videos then resolve unmatched.
func NewEngine(cfg *config.Config, store *verdicts.Store, oracleClient Oracle, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		cfg:      cfg,
		store:    store,
		scorer:   NewScorer(cfg.Matching),
		resolver: NewResolver(cfg.Matching, oracleClient, logger),
		logger:   logging.WithComponent(logger, "engine"),
		runID:    uuid.NewString(),
	}
}

// RunID returns the identifier stamped on verdicts written by this engine.
func (e *Engine) RunID() string {
	return e.runID
}

// Run matches every video against the event collection and persists one
// verdict per video. force skips fingerprint reuse and recomputes
// everything. Cancellation stops the distribution of further videos;
// verdicts already written stay valid for the next run.
func (e *Engine) Run(ctx context.Context, videos []records.VideoRecord, events []records.EventRecord, force bool) (Summary, error) {
	start := time.Now()
	summary := Summary{RunID: e.runID, Videos: len(videos)}
	index := NewEventIndex(events)

	workers := e.cfg.Engine.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(videos) {
		workers = len(videos)
	}

	e.logger.Info("matching run started",
		logging.String("run_id", e.runID),
		logging.Int("videos", len(videos)),
		logging.Int("events", len(events)),
		logging.Int("workers", workers),
		logging.Bool("force", force))

	jobs := make(chan records.VideoRecord)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for video := range jobs {
				outcome := e.evaluate(ctx, video, index, force)
				mu.Lock()
				summary.apply(outcome)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, video := range videos {
		select {
		case jobs <- video:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	summary.Elapsed = time.Since(start)
	e.logger.Info("matching run finished",
		logging.String("run_id", e.runID),
		logging.Int("matched", summary.Matched()),
		logging.Int("oracle_assisted", summary.OracleAssisted),
		logging.Int("unmatched", summary.Unmatched),
		logging.Int("reused", summary.Reused),
		logging.Int("store_failures", summary.StoreFailures),
		logging.Duration("elapsed", summary.Elapsed))

	return summary, ctx.Err()
}

// outcome is the per-video result folded into the run summary.
type outcome struct {
	method       verdicts.Method
	reused       bool
	escalated    bool
	storeFailure bool
}

func (s *Summary) apply(o outcome) {
	switch o.method {
	case verdicts.MethodAlgorithmic:
		s.Algorithmic++
	case verdicts.MethodOracleAssisted:
		s.OracleAssisted++
	case verdicts.MethodUnmatched:
		s.Unmatched++
	}
	if o.reused {
		s.Reused++
	}
	if o.escalated {
		s.Escalated++
	}
	if o.storeFailure {
		s.StoreFailures++
	}
}

func (e *Engine) evaluate(ctx context.Context, video records.VideoRecord, index *EventIndex, force bool) outcome {
	set := GenerateCandidates(video, index, e.cfg.Matching.DateWindowDays)
	fingerprint := Fingerprint(video, set.Events)

	if !force {
		stored, err := e.store.GetByVideo(ctx, video.ID)
		if err != nil {
			e.logger.Warn("verdict lookup failed",
				logging.String("video_id", video.ID),
				logging.Error(err))
		} else if stored != nil && stored.Fingerprint == fingerprint {
			e.logger.Debug("verdict reused",
				logging.String("video_id", video.ID),
				logging.String("method", string(stored.Method)))
			return outcome{method: stored.Method, reused: true}
		}
	}

	candidates := e.scorer.Score(video, set)
	resolution := e.resolver.Resolve(ctx, video, candidates)

	verdict := &verdicts.Verdict{
		VideoID:     video.ID,
		Confidence:  resolution.Confidence,
		Method:      resolution.Method,
		Fingerprint: fingerprint,
		Reasons:     resolution.Reasons,
		RunID:       e.runID,
	}
	if resolution.Event != nil {
		verdict.EventID = resolution.Event.ID
	}

	result := outcome{method: resolution.Method, escalated: resolution.Escalated}
	if err := e.store.Put(ctx, verdict); err != nil {
		e.logger.Error("verdict not durably saved",
			logging.String("video_id", video.ID),
			logging.Error(err))
		result.storeFailure = true
		return result
	}

	e.logger.Debug("verdict written",
		logging.String("video_id", video.ID),
		logging.String("event_id", verdict.EventID),
		logging.String("method", string(verdict.Method)),
		logging.Float64("confidence", verdict.Confidence))
	return result
}
