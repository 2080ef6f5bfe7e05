// Package match implements the matching engine: candidate generation,
// multi-signal scoring, confidence-based resolution with oracle escalation,
// and the parallel run loop that consults the verdict store so unchanged
// videos are never re-evaluated.
//
// Scoring is pure and deterministic. The only suspension point in the
// pipeline is the oracle call, and one video's oracle failure never aborts
// the processing of other videos.
package match
