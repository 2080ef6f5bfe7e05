// Package verdicts persists match outcomes in SQLite so repeated runs are
// incremental. Each verdict is keyed by video and carries the fingerprint of
// the inputs that produced it; the engine reuses a stored verdict whenever
// the fingerprint still matches, which keeps unchanged videos from reaching
// the oracle again.
package verdicts
