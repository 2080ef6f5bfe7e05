// Package records defines the two read-only input collections the matcher
// reconciles: video recordings published by committee channels and official
// event records from the authoritative registry. Both are produced by
// external ingestion; this package only parses their JSON feeds and rejects
// records missing required fields.
package records
