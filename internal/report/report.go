// Package report renders the final match set into the JSON and CSV
// artifacts consumed by the downstream viewer.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gavelmatch/internal/verdicts"
)

// Metadata summarizes a match set for the document header.
type Metadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	Total          int       `json:"total"`
	Matched        int       `json:"matched"`
	Algorithmic    int       `json:"algorithmic"`
	OracleAssisted int       `json:"oracle_assisted"`
	Unmatched      int       `json:"unmatched"`
	MatchRate      float64   `json:"match_rate"`
}

// Row is one verdict in the export.
type Row struct {
	VideoID    string   `json:"video_id"`
	EventID    string   `json:"event_id,omitempty"`
	Confidence float64  `json:"confidence"`
	Method     string   `json:"method"`
	Reasons    []string `json:"reasons,omitempty"`
	RunID      string   `json:"run_id,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// Document is the complete export payload.
type Document struct {
	Metadata  Metadata `json:"metadata"`
	Matches   []Row    `json:"matches"`
	Unmatched []Row    `json:"unmatched"`
}

// Build assembles a document from stored verdicts. Matched and unmatched
// verdicts are split into their own arrays; the match rate is matched over
// total, 0 for an empty set.
func Build(stored []*verdicts.Verdict, now time.Time) Document {
	doc := Document{
		Metadata:  Metadata{GeneratedAt: now.UTC(), Total: len(stored)},
		Matches:   []Row{},
		Unmatched: []Row{},
	}
	for _, verdict := range stored {
		row := Row{
			VideoID:    verdict.VideoID,
			EventID:    verdict.EventID,
			Confidence: verdict.Confidence,
			Method:     string(verdict.Method),
			Reasons:    verdict.Reasons,
			RunID:      verdict.RunID,
		}
		if !verdict.UpdatedAt.IsZero() {
			row.UpdatedAt = verdict.UpdatedAt.UTC().Format(time.RFC3339)
		}
		switch verdict.Method {
		case verdicts.MethodAlgorithmic:
			doc.Metadata.Algorithmic++
			doc.Matches = append(doc.Matches, row)
		case verdicts.MethodOracleAssisted:
			doc.Metadata.OracleAssisted++
			doc.Matches = append(doc.Matches, row)
		default:
			doc.Metadata.Unmatched++
			doc.Unmatched = append(doc.Unmatched, row)
		}
	}
	doc.Metadata.Matched = doc.Metadata.Algorithmic + doc.Metadata.OracleAssisted
	if doc.Metadata.Total > 0 {
		doc.Metadata.MatchRate = float64(doc.Metadata.Matched) / float64(doc.Metadata.Total)
	}
	return doc
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode match set: %w", err)
	}
	return nil
}

var csvHeader = []string{"video_id", "event_id", "confidence", "method", "reasons", "run_id", "updated_at"}

// WriteCSV writes every row (matched first, then unmatched) with a header.
func WriteCSV(w io.Writer, doc Document) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	rows := make([]Row, 0, len(doc.Matches)+len(doc.Unmatched))
	rows = append(rows, doc.Matches...)
	rows = append(rows, doc.Unmatched...)
	for _, row := range rows {
		record := []string{
			row.VideoID,
			row.EventID,
			strconv.FormatFloat(row.Confidence, 'f', 4, 64),
			row.Method,
			strings.Join(row.Reasons, "; "),
			row.RunID,
			row.UpdatedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row for %s: %w", row.VideoID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
