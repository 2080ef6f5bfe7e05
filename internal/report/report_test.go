package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"gavelmatch/internal/verdicts"
)

func sampleVerdicts() []*verdicts.Verdict {
	return []*verdicts.Verdict{
		{
			VideoID:     "v1",
			EventID:     "115538",
			Confidence:  0.93,
			Method:      verdicts.MethodAlgorithmic,
			Fingerprint: "fp1",
			Reasons:     []string{"title similarity 0.95", "exact date match"},
			RunID:       "run-1",
			UpdatedAt:   time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		},
		{
			VideoID:     "v2",
			EventID:     "115539",
			Confidence:  0.75,
			Method:      verdicts.MethodOracleAssisted,
			Fingerprint: "fp2",
			Reasons:     []string{"oracle selected candidate 0 (event 115539)"},
			RunID:       "run-1",
		},
		{
			VideoID:     "v3",
			Method:      verdicts.MethodUnmatched,
			Fingerprint: "fp3",
			Reasons:     []string{"no candidate events for committee hsxx"},
			RunID:       "run-1",
		},
	}
}

func TestBuildSplitsAndCounts(t *testing.T) {
	doc := Build(sampleVerdicts(), time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))

	if doc.Metadata.Total != 3 || doc.Metadata.Matched != 2 || doc.Metadata.Unmatched != 1 {
		t.Fatalf("unexpected metadata: %#v", doc.Metadata)
	}
	if doc.Metadata.Algorithmic != 1 || doc.Metadata.OracleAssisted != 1 {
		t.Fatalf("unexpected method counts: %#v", doc.Metadata)
	}
	if math.Abs(doc.Metadata.MatchRate-2.0/3.0) > 1e-9 {
		t.Fatalf("unexpected match rate: %v", doc.Metadata.MatchRate)
	}
	if len(doc.Matches) != 2 || len(doc.Unmatched) != 1 {
		t.Fatalf("unexpected split: %d matches, %d unmatched", len(doc.Matches), len(doc.Unmatched))
	}
	if doc.Unmatched[0].VideoID != "v3" || doc.Unmatched[0].EventID != "" {
		t.Fatalf("unexpected unmatched row: %#v", doc.Unmatched[0])
	}
}

func TestBuildEmptySet(t *testing.T) {
	doc := Build(nil, time.Now())
	if doc.Metadata.MatchRate != 0 {
		t.Fatalf("expected zero match rate, got %v", doc.Metadata.MatchRate)
	}
	if doc.Matches == nil || doc.Unmatched == nil {
		t.Fatal("expected empty arrays, not nulls")
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	doc := Build(sampleVerdicts(), time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if decoded.Metadata.Total != 3 {
		t.Fatalf("unexpected decoded metadata: %#v", decoded.Metadata)
	}
	if decoded.Matches[0].VideoID != "v1" || decoded.Matches[0].EventID != "115538" {
		t.Fatalf("unexpected decoded match: %#v", decoded.Matches[0])
	}
	if !strings.Contains(buf.String(), `"match_rate"`) {
		t.Fatal("expected match_rate key in export")
	}
}

func TestWriteCSV(t *testing.T) {
	doc := Build(sampleVerdicts(), time.Now())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, doc); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "video_id" || rows[0][3] != "method" {
		t.Fatalf("unexpected header: %#v", rows[0])
	}
	if rows[1][0] != "v1" || rows[1][3] != "algorithmic" {
		t.Fatalf("unexpected first row: %#v", rows[1])
	}
	if rows[1][4] != "title similarity 0.95; exact date match" {
		t.Fatalf("unexpected reasons cell: %q", rows[1][4])
	}
	if rows[3][0] != "v3" || rows[3][1] != "" {
		t.Fatalf("unexpected unmatched row: %#v", rows[3])
	}
}
