package verdicts

import "time"

// Method records how a verdict was reached.
type Method string

const (
	// MethodAlgorithmic means scoring alone cleared the accept threshold.
	MethodAlgorithmic Method = "algorithmic"
	// MethodOracleAssisted means the oracle picked the candidate.
	MethodOracleAssisted Method = "oracle_assisted"
	// MethodUnmatched means no candidate survived; the video stays unmatched.
	MethodUnmatched Method = "unmatched"
)

var allMethods = []Method{MethodAlgorithmic, MethodOracleAssisted, MethodUnmatched}

// Valid reports whether the method is one the store recognizes.
func (m Method) Valid() bool {
	switch m {
	case MethodAlgorithmic, MethodOracleAssisted, MethodUnmatched:
		return true
	default:
		return false
	}
}

// Matched reports whether the method represents a successful match.
func (m Method) Matched() bool {
	return m == MethodAlgorithmic || m == MethodOracleAssisted
}

// Verdict is one persisted match outcome.
type Verdict struct {
	ID          int64
	VideoID     string
	EventID     string // empty when unmatched
	Confidence  float64
	Method      Method
	Fingerprint string
	Reasons     []string
	RunID       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Stats counts verdicts grouped by method.
type Stats struct {
	Total          int
	Algorithmic    int
	OracleAssisted int
	Unmatched      int
}
