package parse

import "time"

// Kind tags what a record represents.
type Kind string

const (
	KindText   Kind = "text"
	KindMedia  Kind = "media"
	KindSystem Kind = "system"
)

// Record is one normalized message from a transcript. Immutable once built.
type Record struct {
	Ordinal   int       // position in the original transcript, stable tie-breaker
	Timestamp time.Time // timezone-naive instant, zero when unresolved
	HasTime   bool      // false when the timestamp string could not be resolved
	Author    string    // empty for system notices
	Body      string    // reassembled text, empty for media placeholders
	Kind      Kind
	Line      int // first physical line of this record in the transcript
}

// Result is the outcome of parsing one transcript.
type Result struct {
	Records []Record
	Dialect Dialect

	// Warnings collects non-fatal anomalies: lines matching a dialect
	// other than the locked one, and unresolvable timestamps.
	Warnings []Warning

	// DateErrors are the per-record timestamp resolution failures.
	// The corresponding records are retained with HasTime=false.
	DateErrors []*DateResolutionError

	Lines        int // physical lines read
	IgnoredLines int // blank lines and export filler
}

// Warning is a non-fatal parse anomaly tied to a physical line.
type Warning struct {
	Line int
	Msg  string
}
