// Package sentiment defines the external sentiment-scoring boundary.
// The core never computes scores itself; it consumes a Scorer so
// analysis can run against any backend and tests can inject a
// deterministic stub.
package sentiment

import "math"

// Scores is one message's polarity breakdown. Compound is the single
// normalized summary value in [-1, 1].
type Scores struct {
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
	Compound float64 `json:"compound"`
}

// Valid reports whether all four values are finite and Compound is in
// [-1, 1].
func (s Scores) Valid() bool {
	for _, v := range []float64{s.Positive, s.Neutral, s.Negative, s.Compound} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return s.Compound >= -1 && s.Compound <= 1
}

// Scorer scores one message body. A per-call error marks that record as
// a scoring failure; the caller excludes it from sentiment aggregates
// and carries on.
type Scorer interface {
	Score(text string) (Scores, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(text string) (Scores, error)

func (f ScorerFunc) Score(text string) (Scores, error) {
	return f(text)
}
