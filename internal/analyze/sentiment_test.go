package analyze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/sentiment"
)

// stubScorer maps exact bodies to fixed compound scores.
type stubScorer map[string]float64

func (s stubScorer) Score(text string) (sentiment.Scores, error) {
	c, ok := s[text]
	if !ok {
		return sentiment.Scores{}, errors.New("no score for text")
	}
	return sentiment.Scores{Compound: c}, nil
}

func TestClassifyCompoundBoundaries(t *testing.T) {
	tests := []struct {
		compound float64
		want     analyze.Label
	}{
		{0.05, analyze.Positive}, // inclusive bound
		{-0.05, analyze.Negative},
		{0.0, analyze.Neutral},
		{0.049999, analyze.Neutral},
		{-0.049999, analyze.Neutral},
		{1.0, analyze.Positive},
		{-1.0, analyze.Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analyze.ClassifyCompound(tt.compound), "compound=%v", tt.compound)
	}
}

func TestSentimentSummary(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: great",
		"1/1/24, 9:01 AM - Alice: awful",
		"1/1/24, 9:02 AM - Bob: whatever",
		"1/1/24, 9:03 AM - Bob: <Media omitted>",
	)

	scorer := stubScorer{"great": 0.8, "awful": -0.6, "whatever": 0.0}
	summary := analyze.Sentiment(s, scorer)

	assert.Equal(t, 3, summary.Scored)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.Positive)
	assert.Equal(t, 1, summary.Negative)
	assert.Equal(t, 1, summary.Neutral)
	assert.InDelta(t, (0.8-0.6+0.0)/3, summary.MeanCompound, 1e-9)

	require.Len(t, summary.PerAuthor, 2)
	for _, as := range summary.PerAuthor {
		switch as.Author {
		case "Alice":
			assert.InDelta(t, 0.1, as.MeanCompound, 1e-9)
			assert.Equal(t, 1, as.Positive)
			assert.Equal(t, 1, as.Negative)
		case "Bob":
			assert.InDelta(t, 0.0, as.MeanCompound, 1e-9)
			assert.Equal(t, 1, as.Neutral)
		}
	}
}

func TestSentimentScoringFailureExcluded(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: great",
		"1/1/24, 9:01 AM - Bob: unscoreable",
	)

	summary := analyze.Sentiment(s, stubScorer{"great": 0.8})
	assert.Equal(t, 1, summary.Scored)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Positive)
	require.Len(t, summary.PerAuthor, 1)
	assert.Equal(t, "Alice", summary.PerAuthor[0].Author)
}

func TestSentimentEmptyStore(t *testing.T) {
	summary := analyze.Sentiment(chat.NewStore(nil), stubScorer{})
	assert.Zero(t, summary.Scored)
	assert.Zero(t, summary.MeanCompound)
	assert.Empty(t, summary.PerAuthor)
}

func TestSentimentDeterministic(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: great",
		"1/1/24, 9:01 AM - Bob: awful",
	)
	scorer := stubScorer{"great": 0.05, "awful": -0.05}

	first := analyze.Sentiment(s, scorer)
	second := analyze.Sentiment(s, scorer)
	assert.Equal(t, first, second)
}
