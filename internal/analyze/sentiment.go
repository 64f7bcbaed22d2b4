package analyze

import (
	"sort"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
	"github.com/jmlarsen/chatlens/internal/sentiment"
)

// Label is a deterministic classification of a compound score.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// ClassifyCompound thresholds a compound score. Bounds are inclusive:
// exactly 0.05 is positive and exactly -0.05 is negative.
func ClassifyCompound(compound float64) Label {
	switch {
	case compound >= 0.05:
		return Positive
	case compound <= -0.05:
		return Negative
	default:
		return Neutral
	}
}

// AuthorSentiment summarizes one participant's scored messages.
type AuthorSentiment struct {
	Author       string
	Positive     int
	Neutral      int
	Negative     int
	MeanCompound float64
}

// SentimentSummary is the overall distribution plus per-author means.
type SentimentSummary struct {
	Positive     int
	Neutral      int
	Negative     int
	MeanCompound float64
	PerAuthor    []AuthorSentiment
	Scored       int // text records successfully scored
	Failed       int // text records the scorer rejected
}

// Sentiment scores every text record with the injected scorer and
// classifies the results. Scoring failures exclude only the failing
// record from the aggregates; they never abort the query.
func Sentiment(s *chat.Store, scorer sentiment.Scorer) SentimentSummary {
	var summary SentimentSummary
	perAuthor := make(map[string]*AuthorSentiment)
	compoundSum := 0.0
	authorSums := make(map[string]float64)

	for _, r := range s.Records() {
		if r.Kind != parse.KindText {
			continue
		}
		scores, err := scorer.Score(r.Body)
		if err != nil {
			summary.Failed++
			continue
		}
		summary.Scored++
		compoundSum += scores.Compound

		as, ok := perAuthor[r.Author]
		if !ok {
			as = &AuthorSentiment{Author: r.Author}
			perAuthor[r.Author] = as
		}
		authorSums[r.Author] += scores.Compound

		switch ClassifyCompound(scores.Compound) {
		case Positive:
			summary.Positive++
			as.Positive++
		case Negative:
			summary.Negative++
			as.Negative++
		default:
			summary.Neutral++
			as.Neutral++
		}
	}

	if summary.Scored > 0 {
		summary.MeanCompound = compoundSum / float64(summary.Scored)
	}

	for _, author := range s.Authors() {
		as, ok := perAuthor[author]
		if !ok {
			continue
		}
		n := as.Positive + as.Neutral + as.Negative
		as.MeanCompound = authorSums[author] / float64(n)
		summary.PerAuthor = append(summary.PerAuthor, *as)
	}
	sort.SliceStable(summary.PerAuthor, func(i, j int) bool {
		return summary.PerAuthor[i].MeanCompound > summary.PerAuthor[j].MeanCompound
	})
	return summary
}
