package analyze

import (
	"math"
	"sort"
	"time"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// Gaps of two hours or more separate conversational episodes rather
// than measuring a slow reply, and are excluded from the sample.
const episodeGap = 2 * time.Hour

// ResponseStats holds one responder's collected reply latencies.
type ResponseStats struct {
	Author string
	Count  int
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// ResponseSummary is the overall and per-author latency breakdown.
type ResponseSummary struct {
	Overall   ResponseStats // Author is empty
	PerAuthor []ResponseStats
}

// ResponseTimes walks the store chronologically and measures the gap
// between consecutive non-system records by differing authors. Only
// gaps strictly between zero and two hours count as responses; each
// sample is attributed to the author of the later message. Untimed
// records are skipped.
func ResponseTimes(s *chat.Store) ResponseSummary {
	var prev *parse.Record
	perAuthor := make(map[string][]time.Duration)
	var all []time.Duration

	records := s.Records()
	for i := range records {
		r := &records[i]
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		if prev != nil && prev.Author != r.Author {
			gap := r.Timestamp.Sub(prev.Timestamp)
			if gap > 0 && gap < episodeGap {
				perAuthor[r.Author] = append(perAuthor[r.Author], gap)
				all = append(all, gap)
			}
		}
		prev = r
	}

	summary := ResponseSummary{Overall: describe("", all)}
	for _, author := range s.Authors() {
		samples, ok := perAuthor[author]
		if !ok {
			continue
		}
		summary.PerAuthor = append(summary.PerAuthor, describe(author, samples))
	}
	sort.SliceStable(summary.PerAuthor, func(i, j int) bool {
		return summary.PerAuthor[i].Mean < summary.PerAuthor[j].Mean
	})
	return summary
}

func describe(author string, samples []time.Duration) ResponseStats {
	st := ResponseStats{Author: author, Count: len(samples)}
	if len(samples) == 0 {
		return st
	}

	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	st.Mean = sum / time.Duration(len(samples))

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		st.Median = sorted[mid]
	} else {
		st.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	if len(samples) > 1 {
		mean := float64(st.Mean)
		var sq float64
		for _, d := range samples {
			diff := float64(d) - mean
			sq += diff * diff
		}
		st.StdDev = time.Duration(math.Sqrt(sq / float64(len(samples)-1)))
	}
	return st
}
