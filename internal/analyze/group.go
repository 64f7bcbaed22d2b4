package analyze

import (
	"sort"
	"time"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// An interaction only counts as a direct reply inside this window;
// conversation episodes are cut at gaps longer than an hour. Reply
// patterns use the wider hour window and need a minimum sample before a
// pair's average means anything.
const (
	interactionWindow = 30 * time.Minute
	conversationGap   = time.Hour
	replyWindow       = time.Hour
	minReplySamples   = 3
)

// DayActivity is one calendar day's message count with the per-author
// breakdown behind it.
type DayActivity struct {
	Day      time.Time
	Count    int
	ByAuthor map[string]int
}

// MostActiveDays ranks calendar days by non-system message count,
// earliest day first among ties. topN <= 0 returns all days.
func MostActiveDays(s *chat.Store, topN int) []DayActivity {
	var out []DayActivity
	for _, day := range s.Days() {
		da := DayActivity{Day: day, ByAuthor: make(map[string]int)}
		for _, r := range s.ByDay(day) {
			if r.Kind == parse.KindSystem {
				continue
			}
			da.Count++
			da.ByAuthor[r.Author]++
		}
		if da.Count > 0 {
			out = append(out, da)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Day.Before(out[j].Day)
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// StarterStats counts conversations opened by one participant. A
// record opens a conversation when it is the first in the transcript or
// follows a gap longer than an hour.
type StarterStats struct {
	Author  string
	Started int
	Percent float64
}

// ConversationStarters ranks participants by conversations opened.
func ConversationStarters(s *chat.Store) []StarterStats {
	counts := make(map[string]int)
	total := 0
	var prev *parse.Record

	records := s.Records()
	for i := range records {
		r := &records[i]
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		if prev == nil || r.Timestamp.Sub(prev.Timestamp) > conversationGap {
			counts[r.Author]++
			total++
		}
		prev = r
	}

	var out []StarterStats
	for _, author := range s.Authors() {
		n, ok := counts[author]
		if !ok {
			continue
		}
		st := StarterStats{Author: author, Started: n}
		if total > 0 {
			st.Percent = float64(n) / float64(total) * 100
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Started > out[j].Started
	})
	return out
}

// InteractionMatrix counts direct replies: matrix[responder][original]
// is how often responder answered original within the interaction
// window.
func InteractionMatrix(s *chat.Store) map[string]map[string]int {
	matrix := make(map[string]map[string]int)
	var prev *parse.Record

	records := s.Records()
	for i := range records {
		r := &records[i]
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		if prev != nil && prev.Author != r.Author {
			if gap := r.Timestamp.Sub(prev.Timestamp); gap >= 0 && gap <= interactionWindow {
				row, ok := matrix[r.Author]
				if !ok {
					row = make(map[string]int)
					matrix[r.Author] = row
				}
				row[prev.Author]++
			}
		}
		prev = r
	}
	return matrix
}

// Pair is a bidirectional interaction count between two participants.
type Pair struct {
	A, B  string
	Count int
}

// TopPairs sums both reply directions per participant pair and returns
// pairs with at least minInteractions, most active first.
func TopPairs(s *chat.Store, minInteractions int) []Pair {
	matrix := InteractionMatrix(s)
	authors := s.Authors()

	var out []Pair
	for i, a := range authors {
		for _, b := range authors[i+1:] {
			count := matrix[a][b] + matrix[b][a]
			if count >= minInteractions && count > 0 {
				out = append(out, Pair{A: a, B: b, Count: count})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// ReplyPattern is one directed pair's reply latency profile.
type ReplyPattern struct {
	Responder  string
	RespondsTo string
	Count      int
	Mean       time.Duration
	Median     time.Duration
}

// ReplyPatterns measures who answers whom fastest: gaps of up to an
// hour between consecutive differing-author records, collected per
// directed pair. Pairs with fewer than three samples are omitted;
// fastest average first.
func ReplyPatterns(s *chat.Store) []ReplyPattern {
	type pairKey struct{ responder, original string }
	samples := make(map[pairKey][]time.Duration)
	var prev *parse.Record

	records := s.Records()
	for i := range records {
		r := &records[i]
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		if prev != nil && prev.Author != r.Author {
			if gap := r.Timestamp.Sub(prev.Timestamp); gap >= 0 && gap <= replyWindow {
				k := pairKey{r.Author, prev.Author}
				samples[k] = append(samples[k], gap)
			}
		}
		prev = r
	}

	var out []ReplyPattern
	for _, responder := range s.Authors() {
		for _, original := range s.Authors() {
			times := samples[pairKey{responder, original}]
			if len(times) < minReplySamples {
				continue
			}
			st := describe("", times)
			out = append(out, ReplyPattern{
				Responder:  responder,
				RespondsTo: original,
				Count:      st.Count,
				Mean:       st.Mean,
				Median:     st.Median,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Mean < out[j].Mean
	})
	return out
}

// Overlap is one pair's shared-activity profile across calendar hours.
type Overlap struct {
	A, B         string
	OverlapHours int // hour buckets where both sent a message
	AHours       int // hour buckets where A was active
	BHours       int
	Percent      float64 // overlap relative to the less-active participant
}

// ActiveTimeOverlap buckets non-system records into calendar hours and,
// per participant pair, counts the hours where both were active. Pairs
// that never overlap are omitted; most shared hours first.
func ActiveTimeOverlap(s *chat.Store) []Overlap {
	hours := make(map[string]map[time.Time]struct{})
	records := s.Records()
	for i := range records {
		r := &records[i]
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		bucket := r.Timestamp.Truncate(time.Hour)
		set, ok := hours[r.Author]
		if !ok {
			set = make(map[time.Time]struct{})
			hours[r.Author] = set
		}
		set[bucket] = struct{}{}
	}

	authors := s.Authors()
	var out []Overlap
	for i, a := range authors {
		for _, b := range authors[i+1:] {
			shared := 0
			for h := range hours[a] {
				if _, ok := hours[b][h]; ok {
					shared++
				}
			}
			if shared == 0 {
				continue
			}
			ov := Overlap{
				A: a, B: b,
				OverlapHours: shared,
				AHours:       len(hours[a]),
				BHours:       len(hours[b]),
			}
			least := ov.AHours
			if ov.BHours < least {
				least = ov.BHours
			}
			ov.Percent = float64(shared) / float64(least) * 100
			out = append(out, ov)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverlapHours > out[j].OverlapHours
	})
	return out
}
