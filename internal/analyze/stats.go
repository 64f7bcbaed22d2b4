// Package analyze implements the read-only query catalog over a chat
// store. Every query is a pure function of the store plus its
// parameters; nothing here mutates shared state, so queries can run
// concurrently against the same store.
package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

var urlRe = regexp.MustCompile(`https?://\S+`)

// UserStats is one participant's share of the conversation.
type UserStats struct {
	Author        string
	Messages      int     // text + media messages
	Percent       float64 // share of all non-system messages
	AvgChars      float64 // mean body length of text messages
	AvgWords      float64 // mean word count of text messages
	MediaMessages int
	URLMessages   int // messages containing at least one URL
	Emojis        int // total emoji code points sent
}

// UserStatistics computes the per-participant table, ordered by message
// count descending. System notices are excluded from the denominator,
// so the percentages sum to 100 across participants.
func UserStatistics(s *chat.Store) []UserStats {
	total := 0
	for _, r := range s.Records() {
		if r.Kind != parse.KindSystem {
			total++
		}
	}

	var out []UserStats
	for _, author := range s.Authors() {
		recs := s.ByAuthor(author)
		st := UserStats{Author: author, Messages: len(recs)}
		chars, words, texts := 0, 0, 0
		for _, r := range recs {
			switch r.Kind {
			case parse.KindMedia:
				st.MediaMessages++
			case parse.KindText:
				texts++
				chars += len([]rune(r.Body))
				words += len(strings.Fields(r.Body))
				if urlRe.MatchString(r.Body) {
					st.URLMessages++
				}
			}
			st.Emojis += countEmojis(r.Body)
		}
		if texts > 0 {
			st.AvgChars = float64(chars) / float64(texts)
			st.AvgWords = float64(words) / float64(texts)
		}
		if total > 0 {
			st.Percent = float64(st.Messages) / float64(total) * 100
		}
		out = append(out, st)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Messages > out[j].Messages
	})
	return out
}
