package analyze

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// DefaultStopWords is the fixed filler-word filter applied to word
// frequency queries. Callers may extend or replace it.
var DefaultStopWords = []string{
	"the", "is", "at", "which", "on", "and", "a", "to", "in", "was",
	"it", "of", "for", "as", "with", "be", "are", "by", "this", "that",
	"from", "or", "have", "an", "not", "but", "what", "all", "were",
	"when", "we", "there", "can", "been", "has", "if", "more", "her",
	"his", "they", "you", "me", "my", "i", "im", "dont", "didnt",
}

// WordOptions parameterizes word-frequency extraction.
type WordOptions struct {
	TopN      int      // truncate the ranked result; <= 0 means all
	MinLength int      // drop tokens shorter than this many runes
	StopWords []string // nil means DefaultStopWords
}

// WordCount is one ranked token.
type WordCount struct {
	Word  string
	Count int
}

// EmojiCount is one ranked emoji code point.
type EmojiCount struct {
	Emoji string
	Count int
}

// tokenize lower-cases a body and splits it on non-alphanumeric
// boundaries.
func tokenize(body string) []string {
	return strings.FieldsFunc(strings.ToLower(body), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func stopSet(opts WordOptions) map[string]struct{} {
	words := opts.StopWords
	if words == nil {
		words = DefaultStopWords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// WordFrequency ranks tokens across all text messages by descending
// count, ties broken by first occurrence in the transcript.
func WordFrequency(s *chat.Store, opts WordOptions) []WordCount {
	return wordFrequency(textBodies(s, ""), opts)
}

// WordFrequencyByAuthor ranks tokens for a single participant.
func WordFrequencyByAuthor(s *chat.Store, author string, opts WordOptions) []WordCount {
	return wordFrequency(textBodies(s, author), opts)
}

func textBodies(s *chat.Store, author string) []string {
	var bodies []string
	for _, r := range s.Records() {
		if r.Kind != parse.KindText {
			continue
		}
		if author != "" && r.Author != author {
			continue
		}
		bodies = append(bodies, r.Body)
	}
	return bodies
}

func wordFrequency(bodies []string, opts WordOptions) []WordCount {
	stop := stopSet(opts)
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0

	for _, body := range bodies {
		for _, tok := range tokenize(body) {
			if len([]rune(tok)) < opts.MinLength {
				continue
			}
			if _, skip := stop[tok]; skip {
				continue
			}
			if _, seen := counts[tok]; !seen {
				firstSeen[tok] = pos
			}
			counts[tok]++
			pos++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Word] < firstSeen[out[j].Word]
	})

	if opts.TopN > 0 && len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out
}

// EmojiFrequency ranks every emoji code-point occurrence across all
// records, ties broken by first occurrence. topN <= 0 returns all.
func EmojiFrequency(s *chat.Store, topN int) []EmojiCount {
	return emojiFrequency(allBodies(s, ""), topN)
}

// EmojiFrequencyByAuthor ranks emoji usage for one participant.
func EmojiFrequencyByAuthor(s *chat.Store, author string, topN int) []EmojiCount {
	return emojiFrequency(allBodies(s, author), topN)
}

func allBodies(s *chat.Store, author string) []string {
	var bodies []string
	for _, r := range s.Records() {
		if author != "" && r.Author != author {
			continue
		}
		bodies = append(bodies, r.Body)
	}
	return bodies
}

func emojiFrequency(bodies []string, topN int) []EmojiCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0

	for _, body := range bodies {
		for _, r := range body {
			if !isEmoji(r) {
				continue
			}
			key := string(r)
			if _, seen := counts[key]; !seen {
				firstSeen[key] = pos
			}
			counts[key]++
			pos++
		}
	}

	out := make([]EmojiCount, 0, len(counts))
	for e, c := range counts {
		out = append(out, EmojiCount{Emoji: e, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Emoji] < firstSeen[out[j].Emoji]
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Emoji blocks by code point. Frequency is defined per individual code
// point, so a range test is the whole classification.
var emojiRanges = [...][2]rune{
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // symbols & pictographs extended
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // arrows & symbols
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

func countEmojis(body string) int {
	n := 0
	for _, r := range body {
		if isEmoji(r) {
			n++
		}
	}
	return n
}
