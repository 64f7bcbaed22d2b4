package parse

import "strings"

// LineClass is the classification of one physical line.
type LineClass int

const (
	// LineIgnorable is a blank line or known export filler.
	LineIgnorable LineClass = iota
	// LineMessage starts a new message with an author.
	LineMessage
	// LineSystem starts a system notice (matched header, no author separator).
	LineSystem
	// LineContinuation extends the previously opened message body.
	LineContinuation
)

// Classified is the result of classifying one line against a dialect.
type Classified struct {
	Class  LineClass
	TSRaw  string // raw timestamp text for LineMessage/LineSystem
	TS     header // decomposed timestamp fields
	Author string
	Body   string

	// CrossDialect marks a continuation line that would have matched
	// the other known dialect. The line is still parsed against the
	// locked dialect (first-wins), which may misattribute it; callers
	// surface this as a dialect ambiguity warning.
	CrossDialect bool
}

// Export filler lines are dropped entirely rather than kept as system
// records, e.g. the chat-created notice emitted at the top of exports.
var fillerMarkers = []string{
	"created this group",
	"created group",
}

// Media placeholder bodies exported in place of attachments.
var mediaPlaceholders = map[string]struct{}{
	"<media omitted>":   {},
	"image omitted":     {},
	"video omitted":     {},
	"audio omitted":     {},
	"document omitted":  {},
	"sticker omitted":   {},
	"gif omitted":       {},
	"<attached: media>": {},
}

// ClassifyLine decides whether a raw line starts a new message, starts a
// system notice, continues the previous message, or is droppable, under
// the given dialect.
func ClassifyLine(line string, d Dialect) Classified {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return Classified{Class: LineIgnorable}
	}

	h, ok := matchHeader(line, d.Bracketed)
	if !ok {
		c := Classified{Class: LineContinuation, Body: line}
		if _, ok := matchHeader(line, !d.Bracketed); ok {
			c.CrossDialect = true
		}
		return c
	}

	if isFiller(h.rest) {
		return Classified{Class: LineIgnorable}
	}

	// The author separator is the first ": " after the timestamp, not
	// the first colon: bodies like "re: that" stay intact and authors
	// never swallow message text.
	idx := strings.Index(h.rest, ": ")
	if idx <= 0 {
		return Classified{
			Class: LineSystem,
			TSRaw: h.rawTimestamp(),
			TS:    h,
			Body:  strings.TrimSpace(h.rest),
		}
	}

	return Classified{
		Class:  LineMessage,
		TSRaw:  h.rawTimestamp(),
		TS:     h,
		Author: strings.TrimSpace(h.rest[:idx]),
		Body:   h.rest[idx+2:],
	}
}

// isFiller matches the notice shape only: a marker counts when it sits
// before any author separator, so an authored body that merely mentions
// group creation stays a message.
func isFiller(rest string) bool {
	lower := strings.ToLower(rest)
	sep := strings.Index(lower, ": ")
	for _, marker := range fillerMarkers {
		i := strings.Index(lower, marker)
		if i < 0 {
			continue
		}
		if sep < 0 || i < sep {
			return true
		}
	}
	return false
}

// IsMediaPlaceholder reports whether a body is one of the known
// attachment placeholders.
func IsMediaPlaceholder(body string) bool {
	_, ok := mediaPlaceholders[strings.ToLower(strings.TrimSpace(body))]
	return ok
}
