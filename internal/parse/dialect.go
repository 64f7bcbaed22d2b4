package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dialect describes one export variant: separator style, date field
// order and hour convention. It is detected once from a lookahead
// sample and passed by value to every classification call; there is no
// process-wide parser state.
type Dialect struct {
	Bracketed  bool // "[date, time] Author: body" vs "date, time - Author: body"
	DayFirst   bool // date fields are day/month rather than month/day
	Hour12     bool // clock carries an AM/PM marker
	HasSeconds bool // clock carries a seconds field
}

func (d Dialect) String() string {
	sep := "dash"
	if d.Bracketed {
		sep = "bracket"
	}
	order := "month-first"
	if d.DayFirst {
		order = "day-first"
	}
	clock := "24h"
	if d.Hour12 {
		clock = "12h"
	}
	return fmt.Sprintf("%s/%s/%s", sep, order, clock)
}

// Header regexes for the two known export styles. Groups: date, clock,
// optional meridiem, rest of line (author + body, or a system notice).
var (
	dashHeaderRe    = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?)\s?([APap][Mm])?\s-\s(.*)$`)
	bracketHeaderRe = regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?)\s?([APap][Mm])?\]\s(.*)$`)
)

// header is a decomposed message-start line before timestamp resolution.
type header struct {
	date     string
	clock    string
	meridiem string // "", "AM", "PM" (normalized upper-case)
	rest     string
}

func matchHeader(line string, bracketed bool) (header, bool) {
	re := dashHeaderRe
	if bracketed {
		re = bracketHeaderRe
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return header{}, false
	}
	return header{
		date:     m[1],
		clock:    m[2],
		meridiem: strings.ToUpper(m[3]),
		rest:     m[4],
	}, true
}

// detectDialect locks a dialect from the first matching lines. The first
// match decides separator style and hour convention; date field order is
// refined across up to sampleSize matches of the locked style (a first
// field > 12 proves day-first, a second field > 12 proves month-first).
// When neither is proven, month-first is assumed. Lines in the other
// style never contribute evidence once the style is locked.
func detectDialect(lines []string) (Dialect, error) {
	const sampleSize = 25

	var d Dialect
	locked := false
	matched := 0
	dayEvidence, monthEvidence := false, false

	for _, line := range lines {
		var h header
		var ok bool
		if locked {
			h, ok = matchHeader(line, d.Bracketed)
			if !ok {
				continue
			}
		} else {
			var bracketed bool
			h, bracketed, ok = matchAnyHeader(line)
			if !ok {
				continue
			}
			d.Bracketed = bracketed
			d.Hour12 = h.meridiem != ""
			d.HasSeconds = strings.Count(h.clock, ":") == 2
			locked = true
		}
		f1, f2 := dateFields(h.date)
		if f1 > 12 {
			dayEvidence = true
		}
		if f2 > 12 {
			monthEvidence = true
		}
		matched++
		if matched >= sampleSize {
			break
		}
	}

	if !locked {
		return Dialect{}, ErrFormatUnrecognized
	}
	// contradictory evidence falls back to month-first
	d.DayFirst = dayEvidence && !monthEvidence
	return d, nil
}

func matchAnyHeader(line string) (header, bool, bool) {
	if h, ok := matchHeader(line, false); ok {
		return h, false, true
	}
	if h, ok := matchHeader(line, true); ok {
		return h, true, true
	}
	return header{}, false, false
}

func dateFields(date string) (int, int) {
	parts := strings.SplitN(date, "/", 3)
	if len(parts) < 2 {
		return 0, 0
	}
	f1, _ := strconv.Atoi(parts[0])
	f2, _ := strconv.Atoi(parts[1])
	return f1, f2
}

// layouts returns the time.Parse layouts for this dialect, four-digit
// year first.
func (d Dialect) layouts() []string {
	date := []string{"1/2/2006", "1/2/06"}
	if d.DayFirst {
		date = []string{"2/1/2006", "2/1/06"}
	}

	var clock string
	switch {
	case d.Hour12 && d.HasSeconds:
		clock = "3:04:05 PM"
	case d.Hour12:
		clock = "3:04 PM"
	case d.HasSeconds:
		clock = "15:04:05"
	default:
		clock = "15:04"
	}

	out := make([]string, 0, len(date))
	for _, dl := range date {
		out = append(out, dl+", "+clock)
	}
	return out
}

// resolve turns a matched header's timestamp fields into an instant.
// Source exports carry no timezone, so the instant is naive (UTC).
func (d Dialect) resolve(h header) (time.Time, bool) {
	raw := h.date + ", " + h.clock
	if h.meridiem != "" {
		raw += " " + h.meridiem
	}
	for _, layout := range d.layouts() {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (h header) rawTimestamp() string {
	raw := h.date + ", " + h.clock
	if h.meridiem != "" {
		raw += " " + h.meridiem
	}
	return raw
}
