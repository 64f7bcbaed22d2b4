package analyze

import (
	"fmt"
	"time"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// Granularity selects the activity-timeline period width.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
)

func (g Granularity) String() string {
	switch g {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	default:
		return "day"
	}
}

// ParseGranularity maps the config surface values day/week/month.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day", "d":
		return Daily, nil
	case "week", "w":
		return Weekly, nil
	case "month", "m":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown granularity %q (want day, week or month)", s)
	}
}

// truncate floors an instant to the start of its period. Weeks start on
// Monday, months on the 1st.
func (g Granularity) truncate(t time.Time) time.Time {
	day := chat.DayOf(t)
	switch g {
	case Weekly:
		back := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -back)
	case Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// next returns the start of the following period.
func (g Granularity) next(t time.Time) time.Time {
	switch g {
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// PeriodCount is one timeline bucket.
type PeriodCount struct {
	Period time.Time
	Count  int
}

// Timeline buckets text and media messages by period. The returned
// sequence spans the full observed range contiguously: periods without
// messages appear with count zero, never get omitted, so charting
// consumers always see an unbroken axis. Records whose timestamp could
// not be resolved are excluded.
func Timeline(s *chat.Store, g Granularity) []PeriodCount {
	counts := make(map[time.Time]int)
	var first, last time.Time
	for _, r := range s.Records() {
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		p := g.truncate(r.Timestamp)
		counts[p]++
		if first.IsZero() || p.Before(first) {
			first = p
		}
		if p.After(last) {
			last = p
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var out []PeriodCount
	for p := first; !p.After(last); p = g.next(p) {
		out = append(out, PeriodCount{Period: p, Count: counts[p]})
	}
	return out
}

// HourHistogram counts non-system messages per hour of day.
func HourHistogram(s *chat.Store) [24]int {
	var hist [24]int
	for _, r := range s.Records() {
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		hist[r.Timestamp.Hour()]++
	}
	return hist
}

// WeekdayHistogram counts non-system messages per weekday, Sunday
// first, matching time.Weekday numbering.
func WeekdayHistogram(s *chat.Store) [7]int {
	var hist [7]int
	for _, r := range s.Records() {
		if r.Kind == parse.KindSystem || !r.HasTime {
			continue
		}
		hist[int(r.Timestamp.Weekday())]++
	}
	return hist
}
