// Package chat holds the ordered, immutable collection of parsed
// message records plus the derived indices every analysis query reads.
package chat

import (
	"sync"
	"time"

	"github.com/jmlarsen/chatlens/internal/parse"
)

// Store owns the record sequence produced by one parse. It is never
// mutated after construction; re-parsing produces a new store. The
// by-author and by-day indices are computed once on first use and
// shared by all queries, which makes concurrent reads safe.
type Store struct {
	records []parse.Record

	authorOnce sync.Once
	byAuthor   map[string][]int
	authors    []string

	dayOnce sync.Once
	byDay   map[time.Time][]int
	days    []time.Time
}

// NewStore builds a store over records already ordered by
// (timestamp, ordinal).
func NewStore(records []parse.Record) *Store {
	owned := make([]parse.Record, len(records))
	copy(owned, records)
	return &Store{records: owned}
}

// Records returns the ordered record sequence. Callers must not modify it.
func (s *Store) Records() []parse.Record {
	return s.records
}

// Len is the total record count, system notices included.
func (s *Store) Len() int {
	return len(s.records)
}

// Authors returns participant names in order of first appearance.
// System notices carry no author and are not listed.
func (s *Store) Authors() []string {
	s.buildAuthorIndex()
	return s.authors
}

// ByAuthor returns the records sent by one participant, in store order.
func (s *Store) ByAuthor(author string) []parse.Record {
	s.buildAuthorIndex()
	idxs := s.byAuthor[author]
	out := make([]parse.Record, len(idxs))
	for i, idx := range idxs {
		out[i] = s.records[idx]
	}
	return out
}

// Days returns the calendar days with at least one timed record,
// ascending. Day keys are midnight UTC (instants are timezone-naive).
func (s *Store) Days() []time.Time {
	s.buildDayIndex()
	return s.days
}

// ByDay returns the records of one calendar day, in store order.
func (s *Store) ByDay(day time.Time) []parse.Record {
	s.buildDayIndex()
	idxs := s.byDay[DayOf(day)]
	out := make([]parse.Record, len(idxs))
	for i, idx := range idxs {
		out[i] = s.records[idx]
	}
	return out
}

// DayOf truncates an instant to its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Store) buildAuthorIndex() {
	s.authorOnce.Do(func() {
		s.byAuthor = make(map[string][]int)
		for i, r := range s.records {
			if r.Author == "" {
				continue
			}
			if _, seen := s.byAuthor[r.Author]; !seen {
				s.authors = append(s.authors, r.Author)
			}
			s.byAuthor[r.Author] = append(s.byAuthor[r.Author], i)
		}
	})
}

func (s *Store) buildDayIndex() {
	s.dayOnce.Do(func() {
		s.byDay = make(map[time.Time][]int)
		for i, r := range s.records {
			if !r.HasTime {
				continue
			}
			day := DayOf(r.Timestamp)
			if _, seen := s.byDay[day]; !seen {
				s.days = append(s.days, day)
			}
			s.byDay[day] = append(s.byDay[day], i)
		}
	})
}
