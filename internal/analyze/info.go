package analyze

import (
	"time"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// ChatInfo is the headline summary of a parsed transcript.
type ChatInfo struct {
	TotalMessages  int // all records, system notices included
	TextMessages   int
	MediaMessages  int
	SystemMessages int
	Participants   []string
	First, Last    time.Time // observed range over resolved timestamps
	Untimed        int       // records whose timestamp could not be resolved
}

// Info summarizes the store. An empty store yields a zero-valued
// summary, not an error.
func Info(s *chat.Store) ChatInfo {
	info := ChatInfo{Participants: s.Authors()}
	for _, r := range s.Records() {
		info.TotalMessages++
		switch r.Kind {
		case parse.KindText:
			info.TextMessages++
		case parse.KindMedia:
			info.MediaMessages++
		case parse.KindSystem:
			info.SystemMessages++
		}
		if !r.HasTime {
			info.Untimed++
			continue
		}
		if info.First.IsZero() || r.Timestamp.Before(info.First) {
			info.First = r.Timestamp
		}
		if r.Timestamp.After(info.Last) {
			info.Last = r.Timestamp
		}
	}
	return info
}
