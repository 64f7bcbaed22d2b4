package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jmlarsen/chatlens/internal/chat"
	"github.com/jmlarsen/chatlens/internal/parse"
)

// loadStore parses one transcript into a store, logging non-fatal parse
// warnings on the way.
func loadStore(path string) (*chat.Store, *parse.Result, error) {
	result, err := parse.ParseFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, w := range result.Warnings {
		log.Warn().Int("line", w.Line).Msg(w.Msg)
	}
	log.Debug().
		Str("dialect", result.Dialect.String()).
		Int("records", len(result.Records)).
		Int("lines", result.Lines).
		Msg("parsed transcript")

	return chat.NewStore(result.Records), result, nil
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
