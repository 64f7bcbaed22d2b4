package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/config"
	"github.com/jmlarsen/chatlens/internal/index"
	"github.com/jmlarsen/chatlens/internal/search"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func searchCmd() *cobra.Command {
	var author, kind, since string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search across indexed transcripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			results, err := search.Search(db, search.Options{
				Query:  strings.Join(args, " "),
				Author: author,
				Kind:   kind,
				Since:  since,
				Limit:  limit,
			})
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			for _, r := range results {
				fmt.Printf("%s%s #%d %s %s%s  %s\n",
					sColorDim, filepath.Base(r.TranscriptKey), r.Ordinal, r.Ts, r.Author, sColorReset,
					colorizeSnippet(r.Snippet))
			}
			if len(results) == 0 {
				fmt.Println("no matches")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "filter by author")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind: text, media or system")
	cmd.Flags().StringVar(&since, "since", "", "only messages at or after this date, e.g. 2024-01-01")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results")
	return cmd
}
