package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/config"
	"github.com/jmlarsen/chatlens/internal/index"
)

func indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <transcript>...",
		Short: "Parse transcripts into the local search database",
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

			fmt.Fprintf(os.Stderr, "Indexing %d transcript(s) into %s\n", len(args), cfg.DBPath)

			stats, err := index.IndexFiles(db, args)
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}
}
