package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/config"
	"github.com/jmlarsen/chatlens/internal/index"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, database and FTS5, show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  DB path:    %s\n", cfg.DBPath)
			if cfg.ScorerURL != "" {
				fmt.Printf("  Scorer URL: %s\n", cfg.ScorerURL)
			} else {
				fmt.Println("  Scorer URL: (not set, sentiment command unavailable)")
			}

			fmt.Println("\n=== Database ===")
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatlens index' first)")
				return nil
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				fmt.Printf("  Status: ERROR (%v)\n", err)
				return nil
			}
			defer db.Close()

			// FTS5 smoke test
			if _, err := db.Raw().Exec("SELECT 1 FROM messages_fts LIMIT 1"); err != nil {
				fmt.Printf("  FTS5:   ERROR (%v)\n", err)
			} else {
				fmt.Println("  FTS5:   ok")
			}

			transcripts, _ := db.TranscriptCount()
			messages, _ := db.MessageCount()
			fmt.Printf("  Transcripts: %d\n", transcripts)
			fmt.Printf("  Messages:    %d\n", messages)
			return nil
		},
	}
}
