package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/config"
	"github.com/jmlarsen/chatlens/internal/render"
	"github.com/jmlarsen/chatlens/internal/sentiment"
)

func sentimentCmd() *cobra.Command {
	var scorerURL string

	cmd := &cobra.Command{
		Use:   "sentiment <transcript>",
		Short: "Sentiment distribution via an external scoring service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if scorerURL == "" {
				scorerURL = cfg.ScorerURL
			}
			if scorerURL == "" {
				return errors.New("no scorer configured: set --scorer-url or scorer_url in config.toml")
			}

			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			summary := analyze.Sentiment(store, sentiment.NewHTTPScorer(scorerURL))

			fmt.Println(render.Title("Sentiment"))
			fmt.Printf("Scored:    %d messages (%d failed)\n", summary.Scored, summary.Failed)
			fmt.Printf("Positive:  %d\n", summary.Positive)
			fmt.Printf("Neutral:   %d\n", summary.Neutral)
			fmt.Printf("Negative:  %d\n", summary.Negative)
			fmt.Printf("Mean compound: %+.3f\n", summary.MeanCompound)

			rows := make([][]string, 0, len(summary.PerAuthor))
			for _, as := range summary.PerAuthor {
				rows = append(rows, []string{
					as.Author,
					fmt.Sprintf("%d", as.Positive),
					fmt.Sprintf("%d", as.Neutral),
					fmt.Sprintf("%d", as.Negative),
					fmt.Sprintf("%+.3f", as.MeanCompound),
				})
			}
			fmt.Println()
			fmt.Print(render.Table([]string{"Author", "Pos", "Neu", "Neg", "Mean"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&scorerURL, "scorer-url", "", "sentiment service endpoint")
	return cmd
}
