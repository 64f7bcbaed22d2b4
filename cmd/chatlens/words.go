package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/config"
	"github.com/jmlarsen/chatlens/internal/render"
)

func wordsCmd() *cobra.Command {
	var topN, minLength int
	var author string

	cmd := &cobra.Command{
		Use:   "words <transcript>",
		Short: "Word frequency across text messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("top") {
				topN = cfg.TopN
			}
			if !cmd.Flags().Changed("min-length") {
				minLength = cfg.MinWordLength
			}

			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			opts := analyze.WordOptions{
				TopN:      topN,
				MinLength: minLength,
				StopWords: append(analyze.DefaultStopWords, cfg.StopWords...),
			}

			var words []analyze.WordCount
			title := "Word Frequency"
			if author != "" {
				words = analyze.WordFrequencyByAuthor(store, author, opts)
				title += ": " + author
			} else {
				words = analyze.WordFrequency(store, opts)
			}

			rows := make([][]string, 0, len(words))
			for _, wc := range words {
				rows = append(rows, []string{wc.Word, fmt.Sprintf("%d", wc.Count)})
			}
			fmt.Println(render.Title(title))
			fmt.Print(render.Table([]string{"Word", "Count"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 20, "number of words to show")
	cmd.Flags().IntVar(&minLength, "min-length", 3, "minimum word length")
	cmd.Flags().StringVar(&author, "author", "", "restrict to one participant")
	return cmd
}
