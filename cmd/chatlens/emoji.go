package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func emojiCmd() *cobra.Command {
	var topN int
	var author string

	cmd := &cobra.Command{
		Use:   "emoji <transcript>",
		Short: "Emoji usage frequency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			var emojis []analyze.EmojiCount
			title := "Emoji Frequency"
			if author != "" {
				emojis = analyze.EmojiFrequencyByAuthor(store, author, topN)
				title += ": " + author
			} else {
				emojis = analyze.EmojiFrequency(store, topN)
			}

			rows := make([][]string, 0, len(emojis))
			for _, ec := range emojis {
				rows = append(rows, []string{ec.Emoji, fmt.Sprintf("%d", ec.Count)})
			}
			fmt.Println(render.Title(title))
			fmt.Print(render.Table([]string{"Emoji", "Count"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 20, "number of emojis to show")
	cmd.Flags().StringVar(&author, "author", "", "restrict to one participant")
	return cmd
}
