package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <transcript>",
		Short: "Per-participant message statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			stats := analyze.UserStatistics(store)
			rows := make([][]string, 0, len(stats))
			for _, st := range stats {
				rows = append(rows, []string{
					st.Author,
					fmt.Sprintf("%d", st.Messages),
					fmt.Sprintf("%.1f%%", st.Percent),
					fmt.Sprintf("%.1f", st.AvgChars),
					fmt.Sprintf("%.1f", st.AvgWords),
					fmt.Sprintf("%d", st.MediaMessages),
					fmt.Sprintf("%d", st.URLMessages),
					fmt.Sprintf("%d", st.Emojis),
				})
			}

			fmt.Println(render.Title("User Statistics"))
			fmt.Print(render.Table(
				[]string{"Author", "Messages", "Share", "Avg chars", "Avg words", "Media", "URLs", "Emojis"},
				rows,
			))
			return nil
		},
	}
}
