package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func startersCmd() *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "starters <transcript>",
		Short: "Who opens conversations, and the busiest days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			starters := analyze.ConversationStarters(store)
			rows := make([][]string, 0, len(starters))
			for _, st := range starters {
				rows = append(rows, []string{
					st.Author,
					fmt.Sprintf("%d", st.Started),
					fmt.Sprintf("%.1f%%", st.Percent),
				})
			}
			fmt.Println(render.Title("Conversation Starters"))
			fmt.Print(render.Table([]string{"Author", "Started", "Share"}, rows))

			days := analyze.MostActiveDays(store, topN)
			rows = rows[:0]
			for _, da := range days {
				rows = append(rows, []string{
					da.Day.Format("2006-01-02"),
					fmt.Sprintf("%d", da.Count),
				})
			}
			fmt.Println()
			fmt.Println(render.Title("Most Active Days"))
			fmt.Print(render.Table([]string{"Day", "Messages"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 10, "number of days to show")
	return cmd
}
