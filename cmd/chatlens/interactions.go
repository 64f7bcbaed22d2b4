package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func interactionsCmd() *cobra.Command {
	var minInteractions int

	cmd := &cobra.Command{
		Use:   "interactions <transcript>",
		Short: "Who responds to whom, and the most active pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			matrix := analyze.InteractionMatrix(store)
			var rows [][]string
			for _, responder := range store.Authors() {
				for _, original := range store.Authors() {
					if n := matrix[responder][original]; n > 0 {
						rows = append(rows, []string{responder, original, fmt.Sprintf("%d", n)})
					}
				}
			}
			fmt.Println(render.Title("Interactions"))
			fmt.Print(render.Table([]string{"Responder", "Responds to", "Count"}, rows))

			pairs := analyze.TopPairs(store, minInteractions)
			rows = rows[:0]
			for _, p := range pairs {
				rows = append(rows, []string{p.A + " + " + p.B, fmt.Sprintf("%d", p.Count)})
			}
			fmt.Println()
			fmt.Println(render.Title("Top Pairs"))
			fmt.Print(render.Table([]string{"Pair", "Interactions"}, rows))

			replies := analyze.ReplyPatterns(store)
			rows = rows[:0]
			for _, rp := range replies {
				rows = append(rows, []string{
					rp.Responder, rp.RespondsTo,
					fmt.Sprintf("%d", rp.Count),
					fmtDuration(rp.Mean),
					fmtDuration(rp.Median),
				})
			}
			fmt.Println()
			fmt.Println(render.Title("Reply Patterns"))
			fmt.Print(render.Table([]string{"Responder", "Responds to", "Count", "Mean", "Median"}, rows))

			overlaps := analyze.ActiveTimeOverlap(store)
			rows = rows[:0]
			for _, ov := range overlaps {
				rows = append(rows, []string{
					ov.A + " + " + ov.B,
					fmt.Sprintf("%d", ov.OverlapHours),
					fmt.Sprintf("%.1f%%", ov.Percent),
				})
			}
			fmt.Println()
			fmt.Println(render.Title("Active Hours Overlap"))
			fmt.Print(render.Table([]string{"Pair", "Shared hours", "Overlap"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&minInteractions, "min", 5, "minimum interactions for a pair")
	return cmd
}
