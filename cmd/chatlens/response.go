package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func responseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "response <transcript>",
		Short: "Response-time statistics per participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			summary := analyze.ResponseTimes(store)

			fmt.Println(render.Title("Response Times"))
			fmt.Printf("Samples: %d (responses within 2h between differing authors)\n\n", summary.Overall.Count)

			rows := [][]string{{
				"(overall)",
				fmt.Sprintf("%d", summary.Overall.Count),
				fmtDuration(summary.Overall.Mean),
				fmtDuration(summary.Overall.Median),
				fmtDuration(summary.Overall.StdDev),
			}}
			for _, st := range summary.PerAuthor {
				rows = append(rows, []string{
					st.Author,
					fmt.Sprintf("%d", st.Count),
					fmtDuration(st.Mean),
					fmtDuration(st.Median),
					fmtDuration(st.StdDev),
				})
			}
			fmt.Print(render.Table([]string{"Responder", "Count", "Mean", "Median", "StdDev"}, rows))
			return nil
		},
	}
}
