package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func timelineCmd() *cobra.Command {
	var freq string

	cmd := &cobra.Command{
		Use:   "timeline <transcript>",
		Short: "Message activity over time with zero-filled gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := analyze.ParseGranularity(freq)
			if err != nil {
				return err
			}

			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			timeline := analyze.Timeline(store, g)
			max := 0
			for _, pc := range timeline {
				if pc.Count > max {
					max = pc.Count
				}
			}

			layout := "2006-01-02"
			if g == analyze.Monthly {
				layout = "2006-01"
			}

			barWidth := render.BarWidth(len(layout) + 9)
			fmt.Println(render.Title("Activity Timeline (" + g.String() + ")"))
			for _, pc := range timeline {
				fmt.Printf("%s  %5d  %s\n", pc.Period.Format(layout), pc.Count, render.Bar(pc.Count, max, barWidth))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&freq, "freq", "f", "day", "period granularity: day, week or month")
	return cmd
}
