package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func hoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours <transcript>",
		Short: "Hour-of-day and weekday activity histograms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(args[0])
			if err != nil {
				return err
			}

			hourly := analyze.HourHistogram(store)
			max := 0
			for _, n := range hourly {
				if n > max {
					max = n
				}
			}
			barWidth := render.BarWidth(16)
			fmt.Println(render.Title("By Hour"))
			for h, n := range hourly {
				fmt.Printf("%02d:00  %5d  %s\n", h, n, render.Bar(n, max, barWidth))
			}

			weekly := analyze.WeekdayHistogram(store)
			max = 0
			for _, n := range weekly {
				if n > max {
					max = n
				}
			}
			fmt.Println()
			fmt.Println(render.Title("By Weekday"))
			for d, n := range weekly {
				fmt.Printf("%-9s  %5d  %s\n", time.Weekday(d), n, render.Bar(n, max, barWidth))
			}
			return nil
		},
	}
}
