package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/render"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <transcript>",
		Short: "Summarize a transcript: participants, counts, date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, result, err := loadStore(args[0])
			if err != nil {
				return err
			}
			info := analyze.Info(store)

			fmt.Println(render.Title("Chat Info"))
			fmt.Printf("Dialect:        %s\n", result.Dialect)
			fmt.Printf("Messages:       %d (%d text, %d media, %d system)\n",
				info.TotalMessages, info.TextMessages, info.MediaMessages, info.SystemMessages)
			fmt.Printf("Participants:   %d (%s)\n", len(info.Participants), strings.Join(info.Participants, ", "))
			if !info.First.IsZero() {
				fmt.Printf("Range:          %s .. %s\n",
					info.First.Format("2006-01-02 15:04"), info.Last.Format("2006-01-02 15:04"))
			}
			if info.Untimed > 0 {
				fmt.Printf("Untimed:        %d records with unresolvable timestamps\n", info.Untimed)
			}
			if len(result.Warnings) > 0 {
				fmt.Printf("Warnings:       %d (run with -v for details)\n", len(result.Warnings))
			}
			return nil
		},
	}
}
