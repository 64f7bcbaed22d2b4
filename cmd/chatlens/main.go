package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "chatlens",
		Short:   "chatlens - parse and analyze exported chat transcripts",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(hoursCmd())
	rootCmd.AddCommand(wordsCmd())
	rootCmd.AddCommand(emojiCmd())
	rootCmd.AddCommand(sentimentCmd())
	rootCmd.AddCommand(responseCmd())
	rootCmd.AddCommand(startersCmd())
	rootCmd.AddCommand(interactionsCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
