package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petal",
	Short: "Wellness journaling with a 7-day memory",
	Long:  "Petal logs daily wellness activities as one JSON file per day, scores each day from 0 to 7 petals, and keeps a rolling week of history.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cleanupCmd)
}
