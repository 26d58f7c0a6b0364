package cli

import (
	"fmt"
	"time"

	"github.com/petalhq/petal/internal/engine"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete logs older than the 7-day window",
	Long:  "Run one retention sweep now: every log dated before today minus six days is deleted.",
	RunE:  runCleanup,
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open log store: %w", err)
	}

	sweeper := engine.NewSweeper(st, cfg.Retention.Hour)
	deleted, kept := sweeper.RunCleanup(time.Now())

	fmt.Printf("cleanup complete: %d deleted, %d kept\n", deleted, kept)
	return nil
}
