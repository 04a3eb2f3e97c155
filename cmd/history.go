package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/genius/internal/config"
	"github.com/jfmyers9/genius/internal/lookup"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent lookups",
	Long: `List the most recent API lookups made by this CLI, newest first.

Each line shows when the lookup ran, the endpoint, and the HTTP or API
status it ended with. Use --prune to delete entries older than a duration.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show (0 for all)")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "Delete entries older than this (e.g. 720h)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HistoryDB), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	history, err := lookup.NewHistory(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer history.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if historyPrune > 0 {
		n, err := history.Prune(ctx, time.Now().Add(-historyPrune))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pruned %d entries\n", n)
		return nil
	}

	entries, err := history.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintln(out, formatEntry(e))
	}
	return nil
}

// formatEntry renders one history line
func formatEntry(e lookup.Entry) string {
	status := "ok"
	if !e.OK() {
		status = fmt.Sprintf("failed (%d)", e.Status)
		if e.Status == 0 {
			status = "failed"
		}
	}
	return fmt.Sprintf("%s  %s  %s", e.Timestamp.Format(time.RFC3339), padToWidth(e.Endpoint, 30), status)
}
