package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchWidth int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search songs",
	Long: `Search Genius and print one line per hit: song ID, title and artist.

Titles are padded or truncated to a fixed display width so columns line
up, including for CJK and emoji titles. The width defaults to the
title_width config value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchWidth, "width", "w", 0, "Title column width (0 uses config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	hits, err := s.client.Search(context.Background(), query)
	if err != nil {
		return err
	}

	width := searchWidth
	if width == 0 {
		width = s.cfg.TitleWidth
	}

	out := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintln(out, "No results")
		return nil
	}
	for _, hit := range hits {
		fmt.Fprintln(out, formatHit(hit.Result.ID, hit.Result.Title, hit.Result.ArtistNames, width))
	}
	return nil
}

// formatHit renders one search result line
func formatHit(id int, title, artist string, width int) string {
	return fmt.Sprintf("%s  %s  %s", padToWidth(fmt.Sprintf("%d", id), 10), padToWidth(title, width), artist)
}
