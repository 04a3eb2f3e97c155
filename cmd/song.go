package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var songJSON bool

var songCmd = &cobra.Command{
	Use:   "song <id>",
	Short: "Show a song",
	Args:  cobra.ExactArgs(1),
	RunE:  runSong,
}

func init() {
	rootCmd.AddCommand(songCmd)
	songCmd.Flags().BoolVar(&songJSON, "json", false, "Print the song as JSON")
}

func runSong(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	song, err := s.client.Song(context.Background(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if songJSON {
		return printJSON(out, song)
	}

	fmt.Fprintf(out, "%s\n", song.FullTitle)
	if song.Album != nil && song.Album.Name != "" {
		fmt.Fprintf(out, "Album:    %s\n", song.Album.Name)
	}
	if song.ReleaseDate != "" {
		fmt.Fprintf(out, "Released: %s\n", song.ReleaseDate)
	}
	fmt.Fprintf(out, "Lyrics:   %s\n", song.LyricsState)
	fmt.Fprintf(out, "URL:      %s\n", song.URL)
	return nil
}

// parseID parses a positive Genius resource ID
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
