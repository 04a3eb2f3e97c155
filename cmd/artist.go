package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/genius/pkg/genius"
	"github.com/spf13/cobra"
)

var (
	artistSongs   bool
	artistSort    string
	artistPerPage int
	artistPage    int
)

var artistCmd = &cobra.Command{
	Use:   "artist <id>",
	Short: "Show an artist",
	Long: `Show an artist. With --songs, list one page of the artist's songs
instead; use --page to pick another page.`,
	Args: cobra.ExactArgs(1),
	RunE: runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)
	artistCmd.Flags().BoolVar(&artistSongs, "songs", false, "List the artist's songs")
	artistCmd.Flags().StringVar(&artistSort, "sort", genius.SortTitle, "Song order (title, popularity)")
	artistCmd.Flags().IntVar(&artistPerPage, "per-page", 20, "Songs per page")
	artistCmd.Flags().IntVar(&artistPage, "page", 1, "Page number")
}

func runArtist(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if artistSongs {
		page, err := s.client.ArtistSongs(ctx, id, genius.ArtistSongsOptions{
			Sort:    artistSort,
			PerPage: artistPerPage,
			Page:    artistPage,
		})
		if err != nil {
			return err
		}
		for _, song := range page.Songs {
			fmt.Fprintf(out, "%s  %s\n", padToWidth(fmt.Sprintf("%d", song.ID), 10), song.Title)
		}
		if page.NextPage > 0 {
			fmt.Fprintf(out, "\nMore: --page %d\n", page.NextPage)
		}
		return nil
	}

	artist, err := s.client.Artist(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", artist.Name)
	if artist.IsVerified {
		fmt.Fprintln(out, "Verified artist")
	}
	if artist.FollowersCount > 0 {
		fmt.Fprintf(out, "Followers: %d\n", artist.FollowersCount)
	}
	fmt.Fprintf(out, "URL:       %s\n", artist.URL)
	return nil
}
