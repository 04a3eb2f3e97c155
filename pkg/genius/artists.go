package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ArtistService provides artist lookups.
type ArtistService struct {
	client *Client
}

// Sort orders for ArtistService.Songs.
const (
	SortTitle      = "title"
	SortPopularity = "popularity"
)

// ArtistSongsOptions selects one page of an artist's songs.
type ArtistSongsOptions struct {
	Sort    string // Optional: SortTitle (API default) or SortPopularity
	PerPage int    // Optional: results per page, the API caps this at 50
	Page    int    // Optional: 1-based page number
}

// Get fetches an artist by its Genius ID.
func (s *ArtistService) Get(ctx context.Context, id int) (*Artist, error) {
	resp, err := s.client.SendRequest(ctx, fmt.Sprintf("/artists/%d", id), RequestOptions{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Artist Artist `json:"artist"`
	}
	if err := json.Unmarshal(resp, &payload); err != nil {
		return nil, fmt.Errorf("genius: failed to parse artist response: %w", err)
	}

	return &payload.Artist, nil
}

// Songs fetches a single page of songs by an artist.
//
// Only the requested page is fetched. ArtistSongsPage.NextPage is 0 when
// there are no more pages.
func (s *ArtistService) Songs(ctx context.Context, id int, opts ArtistSongsOptions) (*ArtistSongsPage, error) {
	query := url.Values{}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}

	resp, err := s.client.SendRequest(ctx, fmt.Sprintf("/artists/%d/songs", id), RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}

	var page ArtistSongsPage
	if err := json.Unmarshal(resp, &page); err != nil {
		return nil, fmt.Errorf("genius: failed to parse artist songs response: %w", err)
	}

	return &page, nil
}
