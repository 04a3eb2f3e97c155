package genius

import (
	"context"
	"encoding/json"
	"fmt"
)

// SongService provides song lookups.
type SongService struct {
	client *Client
}

// Get fetches a song by its Genius ID.
func (s *SongService) Get(ctx context.Context, id int) (*Song, error) {
	resp, err := s.client.SendRequest(ctx, fmt.Sprintf("/songs/%d", id), RequestOptions{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Song Song `json:"song"`
	}
	if err := json.Unmarshal(resp, &payload); err != nil {
		return nil, fmt.Errorf("genius: failed to parse song response: %w", err)
	}

	return &payload.Song, nil
}
