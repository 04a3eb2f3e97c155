package genius

import (
	"encoding/json"
)

// envelope is the wrapper around every Genius API payload.
type envelope struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// tokenResponse is the body returned by the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Artist represents a Genius artist.
type Artist struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	APIPath        string `json:"api_path"`
	ImageURL       string `json:"image_url"`
	IsVerified     bool   `json:"is_verified"`
	FacebookName   string `json:"facebook_name,omitempty"`
	InstagramName  string `json:"instagram_name,omitempty"`
	TwitterName    string `json:"twitter_name,omitempty"`
	FollowersCount int    `json:"followers_count,omitempty"`
}

// Album represents the album a song appears on.
type Album struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	CoverArtURL string `json:"cover_art_url"`
}

// Song represents a Genius song.
type Song struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	FullTitle       string   `json:"full_title"`
	ArtistNames     string   `json:"artist_names"`
	URL             string   `json:"url"`
	Path            string   `json:"path"`
	APIPath         string   `json:"api_path"`
	LyricsState     string   `json:"lyrics_state"`
	ReleaseDate     string   `json:"release_date_for_display,omitempty"`
	SongArtImageURL string   `json:"song_art_image_url"`
	AnnotationCount int      `json:"annotation_count"`
	PrimaryArtist   *Artist  `json:"primary_artist,omitempty"`
	Album           *Album   `json:"album,omitempty"`
	FeaturedArtists []Artist `json:"featured_artists,omitempty"`
}

// Account represents the user behind a token issued with the "me" scope.
type Account struct {
	ID             int    `json:"id"`
	Login          string `json:"login"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	IQ             int    `json:"iq"`
	RoleForDisplay string `json:"role_for_display,omitempty"`
}

// SearchHit is one result from /search.
type SearchHit struct {
	Type   string `json:"type"`
	Index  string `json:"index"`
	Result Song   `json:"result"`
}

// ArtistSongsPage is a single page of an artist's songs.
type ArtistSongsPage struct {
	Songs    []Song `json:"songs"`
	NextPage int    `json:"next_page"`
}
