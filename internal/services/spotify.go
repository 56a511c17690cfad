// Spotify API implementation of [Enricher]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// defaultRate bounds lookups so a burst of song additions cannot hammer
	// the provider.
	defaultRate = 5.0
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	Album        SpotifyAlbum    `json:"album"`
	DurationMS   int             `json:"duration_ms"`
	Explicit     bool            `json:"explicit"`
	ExternalURLs externalURLs    `json:"external_urls"`
	Popularity   int             `json:"popularity"`
	URI          string          `json:"uri"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Genres []string       `json:"genres"`
	Images []SpotifyImage `json:"images"`
	URI    string         `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	ReleaseDate string          `json:"release_date"`
	TotalTracks int             `json:"total_tracks"`
	Images      []SpotifyImage  `json:"images"`
	URI         string          `json:"uri"`
}

// spotifySearchResponse is the envelope of a /search request.
type spotifySearchResponse struct {
	Tracks struct {
		Items []SpotifyTrack `json:"items"`
	} `json:"tracks"`
}

// SpotifyService implements the Enricher interface for Spotify API lookups.
//
// Uses the OAuth2 client credentials grant: catalog search needs no user
// consent, only an app token.
type SpotifyService struct {
	config     *clientcredentials.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewSpotifyService creates a new Spotify service with the given credentials.
// The rateLimit is requests per second; zero or negative falls back to the default.
func NewSpotifyService(credentials map[string]string, rateLimit float64) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	if rateLimit <= 0 {
		rateLimit = defaultRate
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyService{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		baseURL: spotifyBaseURL,
	}, nil
}

// Authenticate builds the token-refreshing HTTP client for the client
// credentials grant. The credentials map is unused; the app credentials were
// supplied at construction.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	s.httpClient = s.config.Client(ctx)
	return nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs an authenticated GET request to the Spotify API.
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, result any) error {
	if s.httpClient == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrMissingCredentials)
	}

	apiURL := s.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrEnrichment, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify API status %d", shared.ErrEnrichment, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrEnrichment, err)
		}
	}

	return nil
}

// SearchTrack performs one free-text search for the top-ranked match.
// The query is the title, narrowed by artist when supplied.
//
// Returns (nil, nil) when the catalog has no match.
func (s *SpotifyService) SearchTrack(ctx context.Context, title, artist string) (*models.TrackMatch, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", shared.ErrInvalidInput)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrEnrichment, err)
	}

	query := title
	if artist != "" {
		query += fmt.Sprintf(" artist:%s", artist)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", "1")

	var response spotifySearchResponse
	if err := s.doRequest(ctx, "/search?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	if len(response.Tracks.Items) == 0 {
		return nil, nil
	}

	track := response.Tracks.Items[0]

	match := &models.TrackMatch{
		Title:      track.Name,
		Album:      track.Album.Name,
		SpotifyURL: track.ExternalURLs.Spotify,
	}
	if len(track.Artists) > 0 {
		match.Artist = track.Artists[0].Name
	}

	return match, nil
}
