package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/moodify/internal/shared"
	testhelpers "github.com/desertthunder/moodify/internal/testing"
)

func testCredentials() map[string]string {
	return map[string]string{
		"client_id":     "test-client-id",
		"client_secret": "test-client-secret",
	}
}

// mockResponse builds a canned HTTP response for the mock transport.
func mockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newMockedService(t *testing.T, resp *http.Response, respErr error) *SpotifyService {
	t.Helper()

	svc, err := NewSpotifyService(testCredentials(), 0)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	svc.httpClient = &http.Client{Transport: testhelpers.NewMockRoundTripper(resp, respErr)}
	return svc
}

func TestNewSpotifyService(t *testing.T) {
	t.Run("ValidCredentials", func(t *testing.T) {
		svc, err := NewSpotifyService(testCredentials(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.Name() != "Spotify" {
			t.Errorf("expected name Spotify, got %s", svc.Name())
		}
	})

	t.Run("MissingClientID", func(t *testing.T) {
		_, err := NewSpotifyService(map[string]string{"client_secret": "s"}, 0)
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("MissingClientSecret", func(t *testing.T) {
		_, err := NewSpotifyService(map[string]string{"client_id": "c"}, 0)
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestSearchTrack(t *testing.T) {
	ctx := context.Background()

	searchBody := `{
		"tracks": {
			"items": [{
				"id": "track1",
				"name": "Weightless",
				"artists": [{"id": "artist1", "name": "Marconi Union"}],
				"album": {"id": "album1", "name": "Ambient Transmissions Vol. 2"},
				"external_urls": {"spotify": "https://open.spotify.com/track/track1"}
			}]
		}
	}`

	t.Run("Match", func(t *testing.T) {
		svc := newMockedService(t, mockResponse(http.StatusOK, searchBody), nil)

		match, err := svc.SearchTrack(ctx, "Weightless", "Marconi Union")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match == nil {
			t.Fatal("expected a match")
		}

		if match.Title != "Weightless" {
			t.Errorf("expected title Weightless, got %s", match.Title)
		}
		if match.Artist != "Marconi Union" {
			t.Errorf("expected artist Marconi Union, got %s", match.Artist)
		}
		if match.Album != "Ambient Transmissions Vol. 2" {
			t.Errorf("unexpected album: %s", match.Album)
		}
		if match.SpotifyURL != "https://open.spotify.com/track/track1" {
			t.Errorf("unexpected URL: %s", match.SpotifyURL)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		svc := newMockedService(t, mockResponse(http.StatusOK, `{"tracks":{"items":[]}}`), nil)

		match, err := svc.SearchTrack(ctx, "Obscure B-Side", "Nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match != nil {
			t.Errorf("expected nil match, got %+v", match)
		}
	})

	t.Run("APIError", func(t *testing.T) {
		svc := newMockedService(t, mockResponse(http.StatusTooManyRequests, `{"error":{"status":429}}`), nil)

		_, err := svc.SearchTrack(ctx, "Weightless", "")
		if !errors.Is(err, shared.ErrEnrichment) {
			t.Errorf("expected ErrEnrichment, got %v", err)
		}
	})

	t.Run("TransportError", func(t *testing.T) {
		svc := newMockedService(t, nil, errors.New("connection refused"))

		_, err := svc.SearchTrack(ctx, "Weightless", "")
		if !errors.Is(err, shared.ErrEnrichment) {
			t.Errorf("expected ErrEnrichment, got %v", err)
		}
	})

	t.Run("NotAuthenticated", func(t *testing.T) {
		svc, err := NewSpotifyService(testCredentials(), 0)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		_, err = svc.SearchTrack(ctx, "Weightless", "")
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("MissingTitle", func(t *testing.T) {
		svc := newMockedService(t, mockResponse(http.StatusOK, searchBody), nil)

		_, err := svc.SearchTrack(ctx, "", "Artist")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
