// package services defines interface Enricher for external music catalog lookups
package services

import (
	"context"

	"github.com/desertthunder/moodify/internal/models"
)

// Enricher defines the interface for external catalog providers that can
// resolve canonical metadata and a playable reference URL for a song.
type Enricher interface {
	// Authenticate acquires provider credentials (e.g., an app token).
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// SearchTrack looks up the best textual match for a title, narrowed by
	// artist when supplied. Returns (nil, nil) when the provider has no
	// match; an error only for transport/auth/provider failures.
	SearchTrack(ctx context.Context, title, artist string) (*models.TrackMatch, error)

	// Name returns the name of the provider (e.g., "Spotify")
	Name() string
}
