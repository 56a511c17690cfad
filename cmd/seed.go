package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/repositories"
	"github.com/urfave/cli/v3"
)

type seedSong struct {
	title  string
	artist string
}

var seedCatalog = map[string][]seedSong{
	"Chill": {
		{"Weightless", "Marconi Union"},
		{"Sunset Lover", "Petit Biscuit"},
		{"Porcelain", "Moby"},
	},
	"Happy": {
		{"Walking on Sunshine", "Katrina and the Waves"},
		{"Good as Hell", "Lizzo"},
		{"Happy", "Pharrell Williams"},
	},
	"Sad": {
		{"Someone Like You", "Adele"},
		{"Skinny Love", "Bon Iver"},
		{"Hurt", "Johnny Cash"},
	},
}

var seedMoodOrder = []string{"Chill", "Happy", "Sad"}

var seedMoodDescriptions = map[string]string{
	"Chill": "Laid back tracks for unwinding",
	"Happy": "Upbeat songs to lift your spirits",
	"Sad":   "For when you need to feel it",
}

// Seed wipes the catalog tables and repopulates them with a small demo
// dataset: three moods with three songs each, two users, and one playlist per
// user. Song metadata is enriched when credentials are configured.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("clearing existing catalog data")
	for _, table := range []string{"chat_logs", "playlist_songs", "playlists", "songs", "moods", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	moods := repositories.NewMoodRepository(db)
	moodIDs := map[string]string{}

	for _, name := range seedMoodOrder {
		mood := models.NewMood(0, name, seedMoodDescriptions[name])
		if err := moods.Create(mood); err != nil {
			return fmt.Errorf("failed to create mood %s: %w", name, err)
		}
		moodIDs[name] = mood.ID()
		r.logger.Info("created mood", "name", name, "id", mood.ID())
	}

	songIDs := map[string][]string{}
	for _, name := range seedMoodOrder {
		for _, s := range seedCatalog[name] {
			song, err := engine.AddSongWithEnrichment(ctx, s.title, s.artist, moodIDs[name], "")
			if err != nil {
				return fmt.Errorf("failed to add song %s: %w", s.title, err)
			}
			songIDs[name] = append(songIDs[name], song.ID)
		}
		r.logger.Info("added songs", "mood", name, "count", len(songIDs[name]))
	}

	alice, err := engine.CreateUser(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		return fmt.Errorf("failed to create user alice: %w", err)
	}
	bob, err := engine.CreateUser(ctx, "bob", "bob@example.com", "password456")
	if err != nil {
		return fmt.Errorf("failed to create user bob: %w", err)
	}

	playlists := []struct {
		user models.UserView
		name string
		mood string
	}{
		{alice, "Evening Wind Down", "Chill"},
		{bob, "Morning Boost", "Happy"},
	}

	for _, p := range playlists {
		playlist, err := engine.CreatePlaylist(ctx, p.user.ID, p.name)
		if err != nil {
			return fmt.Errorf("failed to create playlist %s: %w", p.name, err)
		}
		if _, err := engine.AttachSongsToPlaylist(ctx, playlist.ID(), songIDs[p.mood]); err != nil {
			return fmt.Errorf("failed to attach songs to %s: %w", p.name, err)
		}
		r.logger.Info("created playlist", "name", p.name, "owner", p.user.Username, "songs", len(songIDs[p.mood]))
	}

	r.writePlain("✓ Seeded %d moods, %d songs, 2 users, 2 playlists\n", len(seedMoodOrder), len(seedMoodOrder)*3)
	return nil
}
