package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/moodify/internal/formatter"
	"github.com/desertthunder/moodify/internal/shared"
	"github.com/urfave/cli/v3"
)

// ListMoods prints every mood in the catalog.
func (r *Runner) ListMoods(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	moods, err := engine.ListMoods(ctx)
	if err != nil {
		return fmt.Errorf("failed to list moods: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(moods, cmd.Bool("pretty"))
	}

	r.writePlain("Moods (%d)\n", len(moods))
	for _, mood := range moods {
		r.writePlain("  %s  %s", mood.ID, mood.Name)
		if mood.Description != nil {
			r.writePlain("  — %s", *mood.Description)
		}
		r.writePlain("\n")
	}

	return nil
}

// ListSongs prints the songs tagged with a mood.
func (r *Runner) ListSongs(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	songs, err := engine.ListSongsForMood(ctx, cmd.String("mood"))
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writePlain("Songs (%d)\n", len(songs))
	for _, song := range songs {
		r.writePlain("  %s — %s", song.Title, song.Artist)
		if song.Album != nil {
			r.writePlain(" (%s)", *song.Album)
		}
		if song.SpotifyURL != nil {
			r.writePlain("  %s", *song.SpotifyURL)
		}
		r.writePlain("\n")
	}

	return nil
}

// AddSong stores a song under a mood, enriching it from the external catalog
// when credentials are configured.
func (r *Runner) AddSong(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	song, err := engine.AddSongWithEnrichment(ctx, cmd.String("title"), cmd.String("artist"), cmd.String("mood"), cmd.String("album"))
	if err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	r.writePlain("✓ Added %s — %s (id %s)\n", song.Title, song.Artist, song.ID)
	if song.SpotifyURL != nil {
		r.writePlain("  %s\n", *song.SpotifyURL)
	} else {
		r.writePlain("  no catalog match, stored with local metadata\n")
	}

	return nil
}

// CreatePlaylist creates a playlist and attaches any songs passed via --song.
func (r *Runner) CreatePlaylist(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := engine.CreatePlaylist(ctx, cmd.String("user"), cmd.String("name"))
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	songIDs := cmd.StringSlice("song")
	links, err := engine.AttachSongsToPlaylist(ctx, playlist.ID(), songIDs)
	if err != nil {
		return fmt.Errorf("playlist %s created but attaching songs failed: %w", playlist.ID(), err)
	}

	r.writePlain("✓ Created playlist %q (id %s) with %d songs\n", playlist.Name(), playlist.ID(), len(links))
	return nil
}

// ShowPlaylist prints a playlist with its joined song entries.
func (r *Runner) ShowPlaylist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	detail, err := engine.GetPlaylistDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	r.writePlain("%s (%d songs)\n", detail.Name, len(detail.Songs))
	for i, entry := range detail.Songs {
		r.writePlain("  %d. %s — %s", i+1, entry.Title, entry.Artist)
		if entry.Album != nil {
			r.writePlain(" (%s)", *entry.Album)
		}
		r.writePlain("\n")
	}

	return nil
}

// ExportPlaylist writes a playlist to a file in the requested format.
func (r *Runner) ExportPlaylist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	detail, err := engine.GetPlaylistDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	path, err := formatter.WriteExport(detail, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to export playlist: %w", err)
	}

	r.writePlain("✓ Exported %q to %s\n", detail.Name, path)
	return nil
}

// CreateUser creates an account with a hashed credential.
func (r *Runner) CreateUser(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := engine.CreateUser(ctx, cmd.String("username"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.writePlain("✓ Created user %s (id %s)\n", user.Username, user.ID)
	return nil
}
