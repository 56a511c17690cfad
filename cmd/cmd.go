// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// serveCommand starts the HTTP API server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the catalog HTTP API",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles database initialization and rollback.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.RollbackDatabase,
			},
		},
	}
}

// seedCommand populates the database with a demo catalog.
func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "seed",
		Usage:  "Reset and seed the database with demo moods, songs, users, and playlists",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Seed,
	}
}

// moodsCommand handles mood operations
func moodsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "moods",
		Usage: "Mood operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all moods",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ListMoods,
			},
		},
	}
}

// songsCommand handles song operations
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Song operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs for a mood",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "mood",
						Usage:    "Mood ID to list songs for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ListSongs,
			},
			{
				Name:  "add",
				Usage: "Add a song to a mood, enriching metadata from Spotify",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Song title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "artist",
						Usage:    "Artist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mood",
						Usage:    "Mood ID to tag the song with",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Album name (overrides the enriched album)",
					},
				},
				Action: r.AddSong,
			},
		},
	}
}

// playlistsCommand handles playlist operations
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a playlist, optionally attaching songs",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "user",
						Usage:    "Owner user ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Playlist name",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "song",
						Usage: "Song ID to attach (repeatable)",
					},
				},
				Action: r.CreatePlaylist,
			},
			{
				Name:  "show",
				Usage: "Show a playlist with its songs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ShowPlaylist,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to csv, markdown, or text",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, text)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.ExportPlaylist,
			},
		},
	}
}

// usersCommand handles user account operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "User account operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a user account",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "username",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address (unique)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Plaintext password, stored as a bcrypt hash",
						Required: true,
					},
				},
				Action: r.CreateUser,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for browsing the catalog.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive catalog browser",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
