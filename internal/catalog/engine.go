// package catalog implements the workflows composing the persistence layer
// with the external metadata enricher.
//
// The core abstraction is Engine, which owns one repository per entity and an
// optional [services.Enricher]. Each operation is a direct composition of
// repository and enricher calls with no hidden state. Enrichment failures are
// the one recovered failure mode: song creation proceeds with the locally
// supplied metadata when the provider is slow, down, or has no match.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/repositories"
	"github.com/desertthunder/moodify/internal/services"
	"github.com/desertthunder/moodify/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// defaultLookupTimeout bounds the external catalog lookup so a slow provider
// cannot stall the enclosing request.
const defaultLookupTimeout = 5 * time.Second

// Engine composes repositories and the metadata enricher into the catalog
// workflows.
type Engine struct {
	moods         *repositories.MoodRepository
	songs         *repositories.SongRepository
	playlists     *repositories.PlaylistRepository
	users         *repositories.UserRepository
	chatLogs      *repositories.ChatLogRepository
	enricher      services.Enricher
	lookupTimeout time.Duration
	logger        *log.Logger
}

// EngineOpts contains configuration options for creating an Engine.
type EngineOpts struct {
	DB            *sql.DB
	Enricher      services.Enricher // nil disables enrichment entirely
	LookupTimeout time.Duration
	Logger        *log.Logger
}

// NewEngine creates an Engine over the given database connection.
func NewEngine(opts EngineOpts) *Engine {
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = defaultLookupTimeout
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Engine{
		moods:         repositories.NewMoodRepository(opts.DB),
		songs:         repositories.NewSongRepository(opts.DB),
		playlists:     repositories.NewPlaylistRepository(opts.DB),
		users:         repositories.NewUserRepository(opts.DB),
		chatLogs:      repositories.NewChatLogRepository(opts.DB),
		enricher:      opts.Enricher,
		lookupTimeout: opts.LookupTimeout,
		logger:        opts.Logger,
	}
}

// ListMoods returns all moods in insertion order.
func (e *Engine) ListMoods(ctx context.Context) ([]models.MoodView, error) {
	moods, err := e.moods.List()
	if err != nil {
		return nil, err
	}

	views := []models.MoodView{}
	for _, mood := range moods {
		views = append(views, mood.View())
	}

	return views, nil
}

// ListSongsForMood returns the songs tagged with the given mood, in insertion
// order. A mood with no songs, or an unknown mood ID, yields an empty list.
func (e *Engine) ListSongsForMood(ctx context.Context, moodID string) ([]models.SongView, error) {
	if moodID == "" {
		return nil, fmt.Errorf("%w: mood_id is required", shared.ErrInvalidInput)
	}

	songs, err := e.songs.List(moodID)
	if err != nil {
		return nil, err
	}

	views := []models.SongView{}
	for _, song := range songs {
		views = append(views, song.View())
	}

	return views, nil
}

// AddSongWithEnrichment looks up the song in the external catalog, then
// persists it. The caller-supplied album wins over the enriched one; the
// playable reference URL only ever comes from enrichment.
//
// Lookup failure is non-fatal: it degrades to no-match and the song is stored
// with the local metadata.
func (e *Engine) AddSongWithEnrichment(ctx context.Context, title, artist, moodID, album string) (models.SongView, error) {
	if title == "" {
		return models.SongView{}, fmt.Errorf("%w: title is required", shared.ErrInvalidInput)
	}
	if artist == "" {
		return models.SongView{}, fmt.Errorf("%w: artist is required", shared.ErrInvalidInput)
	}
	if moodID == "" {
		return models.SongView{}, fmt.Errorf("%w: mood_id is required", shared.ErrInvalidInput)
	}

	match := e.lookup(ctx, title, artist)

	finalAlbum := album
	spotifyURL := ""
	if match != nil {
		if finalAlbum == "" {
			finalAlbum = match.Album
		}
		spotifyURL = match.SpotifyURL
	}

	song := models.NewSong(0, title, artist, finalAlbum, moodID, spotifyURL)
	if err := e.songs.Create(song); err != nil {
		return models.SongView{}, err
	}

	return song.View(), nil
}

// lookup queries the enricher with a bounded deadline. Any failure is logged
// and reported as no-match.
func (e *Engine) lookup(ctx context.Context, title, artist string) *models.TrackMatch {
	if e.enricher == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	match, err := e.enricher.SearchTrack(ctx, title, artist)
	if err != nil {
		e.logger.Warn("metadata lookup failed, storing song without enrichment",
			"provider", e.enricher.Name(), "title", title, "artist", artist, "error", err)
		return nil
	}

	return match
}

// CreatePlaylist creates an empty playlist owned by the given user.
func (e *Engine) CreatePlaylist(ctx context.Context, userID, name string) (*models.Playlist, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", shared.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}

	playlist := models.NewPlaylist(0, userID, name)
	if err := e.playlists.Create(playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// AttachSongsToPlaylist inserts one link per song ID, in the given order.
// The first failing insert aborts the remainder and fails the call; links
// already inserted stay (no cross-table transactions). Duplicates are allowed.
func (e *Engine) AttachSongsToPlaylist(ctx context.Context, playlistID string, songIDs []string) ([]*models.PlaylistSong, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist_id is required", shared.ErrInvalidInput)
	}

	links := []*models.PlaylistSong{}
	for _, songID := range songIDs {
		link := models.NewPlaylistSong(0, playlistID, songID)
		if err := e.playlists.AttachSong(link); err != nil {
			return links, fmt.Errorf("failed to attach song %s: %w", songID, err)
		}
		links = append(links, link)
	}

	return links, nil
}

// GetPlaylistDetails returns the playlist with its joined song entries in
// attach order. An unknown playlist ID is a not-found error.
func (e *Engine) GetPlaylistDetails(ctx context.Context, playlistID string) (*models.PlaylistDetail, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist_id is required", shared.ErrInvalidInput)
	}

	playlist, err := e.playlists.Get(playlistID)
	if err != nil {
		return nil, err
	}

	entries, err := e.playlists.Songs(playlistID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.PlaylistEntry{}
	}

	return &models.PlaylistDetail{
		ID:     playlist.ID(),
		UserID: playlist.UserID(),
		Name:   playlist.Name(),
		Songs:  entries,
	}, nil
}

// CreateUser hashes the credential and persists the account. The plaintext
// password never reaches the store.
func (e *Engine) CreateUser(ctx context.Context, username, email, password string) (models.UserView, error) {
	if username == "" {
		return models.UserView{}, fmt.Errorf("%w: username is required", shared.ErrInvalidInput)
	}
	if email == "" {
		return models.UserView{}, fmt.Errorf("%w: email is required", shared.ErrInvalidInput)
	}
	if password == "" {
		return models.UserView{}, fmt.Errorf("%w: password is required", shared.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(0, username, email, string(hash))
	if err := e.users.Create(user); err != nil {
		return models.UserView{}, err
	}

	return user.View(), nil
}

// LogChat records one mood-detection exchange for a user. The detected mood
// is optional.
func (e *Engine) LogChat(ctx context.Context, userID, question, response, detectedMoodID string) (*models.ChatLog, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", shared.ErrInvalidInput)
	}
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", shared.ErrInvalidInput)
	}

	chatLog := models.NewChatLog(0, userID, question, response, detectedMoodID)
	if err := e.chatLogs.Create(chatLog); err != nil {
		return nil, err
	}

	return chatLog, nil
}

// ChatHistory returns a user's chat logs in insertion order.
func (e *Engine) ChatHistory(ctx context.Context, userID string) ([]models.ChatLogView, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", shared.ErrInvalidInput)
	}

	chatLogs, err := e.chatLogs.List(userID)
	if err != nil {
		return nil, err
	}

	views := []models.ChatLogView{}
	for _, chatLog := range chatLogs {
		view := models.ChatLogView{
			ID:       chatLog.ID(),
			UserID:   chatLog.UserID(),
			Question: chatLog.Question(),
			Response: chatLog.Response(),
		}
		if detected := chatLog.DetectedMoodID(); detected != "" {
			view.DetectedMoodID = &detected
		}
		views = append(views, view)
	}

	return views, nil
}
