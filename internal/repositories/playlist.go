package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
)

// PlaylistRepository implements [models.Repository] for [models.Playlist]
// persistence and owns the playlist_songs junction rows.
//
// Links carry their own sequence so playlist contents come back in attach
// order, and nothing prevents attaching the same song twice.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist into the database with generated ID and sequence
func (r *PlaylistRepository) Create(playlist *models.Playlist) error {
	sequence, err := NextSequence(r.db, "playlists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	playlist.SetID(id)
	playlist.SetSequence(sequence)

	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO playlists (id, sequence, user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, playlist.UserID(), playlist.Name(), playlist.CreatedAt(), playlist.UpdatedAt())
	if err != nil {
		return storeErr("insert playlist", err)
	}

	return nil
}

// Get retrieves a playlist by ID
func (r *PlaylistRepository) Get(id string) (*models.Playlist, error) {
	query := `
		SELECT id, sequence, user_id, name, created_at, updated_at
		FROM playlists
		WHERE id = ?
	`

	return r.scan(r.db.QueryRow(query, id).Scan)
}

// Patch applies a partial update. Returns the updated playlist, or nil when
// the ID does not exist.
func (r *PlaylistRepository) Patch(id string, patch models.PlaylistPatch) (*models.Playlist, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}

	args = append(args, id)
	query := "UPDATE playlists SET " + joinSets(sets) + " WHERE id = ?"

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, storeErr("update playlist", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update playlist", err)
	}
	if rows == 0 {
		return nil, nil
	}

	return r.Get(id)
}

// Delete hard-deletes a playlist by ID. Returns false when the ID does not exist.
func (r *PlaylistRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM playlists WHERE id = ?", id)
	if err != nil {
		return false, storeErr("delete playlist", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("delete playlist", err)
	}

	return rows > 0, nil
}

// List retrieves playlists in insertion order, optionally filtered by owner.
func (r *PlaylistRepository) List(userID string) ([]*models.Playlist, error) {
	query := `
		SELECT id, sequence, user_id, name, created_at, updated_at
		FROM playlists
	`

	args := []any{}

	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storeErr("query playlists", err)
	}
	defer rows.Close()

	var playlists []*models.Playlist
	for rows.Next() {
		playlist, err := r.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate playlists", err)
	}

	return playlists, nil
}

// AttachSong inserts one playlist_songs link with generated ID and sequence.
// The store rejects links to missing playlists or songs.
func (r *PlaylistRepository) AttachSong(link *models.PlaylistSong) error {
	sequence, err := NextSequence(r.db, "playlist_songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	link.SetID(id)
	link.SetSequence(sequence)

	if err := link.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO playlist_songs (id, sequence, playlist_id, song_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, link.PlaylistID(), link.SongID(), link.CreatedAt(), link.UpdatedAt())
	if err != nil {
		return storeErr("insert playlist link", err)
	}

	return nil
}

// DetachSong removes every link between the playlist and the song.
// Returns the number of links removed; zero is not an error.
func (r *PlaylistRepository) DetachSong(playlistID, songID string) (int64, error) {
	result, err := r.db.Exec("DELETE FROM playlist_songs WHERE playlist_id = ? AND song_id = ?", playlistID, songID)
	if err != nil {
		return 0, storeErr("delete playlist link", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, storeErr("delete playlist link", err)
	}

	return rows, nil
}

// Songs returns the playlist's joined song entries in link insertion order.
func (r *PlaylistRepository) Songs(playlistID string) ([]models.PlaylistEntry, error) {
	query := `
		SELECT ps.id, s.id, s.title, s.artist, s.album, s.spotify_url
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = ?
		ORDER BY ps.sequence ASC
	`

	rows, err := r.db.Query(query, playlistID)
	if err != nil {
		return nil, storeErr("query playlist songs", err)
	}
	defer rows.Close()

	var entries []models.PlaylistEntry
	for rows.Next() {
		var (
			linkID     string
			songID     string
			title      string
			artist     string
			album      sql.NullString
			spotifyURL sql.NullString
		)

		if err := rows.Scan(&linkID, &songID, &title, &artist, &album, &spotifyURL); err != nil {
			return nil, storeErr("scan playlist song", err)
		}

		entry := models.PlaylistEntry{
			LinkID: linkID,
			SongID: songID,
			Title:  title,
			Artist: artist,
		}
		if album.Valid {
			entry.Album = &album.String
		}
		if spotifyURL.Valid {
			entry.SpotifyURL = &spotifyURL.String
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate playlist songs", err)
	}

	return entries, nil
}

func (r *PlaylistRepository) scan(scan func(...any) error) (*models.Playlist, error) {
	var (
		id        string
		sequence  int
		userID    string
		name      string
		createdAt time.Time
		updatedAt time.Time
	)

	err := scan(&id, &sequence, &userID, &name, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: playlist", shared.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("scan playlist", err)
	}

	playlist := models.NewPlaylist(sequence, userID, name)
	playlist.SetID(id)
	playlist.SetCreatedAt(createdAt)
	playlist.SetUpdatedAt(updatedAt)

	return playlist, nil
}
