package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
)

// SongRepository implements [models.Repository] for [models.Song] persistence.
//
// Every song references an existing mood; the store enforces the foreign key.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create inserts a new [models.Song] into the database with generated ID and sequence
func (r *SongRepository) Create(song *models.Song) error {
	sequence, err := NextSequence(r.db, "songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	song.SetID(id)
	song.SetSequence(sequence)

	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO songs (id, sequence, title, artist, album, mood_id, spotify_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		song.Title(),
		song.Artist(),
		nullString(song.Album()),
		song.MoodID(),
		nullString(song.SpotifyURL()),
		song.CreatedAt(),
		song.UpdatedAt(),
	)
	if err != nil {
		return storeErr("insert song", err)
	}

	return nil
}

// Get retrieves a song by ID
func (r *SongRepository) Get(id string) (*models.Song, error) {
	query := `
		SELECT id, sequence, title, artist, album, mood_id, spotify_url, created_at, updated_at
		FROM songs
		WHERE id = ?
	`

	return r.scan(r.db.QueryRow(query, id).Scan)
}

// Patch applies a partial update. Returns the updated song, or nil when the
// ID does not exist.
func (r *SongRepository) Patch(id string, patch models.SongPatch) (*models.Song, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Artist != nil {
		sets = append(sets, "artist = ?")
		args = append(args, *patch.Artist)
	}
	if patch.Album != nil {
		sets = append(sets, "album = ?")
		args = append(args, nullString(*patch.Album))
	}
	if patch.MoodID != nil {
		sets = append(sets, "mood_id = ?")
		args = append(args, *patch.MoodID)
	}
	if patch.SpotifyURL != nil {
		sets = append(sets, "spotify_url = ?")
		args = append(args, nullString(*patch.SpotifyURL))
	}

	args = append(args, id)
	query := "UPDATE songs SET " + joinSets(sets) + " WHERE id = ?"

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, storeErr("update song", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update song", err)
	}
	if rows == 0 {
		return nil, nil
	}

	return r.Get(id)
}

// Delete hard-deletes a song by ID. Returns false when the ID does not exist.
func (r *SongRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return false, storeErr("delete song", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("delete song", err)
	}

	return rows > 0, nil
}

// List retrieves songs in insertion order, optionally filtered by mood.
//
// An unknown mood ID is not an error; it yields an empty list.
func (r *SongRepository) List(moodID string) ([]*models.Song, error) {
	query := `
		SELECT id, sequence, title, artist, album, mood_id, spotify_url, created_at, updated_at
		FROM songs
	`

	args := []any{}

	if moodID != "" {
		query += " WHERE mood_id = ?"
		args = append(args, moodID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storeErr("query songs", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := r.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate songs", err)
	}

	return songs, nil
}

func (r *SongRepository) scan(scan func(...any) error) (*models.Song, error) {
	var (
		id         string
		sequence   int
		title      string
		artist     string
		album      sql.NullString
		moodID     string
		spotifyURL sql.NullString
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := scan(&id, &sequence, &title, &artist, &album, &moodID, &spotifyURL, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: song", shared.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("scan song", err)
	}

	song := models.NewSong(sequence, title, artist, album.String, moodID, spotifyURL.String)
	song.SetID(id)
	song.SetCreatedAt(createdAt)
	song.SetUpdatedAt(updatedAt)

	return song, nil
}
