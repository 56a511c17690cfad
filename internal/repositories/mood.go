package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
)

// MoodRepository implements [models.Repository] for [models.Mood] persistence.
//
// Moods are static reference data; songs reference them by id.
type MoodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new MoodRepository with the given database connection
func NewMoodRepository(db *sql.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create inserts a new [models.Mood] into the database with generated ID and sequence
func (r *MoodRepository) Create(mood *models.Mood) error {
	sequence, err := NextSequence(r.db, "moods")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	mood.SetID(id)
	mood.SetSequence(sequence)

	if err := mood.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO moods (id, sequence, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, mood.Name(), nullString(mood.Description()), mood.CreatedAt(), mood.UpdatedAt())
	if err != nil {
		return storeErr("insert mood", err)
	}

	return nil
}

// Get retrieves a mood by ID
func (r *MoodRepository) Get(id string) (*models.Mood, error) {
	query := `
		SELECT id, sequence, name, description, created_at, updated_at
		FROM moods
		WHERE id = ?
	`

	return r.scan(r.db.QueryRow(query, id).Scan)
}

// Patch applies a partial update. Returns the updated mood, or nil when the
// ID does not exist.
func (r *MoodRepository) Patch(id string, patch models.MoodPatch) (*models.Mood, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullString(*patch.Description))
	}

	args = append(args, id)
	query := "UPDATE moods SET " + joinSets(sets) + " WHERE id = ?"

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, storeErr("update mood", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update mood", err)
	}
	if rows == 0 {
		return nil, nil
	}

	return r.Get(id)
}

// Delete hard-deletes a mood by ID. Returns false when the ID does not exist.
func (r *MoodRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM moods WHERE id = ?", id)
	if err != nil {
		return false, storeErr("delete mood", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("delete mood", err)
	}

	return rows > 0, nil
}

// List retrieves all moods in insertion order
func (r *MoodRepository) List() ([]*models.Mood, error) {
	query := `
		SELECT id, sequence, name, description, created_at, updated_at
		FROM moods
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, storeErr("query moods", err)
	}
	defer rows.Close()

	var moods []*models.Mood
	for rows.Next() {
		mood, err := r.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate moods", err)
	}

	return moods, nil
}

func (r *MoodRepository) scan(scan func(...any) error) (*models.Mood, error) {
	var (
		id          string
		sequence    int
		name        string
		description sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := scan(&id, &sequence, &name, &description, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: mood", shared.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("scan mood", err)
	}

	mood := models.NewMood(sequence, name, description.String)
	mood.SetID(id)
	mood.SetCreatedAt(createdAt)
	mood.SetUpdatedAt(updatedAt)

	return mood, nil
}
