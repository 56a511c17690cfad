package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
)

// UserRepository implements [models.Repository] for [models.User] persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user into the database with generated ID and sequence.
// The email column is unique at the store layer; a duplicate surfaces as a
// store error.
func (r *UserRepository) Create(user *models.User) error {
	sequence, err := NextSequence(r.db, "users")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	user.SetID(id)
	user.SetSequence(sequence)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO users (id, sequence, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, user.Username(), user.Email(), user.PasswordHash(), user.CreatedAt(), user.UpdatedAt())
	if err != nil {
		return storeErr("insert user", err)
	}

	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(id string) (*models.User, error) {
	query := `
		SELECT id, sequence, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	return r.scan(r.db.QueryRow(query, id).Scan)
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, sequence, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = ?
	`

	return r.scan(r.db.QueryRow(query, email).Scan)
}

// Patch applies a partial update. Returns the updated user, or nil when the
// ID does not exist.
func (r *UserRepository) Patch(id string, patch models.UserPatch) (*models.User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *patch.PasswordHash)
	}

	args = append(args, id)
	query := "UPDATE users SET " + joinSets(sets) + " WHERE id = ?"

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, storeErr("update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update user", err)
	}
	if rows == 0 {
		return nil, nil
	}

	return r.Get(id)
}

// Delete hard-deletes a user by ID. Returns false when the ID does not exist.
func (r *UserRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, storeErr("delete user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("delete user", err)
	}

	return rows > 0, nil
}

// List retrieves all users in insertion order
func (r *UserRepository) List() ([]*models.User, error) {
	query := `
		SELECT id, sequence, username, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, storeErr("query users", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := r.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}

	return users, nil
}

func (r *UserRepository) scan(scan func(...any) error) (*models.User, error) {
	var (
		id           string
		sequence     int
		username     string
		email        string
		passwordHash string
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := scan(&id, &sequence, &username, &email, &passwordHash, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user", shared.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("scan user", err)
	}

	user := models.NewUser(sequence, username, email, passwordHash)
	user.SetID(id)
	user.SetCreatedAt(createdAt)
	user.SetUpdatedAt(updatedAt)

	return user, nil
}
