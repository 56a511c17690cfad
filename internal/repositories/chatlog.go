package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/moodify/internal/models"
	"github.com/desertthunder/moodify/internal/shared"
)

// ChatLogRepository implements [models.Repository] for [models.ChatLog]
// persistence. Chat logs are append-mostly audit records of mood detection
// conversations.
type ChatLogRepository struct {
	db *sql.DB
}

// NewChatLogRepository creates a new ChatLogRepository with the given database connection
func NewChatLogRepository(db *sql.DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Create inserts a new chat log into the database with generated ID and sequence
func (r *ChatLogRepository) Create(chatLog *models.ChatLog) error {
	sequence, err := NextSequence(r.db, "chat_logs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	chatLog.SetID(id)
	chatLog.SetSequence(sequence)

	if err := chatLog.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO chat_logs (id, sequence, user_id, question, response, detected_mood_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		chatLog.UserID(),
		chatLog.Question(),
		chatLog.Response(),
		nullString(chatLog.DetectedMoodID()),
		chatLog.CreatedAt(),
		chatLog.UpdatedAt(),
	)
	if err != nil {
		return storeErr("insert chat log", err)
	}

	return nil
}

// Get retrieves a chat log by ID
func (r *ChatLogRepository) Get(id string) (*models.ChatLog, error) {
	query := `
		SELECT id, sequence, user_id, question, response, detected_mood_id, created_at, updated_at
		FROM chat_logs
		WHERE id = ?
	`

	return r.scan(r.db.QueryRow(query, id).Scan)
}

// Patch applies a partial update. Returns the updated chat log, or nil when
// the ID does not exist.
func (r *ChatLogRepository) Patch(id string, patch models.ChatLogPatch) (*models.ChatLog, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Response != nil {
		sets = append(sets, "response = ?")
		args = append(args, *patch.Response)
	}
	if patch.DetectedMoodID != nil {
		sets = append(sets, "detected_mood_id = ?")
		args = append(args, nullString(*patch.DetectedMoodID))
	}

	args = append(args, id)
	query := "UPDATE chat_logs SET " + joinSets(sets) + " WHERE id = ?"

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, storeErr("update chat log", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update chat log", err)
	}
	if rows == 0 {
		return nil, nil
	}

	return r.Get(id)
}

// Delete hard-deletes a chat log by ID. Returns false when the ID does not exist.
func (r *ChatLogRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM chat_logs WHERE id = ?", id)
	if err != nil {
		return false, storeErr("delete chat log", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("delete chat log", err)
	}

	return rows > 0, nil
}

// List retrieves chat logs in insertion order, optionally filtered by user.
func (r *ChatLogRepository) List(userID string) ([]*models.ChatLog, error) {
	query := `
		SELECT id, sequence, user_id, question, response, detected_mood_id, created_at, updated_at
		FROM chat_logs
	`

	args := []any{}

	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storeErr("query chat logs", err)
	}
	defer rows.Close()

	var chatLogs []*models.ChatLog
	for rows.Next() {
		chatLog, err := r.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		chatLogs = append(chatLogs, chatLog)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate chat logs", err)
	}

	return chatLogs, nil
}

func (r *ChatLogRepository) scan(scan func(...any) error) (*models.ChatLog, error) {
	var (
		id             string
		sequence       int
		userID         string
		question       string
		response       string
		detectedMoodID sql.NullString
		createdAt      time.Time
		updatedAt      time.Time
	)

	err := scan(&id, &sequence, &userID, &question, &response, &detectedMoodID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: chat log", shared.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("scan chat log", err)
	}

	chatLog := models.NewChatLog(sequence, userID, question, response, detectedMoodID.String)
	chatLog.SetID(id)
	chatLog.SetCreatedAt(createdAt)
	chatLog.SetUpdatedAt(updatedAt)

	return chatLog, nil
}
