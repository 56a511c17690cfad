// package repositories provides persistence layer implementations for all model types.
//
// Each repository implements models.Repository[T] for a specific entity type,
// handling CRUD operations, typed partial updates, and sequence generation.
// Insert and connectivity failures wrap [shared.ErrStore]; reads of missing
// records wrap [shared.ErrNotFound]; patches and deletes of missing records
// report not-found as an empty result rather than an error.
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/moodify/internal/shared"
)

// NextSequence atomically increments and returns the next sequence number for the given table.
//
// Sequence numbers provide insertion ordering for entities. List operations
// sort by sequence, which is what makes playlist contents come back in attach
// order.
func NextSequence(db *sql.DB, table string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequenceTable := table + "_sequence"

	_, err = tx.Exec(fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE id = 1", sequenceTable))
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	var sequence int
	err = tx.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE id = 1", sequenceTable)).Scan(&sequence)
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence value: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}

// storeErr wraps a driver error in the store error taxonomy.
func storeErr(action string, err error) error {
	return fmt.Errorf("%w: %s: %v", shared.ErrStore, action, err)
}

// nullString maps the empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// joinSets joins SET clause fragments for a partial update.
func joinSets(sets []string) string {
	out := ""
	for i, s := range sets {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
