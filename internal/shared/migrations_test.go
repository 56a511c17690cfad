package shared

import (
	"database/sql"
	"testing"
)

func setupMigrationDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	if err != nil {
		t.Fatalf("failed to check table %s: %v", name, err)
	}
	return count > 0
}

func TestRunMigrations(t *testing.T) {
	t.Run("CreatesTables", func(t *testing.T) {
		db := setupMigrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"users", "moods", "songs", "playlists", "playlist_songs", "chat_logs", "schema_migrations"} {
			if !tableExists(t, db, table) {
				t.Errorf("expected table %s to exist", table)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		db := setupMigrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to count migrations: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 recorded migration, got %d", count)
		}
	})

	t.Run("SeedsSequences", func(t *testing.T) {
		db := setupMigrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"users_sequence", "moods_sequence", "songs_sequence", "playlists_sequence", "playlist_songs_sequence", "chat_logs_sequence"} {
			var value int
			if err := db.QueryRow("SELECT value FROM " + table + " WHERE id = 1").Scan(&value); err != nil {
				t.Errorf("sequence table %s not seeded: %v", table, err)
			}
		}
	})
}

func TestRollbackMigration(t *testing.T) {
	t.Run("DropsTables", func(t *testing.T) {
		db := setupMigrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to roll back: %v", err)
		}

		if tableExists(t, db, "moods") {
			t.Error("expected moods table to be dropped")
		}
	})

	t.Run("NothingToRollback", func(t *testing.T) {
		db := setupMigrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to roll back: %v", err)
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing is applied")
		}
	})
}
