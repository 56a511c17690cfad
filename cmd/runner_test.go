package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/moodify/internal/shared"
	testhelpers "github.com/desertthunder/moodify/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestNewRunner(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})

		if r.config == nil {
			t.Error("expected default config")
		}
		if r.logger == nil {
			t.Error("expected default logger")
		}
		if r.output != os.Stdout {
			t.Error("expected stdout as default output")
		}
	})

	t.Run("RegisterCommands", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})
		commands := r.register()

		if len(commands) != 8 {
			t.Fatalf("expected 8 top-level commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"serve", "setup", "seed", "moods", "songs", "playlists", "users", "tui"} {
			if !names[want] {
				t.Errorf("missing command %s", want)
			}
		}
	})
}

func TestRunnerOutput(t *testing.T) {
	t.Run("WriteJSONCompact", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("WriteJSONPretty", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("WriteFailure", func(t *testing.T) {
		r := NewRunner(RunnerOpts{Output: &testhelpers.FWriter{}})

		if err := r.writeJSON(map[string]string{}, false); err == nil {
			t.Error("expected error from failing writer")
		}
		if err := r.writePlain("hello"); err == nil {
			t.Error("expected error from failing writer")
		}
	})
}

func TestSetupDatabase(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	r := NewRunner(RunnerOpts{Output: &buf, Logger: shared.NewLogger(&buf)})

	cmd := &cli.Command{
		Name:   "database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.SetupDatabase,
	}

	if err := cmd.Run(context.Background(), []string{"database"}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	testhelpers.AssertFileExists(t, "config.toml")
	testhelpers.AssertFileExists(t, "moodify.db")

	// applied migrations survive a reopen
	db, err := shared.NewDatabase(filepath.Join(".", "moodify.db"))
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("failed to query migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 applied migration, got %d", count)
	}
}
