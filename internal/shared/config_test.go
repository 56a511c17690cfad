package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Path != "./moodify.db" {
		t.Errorf("expected default database path ./moodify.db, got %s", config.Database.Path)
	}
	if config.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", config.Server.Port)
	}
	if config.Enrichment.TimeoutSeconds != 5 {
		t.Errorf("expected default lookup timeout 5s, got %d", config.Enrichment.TimeoutSeconds)
	}
	if config.Enrichment.RateLimit != 5.0 {
		t.Errorf("expected default rate limit 5.0, got %f", config.Enrichment.RateLimit)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("ValidFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.spotify]
client_id = "abc"
client_secret = "xyz"

[database]
path = "/tmp/test.db"

[server]
host = "0.0.0.0"
port = 9000
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Credentials.Spotify.ClientID != "abc" {
			t.Errorf("expected client_id abc, got %s", config.Credentials.Spotify.ClientID)
		}
		if config.Database.Path != "/tmp/test.db" {
			t.Errorf("expected database path /tmp/test.db, got %s", config.Database.Path)
		}
		if config.Server.Port != 9000 {
			t.Errorf("expected port 9000, got %d", config.Server.Port)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed file")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("CreatesFromTemplate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created config does not load: %v", err)
		}
		if config.Database.Path != "./moodify.db" {
			t.Errorf("unexpected database path: %s", config.Database.Path)
		}
	})

	t.Run("RefusesOverwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when config already exists")
		}
	})
}
