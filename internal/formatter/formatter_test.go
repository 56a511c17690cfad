package formatter

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/moodify/internal/models"
	testhelpers "github.com/desertthunder/moodify/internal/testing"
)

func str(s string) *string { return &s }

func samplePlaylist() *models.PlaylistDetail {
	return &models.PlaylistDetail{
		ID:     "playlist-1",
		UserID: "user-1",
		Name:   "Evening Wind Down",
		Songs: []models.PlaylistEntry{
			{
				SongID:     "song-1",
				Title:      "Weightless",
				Artist:     "Marconi Union",
				Album:      str("Ambient Transmissions Vol. 2"),
				SpotifyURL: str("https://open.spotify.com/track/abc"),
			},
			{
				SongID: "song-2",
				Title:  "Porcelain",
				Artist: "Moby",
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(samplePlaylist())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][1] != "Title" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][1] != "Weightless" || records[1][4] != "https://open.spotify.com/track/abc" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][3] != "" {
		t.Errorf("expected empty album for second row, got %q", records[2][3])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(samplePlaylist())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "# Evening Wind Down") {
		t.Error("expected playlist heading")
	}
	if !strings.Contains(out, "1. Marconi Union - Weightless (Ambient Transmissions Vol. 2) [listen](https://open.spotify.com/track/abc)") {
		t.Errorf("unexpected first entry, output:\n%s", out)
	}
	if !strings.Contains(out, "2. Moby - Porcelain\n") {
		t.Errorf("unexpected second entry, output:\n%s", out)
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(samplePlaylist())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "Playlist: Evening Wind Down") {
		t.Error("expected playlist name")
	}
	if !strings.Contains(out, "Songs: 2") {
		t.Error("expected song count")
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("ToFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.md")

		written, err := WriteExport(samplePlaylist(), "markdown", path)
		if err != nil {
			t.Fatalf("failed to write export: %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}

		testhelpers.AssertFileExists(t, path)
		if !strings.Contains(testhelpers.MustReadFile(t, path), "# Evening Wind Down") {
			t.Error("expected markdown content in file")
		}
	})

	t.Run("DefaultFilename", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		written, err := WriteExport(samplePlaylist(), "csv", "")
		if err != nil {
			t.Fatalf("failed to write export: %v", err)
		}
		if written != "playlist-1_songs.csv" {
			t.Errorf("unexpected default filename: %s", written)
		}
		testhelpers.AssertFileExists(t, written)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := WriteExport(samplePlaylist(), "xml", ""); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
