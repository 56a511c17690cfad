// package formatter provides functions to export playlist details to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/desertthunder/moodify/internal/models"
)

// deref returns the string behind an optional field, or empty.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportToCSV converts a PlaylistDetail to CSV format with columns: ID, Title, Artist, Album, SpotifyURL
func ExportToCSV(detail *models.PlaylistDetail) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "SpotifyURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range detail.Songs {
		record := []string{
			entry.SongID,
			entry.Title,
			entry.Artist,
			deref(entry.Album),
			deref(entry.SpotifyURL),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a PlaylistDetail to Markdown format
func ExportToMarkdown(detail *models.PlaylistDetail) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", detail.Name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(detail.Songs)))

	buf.WriteString("## Songs\n\n")
	for i, entry := range detail.Songs {
		albumPart := ""
		if album := deref(entry.Album); album != "" {
			albumPart = fmt.Sprintf(" (%s)", album)
		}
		line := fmt.Sprintf("%d. %s - %s%s", i+1, entry.Artist, entry.Title, albumPart)
		if url := deref(entry.SpotifyURL); url != "" {
			line = fmt.Sprintf("%s [listen](%s)", line, url)
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistDetail to plain text format
func ExportToText(detail *models.PlaylistDetail) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", detail.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(detail.Songs)))

	for i, entry := range detail.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, entry.Artist, entry.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport renders the detail in the requested format and writes it to
// path, defaulting the filename to the playlist ID.
func WriteExport(detail *models.PlaylistDetail, format, path string) (string, error) {
	var data []byte
	var err error
	var ext string

	switch format {
	case "csv":
		data, err = ExportToCSV(detail)
		ext = "csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(detail)
		ext = "md"
	case "text", "txt", "":
		data, err = ExportToText(detail)
		ext = "txt"
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}

	if err != nil {
		return "", err
	}

	if path == "" {
		path = fmt.Sprintf("%s_songs.%s", detail.ID, ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
