package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/moodify/internal/models"
)

// moodItem wraps a mood for the bubbles list component.
type moodItem struct {
	mood models.MoodView
}

func (i moodItem) Title() string       { return i.mood.Name }
func (i moodItem) Description() string { return i.mood.ID }
func (i moodItem) FilterValue() string { return i.mood.Name }

// songItem wraps a song for the bubbles list component.
type songItem struct {
	song models.SongView
}

func (i songItem) Title() string { return i.song.Title }

func (i songItem) Description() string {
	desc := i.song.Artist
	if i.song.Album != nil {
		desc = fmt.Sprintf("%s — %s", i.song.Artist, *i.song.Album)
	}
	if i.song.SpotifyURL != nil {
		desc += " ♪"
	}
	return desc
}

func (i songItem) FilterValue() string { return i.song.Title }

func moodItems(moods []models.MoodView) []list.Item {
	items := make([]list.Item, len(moods))
	for idx, m := range moods {
		items[idx] = moodItem{mood: m}
	}
	return items
}

func songItems(songs []models.SongView) []list.Item {
	items := make([]list.Item, len(songs))
	for idx, s := range songs {
		items[idx] = songItem{song: s}
	}
	return items
}
