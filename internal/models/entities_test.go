package models

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		model Model
		valid bool
	}{
		{"ValidUser", NewUser(1, "alice", "alice@example.com", "hash"), true},
		{"UserMissingEmail", NewUser(1, "alice", "", "hash"), false},
		{"UserMissingUsername", NewUser(1, "", "alice@example.com", "hash"), false},
		{"ValidMood", NewMood(1, "Chill", ""), true},
		{"MoodMissingName", NewMood(1, "", "desc"), false},
		{"ValidSong", NewSong(1, "Weightless", "Marconi Union", "", "mood-1", ""), true},
		{"SongMissingTitle", NewSong(1, "", "Artist", "", "mood-1", ""), false},
		{"SongMissingMood", NewSong(1, "Title", "Artist", "", "", ""), false},
		{"ValidPlaylist", NewPlaylist(1, "user-1", "Mix"), true},
		{"PlaylistMissingOwner", NewPlaylist(1, "", "Mix"), false},
		{"ValidChatLog", NewChatLog(1, "user-1", "how are you?", "", ""), true},
		{"ChatLogMissingQuestion", NewChatLog(1, "user-1", "", "", ""), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSongView(t *testing.T) {
	t.Run("OptionalFieldsNil", func(t *testing.T) {
		song := NewSong(1, "Weightless", "Marconi Union", "", "mood-1", "")
		song.SetID("song-1")

		view := song.View()
		if view.Album != nil {
			t.Errorf("expected nil album, got %v", *view.Album)
		}
		if view.SpotifyURL != nil {
			t.Errorf("expected nil URL, got %v", *view.SpotifyURL)
		}
	})

	t.Run("OptionalFieldsSet", func(t *testing.T) {
		song := NewSong(1, "Weightless", "Marconi Union", "Album", "mood-1", "https://open.spotify.com/track/abc")
		view := song.View()

		if view.Album == nil || *view.Album != "Album" {
			t.Errorf("expected album, got %v", view.Album)
		}
		if view.SpotifyURL == nil {
			t.Error("expected URL")
		}
	})
}

func TestUserViewOmitsCredential(t *testing.T) {
	user := NewUser(1, "alice", "alice@example.com", "secret-hash")
	user.SetID("user-1")

	view := user.View()
	if view.ID != "user-1" || view.Username != "alice" || view.Email != "alice@example.com" {
		t.Errorf("unexpected view: %+v", view)
	}
}
