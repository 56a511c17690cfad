package models

// UserView is the API representation of a user. The credential never crosses
// the boundary.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MoodView is the API representation of a mood.
type MoodView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// SongView is the API representation of a song.
type SongView struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      *string `json:"album"`
	MoodID     string  `json:"mood_id"`
	SpotifyURL *string `json:"spotify_url"`
}

// PlaylistEntry is one row of the playlist_songs to songs join: a song as it
// appears inside a playlist, in attach order.
type PlaylistEntry struct {
	LinkID     string  `json:"link_id"`
	SongID     string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      *string `json:"album,omitempty"`
	SpotifyURL *string `json:"spotify_url"`
}

// PlaylistDetail is a playlist with its joined song entries.
type PlaylistDetail struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Songs  []PlaylistEntry `json:"songs"`
}

// ChatLogView is the API representation of a chat log entry.
type ChatLogView struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Question       string  `json:"question"`
	Response       string  `json:"response"`
	DetectedMoodID *string `json:"detected_mood_id"`
}

// TrackMatch is the result of an external catalog lookup: canonical metadata
// and a playable reference URL for the best textual match.
type TrackMatch struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	SpotifyURL string `json:"spotify_url"`
}
