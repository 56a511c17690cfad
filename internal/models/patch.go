package models

// Patch structs describe partial updates. Every non-nil field overwrites the
// corresponding stored field; nil fields are left untouched.

// UserPatch is a partial update for a user record.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// MoodPatch is a partial update for a mood record.
type MoodPatch struct {
	Name        *string
	Description *string
}

// SongPatch is a partial update for a song record.
type SongPatch struct {
	Title      *string
	Artist     *string
	Album      *string
	MoodID     *string
	SpotifyURL *string
}

// PlaylistPatch is a partial update for a playlist record.
type PlaylistPatch struct {
	Name *string
}

// ChatLogPatch is a partial update for a chat log record.
type ChatLogPatch struct {
	Response       *string
	DetectedMoodID *string
}
