package models

import (
	"fmt"
)

var (
	_ Model = (*User)(nil)
	_ Model = (*Mood)(nil)
	_ Model = (*Song)(nil)
	_ Model = (*Playlist)(nil)
	_ Model = (*PlaylistSong)(nil)
	_ Model = (*ChatLog)(nil)
)

// User represents an account with a hashed credential.
//
// The password hash is write-only from the API's perspective: it never
// appears in a view struct.
type User struct {
	base
	username     string
	email        string
	passwordHash string
}

// NewUser creates a User. The passwordHash must already be hashed; the
// catalog engine is responsible for hashing before construction.
func NewUser(sequence int, username, email, passwordHash string) *User {
	return &User{base: newBase(sequence), username: username, email: email, passwordHash: passwordHash}
}

func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) SetUsername(v string)     { u.username = v }
func (u *User) SetEmail(v string)        { u.email = v }
func (u *User) SetPasswordHash(v string) { u.passwordHash = v }

func (u *User) Validate() error {
	if u.username == "" {
		return fmt.Errorf("user username is required")
	}
	if u.email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.passwordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	return nil
}

// View returns the API representation of the user, omitting the credential.
func (u *User) View() UserView {
	return UserView{ID: u.id, Username: u.username, Email: u.email}
}

// Mood represents a named category used to tag songs (e.g., "Chill").
type Mood struct {
	base
	name        string
	description string
}

func NewMood(sequence int, name, description string) *Mood {
	return &Mood{base: newBase(sequence), name: name, description: description}
}

func (m *Mood) Name() string        { return m.name }
func (m *Mood) Description() string { return m.description }

func (m *Mood) SetName(v string)        { m.name = v }
func (m *Mood) SetDescription(v string) { m.description = v }

func (m *Mood) Validate() error {
	if m.name == "" {
		return fmt.Errorf("mood name is required")
	}
	return nil
}

func (m *Mood) View() MoodView {
	return MoodView{ID: m.id, Name: m.name, Description: nullable(m.description)}
}

// Song represents a catalog entry tagged with exactly one mood.
type Song struct {
	base
	title      string
	artist     string
	album      string
	moodID     string
	spotifyURL string
}

func NewSong(sequence int, title, artist, album, moodID, spotifyURL string) *Song {
	return &Song{
		base:       newBase(sequence),
		title:      title,
		artist:     artist,
		album:      album,
		moodID:     moodID,
		spotifyURL: spotifyURL,
	}
}

func (s *Song) Title() string      { return s.title }
func (s *Song) Artist() string     { return s.artist }
func (s *Song) Album() string      { return s.album }
func (s *Song) MoodID() string     { return s.moodID }
func (s *Song) SpotifyURL() string { return s.spotifyURL }

func (s *Song) SetTitle(v string)      { s.title = v }
func (s *Song) SetArtist(v string)     { s.artist = v }
func (s *Song) SetAlbum(v string)      { s.album = v }
func (s *Song) SetMoodID(v string)     { s.moodID = v }
func (s *Song) SetSpotifyURL(v string) { s.spotifyURL = v }

func (s *Song) Validate() error {
	if s.title == "" {
		return fmt.Errorf("song title is required")
	}
	if s.artist == "" {
		return fmt.Errorf("song artist is required")
	}
	if s.moodID == "" {
		return fmt.Errorf("song mood_id is required")
	}
	return nil
}

func (s *Song) View() SongView {
	return SongView{
		ID:         s.id,
		Title:      s.title,
		Artist:     s.artist,
		Album:      nullable(s.album),
		MoodID:     s.moodID,
		SpotifyURL: nullable(s.spotifyURL),
	}
}

// Playlist represents a user-owned, named collection of songs.
// Created empty; songs are attached afterward via [PlaylistSong] links.
type Playlist struct {
	base
	userID string
	name   string
}

func NewPlaylist(sequence int, userID, name string) *Playlist {
	return &Playlist{base: newBase(sequence), userID: userID, name: name}
}

func (p *Playlist) UserID() string { return p.userID }
func (p *Playlist) Name() string   { return p.name }

func (p *Playlist) SetUserID(v string) { p.userID = v }
func (p *Playlist) SetName(v string)   { p.name = v }

func (p *Playlist) Validate() error {
	if p.userID == "" {
		return fmt.Errorf("playlist user_id is required")
	}
	if p.name == "" {
		return fmt.Errorf("playlist name is required")
	}
	return nil
}

// PlaylistSong links one playlist to one song. The same song may be linked
// to a playlist more than once; the sequence preserves attach order.
type PlaylistSong struct {
	base
	playlistID string
	songID     string
}

func NewPlaylistSong(sequence int, playlistID, songID string) *PlaylistSong {
	return &PlaylistSong{base: newBase(sequence), playlistID: playlistID, songID: songID}
}

func (ps *PlaylistSong) PlaylistID() string { return ps.playlistID }
func (ps *PlaylistSong) SongID() string     { return ps.songID }

func (ps *PlaylistSong) Validate() error {
	if ps.playlistID == "" {
		return fmt.Errorf("playlist link playlist_id is required")
	}
	if ps.songID == "" {
		return fmt.Errorf("playlist link song_id is required")
	}
	return nil
}

// ChatLog records one mood-detection exchange for a user.
type ChatLog struct {
	base
	userID         string
	question       string
	response       string
	detectedMoodID string
}

func NewChatLog(sequence int, userID, question, response, detectedMoodID string) *ChatLog {
	return &ChatLog{
		base:           newBase(sequence),
		userID:         userID,
		question:       question,
		response:       response,
		detectedMoodID: detectedMoodID,
	}
}

func (c *ChatLog) UserID() string         { return c.userID }
func (c *ChatLog) Question() string       { return c.question }
func (c *ChatLog) Response() string       { return c.response }
func (c *ChatLog) DetectedMoodID() string { return c.detectedMoodID }

func (c *ChatLog) SetResponse(v string)       { c.response = v }
func (c *ChatLog) SetDetectedMoodID(v string) { c.detectedMoodID = v }

func (c *ChatLog) Validate() error {
	if c.userID == "" {
		return fmt.Errorf("chat log user_id is required")
	}
	if c.question == "" {
		return fmt.Errorf("chat log question is required")
	}
	return nil
}

// nullable maps the empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
