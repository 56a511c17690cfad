package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodify/internal/catalog"
	"github.com/desertthunder/moodify/internal/shared"
)

// API exposes the catalog workflows as JSON endpoints. Every response uses
// the uniform envelope: {"status": "success", <key>: payload} on success,
// {"status": "error", "message": ...} on failure.
type API struct {
	engine *catalog.Engine
	logger *log.Logger
}

// NewAPI creates the endpoint set over the given engine.
func NewAPI(engine *catalog.Engine, logger *log.Logger) *API {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &API{engine: engine, logger: logger}
}

// Register wires every endpoint into the router.
func (a *API) Register(r Router) {
	r.Handle(http.MethodGet, "/moods/", http.HandlerFunc(a.ListMoods))
	r.Handle(http.MethodGet, "/songs/{mood_id}", http.HandlerFunc(a.ListSongsByMood))
	r.Handle(http.MethodPost, "/songs/", http.HandlerFunc(a.AddSong))
	r.Handle(http.MethodPost, "/playlists/", http.HandlerFunc(a.CreatePlaylist))
	r.Handle(http.MethodGet, "/playlists/{playlist_id}", http.HandlerFunc(a.GetPlaylist))
	r.Handle(http.MethodPost, "/users/", http.HandlerFunc(a.CreateUser))
	r.Handler(&HealthHandler{})
}

// songRequest is the POST /songs/ body.
type songRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	MoodID string `json:"mood_id"`
	Album  string `json:"album"`
}

// playlistRequest is the POST /playlists/ body. Song IDs are optional and
// attached in order after creation.
type playlistRequest struct {
	UserID  string   `json:"user_id"`
	Name    string   `json:"name"`
	SongIDs []string `json:"song_ids"`
}

// userRequest is the POST /users/ body.
type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListMoods handles GET /moods/
func (a *API) ListMoods(w http.ResponseWriter, req *http.Request) {
	moods, err := a.engine.ListMoods(req.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "moods", moods)
}

// ListSongsByMood handles GET /songs/{mood_id}
func (a *API) ListSongsByMood(w http.ResponseWriter, req *http.Request) {
	moodID := req.PathValue("mood_id")

	songs, err := a.engine.ListSongsForMood(req.Context(), moodID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "songs", songs)
}

// AddSong handles POST /songs/
func (a *API) AddSong(w http.ResponseWriter, req *http.Request) {
	var body songRequest
	if err := decodeJSON(req, &body); err != nil {
		a.writeError(w, err)
		return
	}

	song, err := a.engine.AddSongWithEnrichment(req.Context(), body.Title, body.Artist, body.MoodID, body.Album)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "song", song)
}

// CreatePlaylist handles POST /playlists/
//
// Creates the playlist, attaches any requested songs in order, then responds
// with the full detail.
func (a *API) CreatePlaylist(w http.ResponseWriter, req *http.Request) {
	var body playlistRequest
	if err := decodeJSON(req, &body); err != nil {
		a.writeError(w, err)
		return
	}

	playlist, err := a.engine.CreatePlaylist(req.Context(), body.UserID, body.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if len(body.SongIDs) > 0 {
		if _, err := a.engine.AttachSongsToPlaylist(req.Context(), playlist.ID(), body.SongIDs); err != nil {
			a.writeError(w, err)
			return
		}
	}

	detail, err := a.engine.GetPlaylistDetails(req.Context(), playlist.ID())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "playlist", detail)
}

// GetPlaylist handles GET /playlists/{playlist_id}
func (a *API) GetPlaylist(w http.ResponseWriter, req *http.Request) {
	playlistID := req.PathValue("playlist_id")

	detail, err := a.engine.GetPlaylistDetails(req.Context(), playlistID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "playlist", detail)
}

// CreateUser handles POST /users/
func (a *API) CreateUser(w http.ResponseWriter, req *http.Request) {
	var body userRequest
	if err := decodeJSON(req, &body); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.engine.CreateUser(req.Context(), body.Username, body.Email, body.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, "user", user)
}

// writeSuccess writes the uniform success envelope.
func (a *API) writeSuccess(w http.ResponseWriter, key string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	envelope := map[string]any{"status": "success", key: payload}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		a.logger.Error("failed to encode response", "error", err)
	}
}

// writeError classifies the error and writes the uniform failure envelope.
// Bad input is the client's fault; a missing record on a fetch is 404;
// everything else is a server-side failure.
func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		a.logger.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := map[string]any{"status": "error", "message": err.Error()}
	if encodeErr := json.NewEncoder(w).Encode(envelope); encodeErr != nil {
		a.logger.Error("failed to encode error response", "error", encodeErr)
	}
}

// decodeJSON parses the request body, reporting malformed payloads as input
// errors.
func decodeJSON(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", shared.ErrInvalidInput, err)
	}
	return nil
}

// HealthHandler answers liveness probes.
type HealthHandler struct{}

func (h *HealthHandler) Routes() []string { return []string{"/health"} }

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
