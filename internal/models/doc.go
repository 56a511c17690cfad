// Package models defines domain entities and persistence interfaces for the Moodify catalog service.
//
// The package contains two categories of types:
//
// 1. Persistent entities: database-backed models with full lifecycle management
//   - [User] : account records with hashed credentials
//   - [Mood] : named categories used to tag songs
//   - [Song] : catalog entries, each tagged with exactly one mood
//   - [Playlist] : user-owned song collections
//   - [PlaylistSong] : junction rows linking playlists to songs in attach order
//   - [ChatLog] : audit records of mood-detection conversations
//
// 2. Views and patches: lightweight structs crossing the service boundary
//   - per-entity view structs with JSON tags for API payloads
//   - [TrackMatch] : the result of an external catalog lookup
//   - per-entity patch structs whose pointer fields overwrite stored fields when set
//
// All persistent entities implement the [Model] interface providing ID generation,
// timestamps, and validation. The [Repository] interface defines the CRUD
// operations repositories implement for database access.
package models
