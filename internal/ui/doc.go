// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view browser over the catalog:
//  1. [MoodListView] : Browse the available moods
//  2. [SongListView] : Browse the songs tagged with the selected mood
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Data is fetched from the catalog engine via tea commands so the UI never blocks.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
