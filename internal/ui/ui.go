package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodify/internal/catalog"
	"github.com/desertthunder/moodify/internal/models"
)

// ViewState enumerates the browser's screens.
type ViewState int

const (
	MoodListView ViewState = iota
	SongListView
)

type moodsFetchedMsg struct {
	moods []models.MoodView
	err   error
}

type songsFetchedMsg struct {
	songs []models.SongView
	name  string
	err   error
}

// Model drives the two-view catalog browser.
type Model struct {
	ctx    context.Context
	engine *catalog.Engine

	view     ViewState
	moodList list.Model
	songList list.Model
	mood     string
	err      error

	keys keyMap
	help help.Model

	width  int
	height int
}

func NewModel(ctx context.Context, engine *catalog.Engine) Model {
	delegate := list.NewDefaultDelegate()
	moods := list.New(nil, delegate, 0, 0)
	moods.Title = "Moods"
	moods.Styles.Title = styles.title
	moods.SetShowHelp(false)

	songs := list.New(nil, delegate, 0, 0)
	songs.Styles.Title = styles.title
	songs.SetShowHelp(false)

	return Model{
		ctx:      ctx,
		engine:   engine,
		view:     MoodListView,
		moodList: moods,
		songList: songs,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetchMoods()
}

func (m Model) fetchMoods() tea.Cmd {
	return func() tea.Msg {
		moods, err := m.engine.ListMoods(m.ctx)
		return moodsFetchedMsg{moods: moods, err: err}
	}
}

func (m Model) fetchSongs(moodID, name string) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.engine.ListSongsForMood(m.ctx, moodID)
		return songsFetchedMsg{songs: songs, name: name, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.moodList.SetSize(msg.Width, msg.Height-4)
		m.songList.SetSize(msg.Width, msg.Height-4)
		return m, nil
	case moodsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.moodList.SetItems(moodItems(msg.moods))
		return m, nil
	case songsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mood = msg.name
		m.songList.Title = fmt.Sprintf("Songs — %s", msg.name)
		m.songList.SetItems(songItems(msg.songs))
		m.view = SongListView
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateList(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		if m.view == MoodListView {
			if item, ok := m.moodList.SelectedItem().(moodItem); ok {
				return m, m.fetchSongs(item.mood.ID, item.mood.Name)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.view == SongListView {
			m.view = MoodListView
			m.err = nil
		}
		return m, nil
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == MoodListView {
		m.moodList, cmd = m.moodList.Update(msg)
	} else {
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var body string
	if m.view == MoodListView {
		body = m.moodList.View()
	} else {
		body = m.songList.View()
	}

	if m.err != nil {
		body += "\n" + styles.err.Render(fmt.Sprintf("error: %v", m.err))
	}

	return body + "\n" + styles.help.Render(m.help.View(m.keys))
}
