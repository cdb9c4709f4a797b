package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/store"
)

func (m *Model) showPlaylists() tea.Cmd {
	m.view = viewPlaylists
	if m.opts.Store.Playlists.ShouldFetch(store.CooldownPaginated) {
		return m.fetchPlaylistsCmd()
	}
	return nil
}

func (m Model) updatePlaylists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.opts.Store.Playlists.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.playlists.move(-1, len(snap.Items))
	case key.Matches(msg, m.keys.Down):
		m.playlists.move(1, len(snap.Items))
	case key.Matches(msg, m.keys.Search):
		m.playlists.startSearch(snap.SearchTerm)
	case key.Matches(msg, m.keys.Refresh):
		m.opts.Store.Playlists.Invalidate()
		return m, m.fetchPlaylistsCmd()
	case key.Matches(msg, m.keys.NextPage):
		if pageDelta(m.opts.Store.Playlists, 1) {
			return m, m.fetchPlaylistsCmd()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if pageDelta(m.opts.Store.Playlists, -1) {
			return m, m.fetchPlaylistsCmd()
		}
	case key.Matches(msg, m.keys.New):
		m.playlistForm = newPlaylistFormState()
		m.view = viewPlaylistForm
	case key.Matches(msg, m.keys.Open):
		if m.playlists.cursor < len(snap.Items) {
			playlist := snap.Items[m.playlists.cursor]
			m.playlistDetail = newPlaylistDetailState(playlist)
			m.view = viewPlaylistDetail
			return m, m.reloadPlaylistCmd(playlist.ID)
		}
	case msg.String() == "e":
		if m.playlists.cursor < len(snap.Items) {
			m.playlistForm = editPlaylistFormState(snap.Items[m.playlists.cursor])
			m.view = viewPlaylistForm
		}
	case key.Matches(msg, m.keys.Delete):
		if m.playlists.cursor < len(snap.Items) {
			playlist := snap.Items[m.playlists.cursor]
			m.confirm = &confirmState{
				prompt:  fmt.Sprintf("Delete playlist %q? Tracks themselves are kept.", playlist.Title),
				confirm: func() tea.Cmd { return m.deletePlaylistCmd(playlist.ID) },
			}
		}
	}
	return m, nil
}

func (m Model) viewPlaylists() string {
	snap := m.opts.Store.Playlists.Snapshot()

	var rows strings.Builder
	for i, p := range snap.Items {
		visibility := "private"
		if p.IsPublic {
			visibility = "public"
		}
		line := fmt.Sprintf("%-36s %4d tracks  %-8s %s",
			truncate(p.Title, 36), p.TrackCount, visibility, truncate(strings.Join(p.Tags, ","), 24))
		if snap.Updating == p.ID {
			line += "  " + m.spinner.View()
		}
		if i == m.playlists.cursor {
			rows.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			rows.WriteString(m.styles.Text.Render("  " + line))
		}
		rows.WriteString("\n")
	}

	return m.renderListChrome("Playlists", m.playlists, listMetaOf(snap), rows.String())
}
