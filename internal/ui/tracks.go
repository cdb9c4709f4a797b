package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/store"
)

func (m *Model) showTracks() tea.Cmd {
	m.view = viewTracks
	if m.opts.Store.Tracks.ShouldFetch(store.CooldownPaginated) {
		return m.fetchTracksCmd()
	}
	return nil
}

func (m Model) updateTracks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.opts.Store.Tracks.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.tracks.move(-1, len(snap.Items))
	case key.Matches(msg, m.keys.Down):
		m.tracks.move(1, len(snap.Items))
	case key.Matches(msg, m.keys.Search):
		m.tracks.startSearch(snap.SearchTerm)
	case key.Matches(msg, m.keys.Refresh):
		m.opts.Store.Tracks.Invalidate()
		return m, m.fetchTracksCmd()
	case key.Matches(msg, m.keys.NextPage):
		if pageDelta(m.opts.Store.Tracks, 1) {
			return m, m.fetchTracksCmd()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if pageDelta(m.opts.Store.Tracks, -1) {
			return m, m.fetchTracksCmd()
		}
	case key.Matches(msg, m.keys.New):
		m.trackForm = newTrackFormState()
		m.view = viewTrackForm
	case key.Matches(msg, m.keys.Open):
		if m.tracks.cursor < len(snap.Items) {
			m.trackForm = editTrackFormState(snap.Items[m.tracks.cursor])
			m.view = viewTrackForm
		}
	case key.Matches(msg, m.keys.Delete):
		if m.tracks.cursor < len(snap.Items) {
			track := snap.Items[m.tracks.cursor]
			m.confirm = &confirmState{
				prompt:  fmt.Sprintf("Delete track %q? Its audio stays on the media host.", track.Title),
				confirm: func() tea.Cmd { return m.deleteTrackCmd(track.ID) },
			}
		}
	}
	return m, nil
}

func (m Model) viewTracks() string {
	snap := m.opts.Store.Tracks.Snapshot()

	var rows strings.Builder
	for i, t := range snap.Items {
		line := fmt.Sprintf("%-36s %-20s %-16s %8s",
			truncate(t.Title, 36), truncate(t.Author, 20), truncate(t.Category, 16), t.Duration)
		if snap.Updating == t.ID {
			line += "  " + m.spinner.View()
		}
		if i == m.tracks.cursor {
			rows.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			rows.WriteString(m.styles.Text.Render("  " + line))
		}
		rows.WriteString("\n")
	}

	return m.renderListChrome("Tracks", m.tracks, listMetaOf(snap), rows.String())
}
