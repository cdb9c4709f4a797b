package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/store"
)

// playlistDetailState shows one playlist's tracks with add/remove editing.
type playlistDetailState struct {
	playlist api.Playlist
	cursor   int
	loading  bool

	picking    bool // choosing a track to add from the track library
	pickCursor int
}

func newPlaylistDetailState(p api.Playlist) playlistDetailState {
	return playlistDetailState{playlist: p, loading: true}
}

func (m Model) updatePlaylistDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.playlistDetail

	if d.picking {
		return m.updateTrackPicker(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewPlaylists
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if d.cursor < len(d.playlist.Tracks)-1 {
			d.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		d.loading = true
		return m, m.reloadPlaylistCmd(d.playlist.ID)
	case key.Matches(msg, m.keys.New):
		d.picking = true
		d.pickCursor = 0
		if m.opts.Store.Tracks.ShouldFetch(store.CooldownPaginated) {
			return m, m.fetchTracksCmd()
		}
	case key.Matches(msg, m.keys.Delete):
		if d.cursor < len(d.playlist.Tracks) {
			track := d.playlist.Tracks[d.cursor]
			playlistID := d.playlist.ID
			m.confirm = &confirmState{
				prompt:  fmt.Sprintf("Remove %q from this playlist?", track.Title),
				confirm: func() tea.Cmd { return m.removePlaylistTrackCmd(playlistID, track.ID) },
			}
		}
	}
	return m, nil
}

func (m Model) updateTrackPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.playlistDetail
	library := m.opts.Store.Tracks.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Back):
		d.picking = false
	case key.Matches(msg, m.keys.Up):
		if d.pickCursor > 0 {
			d.pickCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if d.pickCursor < len(library.Items)-1 {
			d.pickCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if d.pickCursor < len(library.Items) {
			track := library.Items[d.pickCursor]
			d.picking = false
			d.loading = true
			return m, m.addPlaylistTracksCmd(d.playlist.ID, []string{track.ID})
		}
	}
	return m, nil
}

func (m Model) resolvePlaylistReloaded(msg playlistReloadedMsg) (Model, tea.Cmd) {
	m.playlistDetail.loading = false
	if msg.err != nil {
		return m, nil
	}
	m.playlistDetail.playlist = msg.playlist
	if m.playlistDetail.cursor >= len(msg.playlist.Tracks) {
		m.playlistDetail.cursor = 0
	}
	// Counts and durations changed; the list view refetches on next visit.
	m.opts.Store.Playlists.Invalidate()
	return m, nil
}

func (m Model) viewPlaylistDetail() string {
	d := m.playlistDetail
	p := d.playlist

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Playlist: " + p.Title))
	b.WriteString("\n")

	visibility := "private"
	if p.IsPublic {
		visibility = "public"
	}
	meta := fmt.Sprintf("%d tracks  •  %s", len(p.Tracks), visibility)
	if p.Duration != "" {
		meta += "  •  " + p.Duration
	}
	b.WriteString(m.styles.MutedText.Render(meta))
	b.WriteString("\n\n")

	if d.picking {
		b.WriteString(m.styles.AccentText.Render("Add track (enter to add, esc to cancel)"))
		b.WriteString("\n\n")
		library := m.opts.Store.Tracks.Snapshot()
		if library.Loading && len(library.Items) == 0 {
			b.WriteString(m.spinner.View())
			b.WriteString(m.styles.MutedText.Render(" loading tracks..."))
		} else if len(library.Items) == 0 {
			b.WriteString(m.styles.MutedText.Render("No tracks in the library."))
		}
		for i, t := range library.Items {
			line := fmt.Sprintf("%-40s %-20s", truncate(t.Title, 40), truncate(t.Author, 20))
			if i == d.pickCursor {
				b.WriteString(m.styles.Selected.Render("▸ " + line))
			} else {
				b.WriteString(m.styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	if d.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" refreshing..."))
		b.WriteString("\n\n")
	}

	if len(p.Tracks) == 0 {
		b.WriteString(m.styles.MutedText.Render("No tracks. Press n to add one."))
		b.WriteString("\n")
	}
	for i, t := range p.Tracks {
		line := fmt.Sprintf("%2d. %-40s %-20s %8s", i+1, truncate(t.Title, 40), truncate(t.Author, 20), t.Duration)
		if i == d.cursor {
			b.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
