package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/aigen"
	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/mediahost"
	"github.com/tapedeck/greenroom/internal/store"
)

// Data messages. Fetch messages carry the generation token from BeginFetch so
// superseded responses are dropped on resolve.

type loginDoneMsg struct{ err error }

type dashboardRefreshedMsg struct{}

type pagesFetchedMsg struct {
	gen    uint64
	result store.Result[api.Page]
	err    error
}

type tracksFetchedMsg struct {
	gen    uint64
	result store.Result[api.Track]
	err    error
}

type playlistsFetchedMsg struct {
	gen    uint64
	result store.Result[api.Playlist]
	err    error
}

type mediaFetchedMsg struct {
	target mediaTarget
	gen    uint64
	reset  bool
	result store.Result[mediahost.Asset]
	err    error
}

type pageSavedMsg struct{ err error }
type pageDeletedMsg struct {
	id  string
	err error
}

type trackSavedMsg struct{ err error }
type trackDeletedMsg struct {
	id  string
	err error
}

type playlistSavedMsg struct{ err error }
type playlistDeletedMsg struct {
	id  string
	err error
}

type playlistReloadedMsg struct {
	playlist api.Playlist
	err      error
}

type mediaUploadedMsg struct {
	target mediaTarget
	err    error
}

type mediaDeletedMsg struct {
	target   mediaTarget
	publicID string
	err      error
}

type mediaRenamedMsg struct {
	target mediaTarget
	err    error
}

type aiGeneratedMsg struct {
	content string
	err     error
}

func (m Model) ctx() context.Context {
	if m.opts.Context != nil {
		return m.opts.Context
	}
	return context.Background()
}

// handleDataMsg resolves data messages against the store and view state.
func (m Model) handleDataMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return m.resolveLogin(msg)

	case dashboardRefreshedMsg:
		m.dash.refreshing = false
		return m, nil

	case pagesFetchedMsg:
		m.opts.Store.Pages.ResolveFetch(msg.gen, true, msg.result, msg.err)
		m.pages.clampCursor(len(m.opts.Store.Pages.Snapshot().Items))
		return m, nil

	case tracksFetchedMsg:
		m.opts.Store.Tracks.ResolveFetch(msg.gen, true, msg.result, msg.err)
		m.tracks.clampCursor(len(m.opts.Store.Tracks.Snapshot().Items))
		return m, nil

	case playlistsFetchedMsg:
		m.opts.Store.Playlists.ResolveFetch(msg.gen, true, msg.result, msg.err)
		m.playlists.clampCursor(len(m.opts.Store.Playlists.Snapshot().Items))
		return m, nil

	case mediaFetchedMsg:
		entry := m.mediaEntry(msg.target)
		entry.ResolveFetch(msg.gen, msg.reset, msg.result, msg.err)
		state := m.mediaStateFor(msg.target)
		state.clampCursor(len(entry.Snapshot().Items))
		return m, nil

	case pageSavedMsg:
		return m.resolvePageSaved(msg)
	case pageDeletedMsg:
		m.opts.Store.Pages.SetUpdating("")
		if msg.err == nil {
			m.opts.Store.Pages.RemoveWhere(func(p api.Page) bool { return p.ID == msg.id })
			m.pages.clampCursor(len(m.opts.Store.Pages.Snapshot().Items))
		}
		return m, nil

	case trackSavedMsg:
		return m.resolveTrackSaved(msg)
	case trackDeletedMsg:
		m.opts.Store.Tracks.SetUpdating("")
		if msg.err == nil {
			m.opts.Store.Tracks.RemoveWhere(func(t api.Track) bool { return t.ID == msg.id })
			m.tracks.clampCursor(len(m.opts.Store.Tracks.Snapshot().Items))
		}
		return m, nil

	case playlistSavedMsg:
		return m.resolvePlaylistSaved(msg)
	case playlistDeletedMsg:
		m.opts.Store.Playlists.SetUpdating("")
		if msg.err == nil {
			m.opts.Store.Playlists.RemoveWhere(func(p api.Playlist) bool { return p.ID == msg.id })
			m.playlists.clampCursor(len(m.opts.Store.Playlists.Snapshot().Items))
		}
		return m, nil

	case playlistReloadedMsg:
		return m.resolvePlaylistReloaded(msg)

	case mediaUploadedMsg:
		state := m.mediaStateFor(msg.target)
		state.uploading = false
		state.uploadErr = ""
		if msg.err != nil {
			state.uploadErr = msg.err.Error()
		}
		if msg.err == nil {
			// The host indexes new assets asynchronously; drop the cooldown so
			// the next visit refetches.
			m.mediaEntry(msg.target).Invalidate()
			return m, m.fetchMediaCmd(msg.target, true)
		}
		return m, nil

	case mediaDeletedMsg:
		entry := m.mediaEntry(msg.target)
		entry.SetUpdating("")
		if msg.err == nil {
			entry.RemoveWhere(func(a mediahost.Asset) bool { return a.PublicID == msg.publicID })
			m.mediaStateFor(msg.target).clampCursor(len(entry.Snapshot().Items))
		}
		return m, nil

	case mediaRenamedMsg:
		m.mediaEntry(msg.target).SetUpdating("")
		if msg.err == nil {
			m.mediaEntry(msg.target).Invalidate()
			return m, m.fetchMediaCmd(msg.target, true)
		}
		return m, nil

	case aiGeneratedMsg:
		return m.resolveAIGenerated(msg)

	case pagePreviewMsg:
		return m.resolvePagePreview(msg)

	case logsLoadedMsg:
		return m.resolveLogsLoaded(msg)
	}
	return m, nil
}

// Fetch commands

func (m *Model) fetchPagesCmd() tea.Cmd {
	entry := m.opts.Store.Pages
	snap := entry.Snapshot()
	gen := entry.BeginFetch(true)
	params := api.ListParams{
		Page:     snap.Pagination.Page,
		PageSize: snap.Pagination.PageSize,
		Search:   snap.SearchTerm,
	}
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		list, err := client.Pages().GetAll(ctx, params)
		return pagesFetchedMsg{
			gen:    gen,
			result: store.Result[api.Page]{Items: list.Items, TotalItems: list.Pagination.TotalItems},
			err:    err,
		}
	}
}

func (m *Model) fetchTracksCmd() tea.Cmd {
	entry := m.opts.Store.Tracks
	snap := entry.Snapshot()
	gen := entry.BeginFetch(true)
	params := api.ListParams{
		Page:     snap.Pagination.Page,
		PageSize: snap.Pagination.PageSize,
		Search:   snap.SearchTerm,
	}
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		list, err := client.Tracks().GetAll(ctx, params)
		return tracksFetchedMsg{
			gen:    gen,
			result: store.Result[api.Track]{Items: list.Items, TotalItems: list.Pagination.TotalItems},
			err:    err,
		}
	}
}

func (m *Model) fetchPlaylistsCmd() tea.Cmd {
	entry := m.opts.Store.Playlists
	snap := entry.Snapshot()
	gen := entry.BeginFetch(true)
	params := api.ListParams{
		Page:     snap.Pagination.Page,
		PageSize: snap.Pagination.PageSize,
		Search:   snap.SearchTerm,
	}
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		list, err := client.Playlists().GetAll(ctx, params)
		return playlistsFetchedMsg{
			gen:    gen,
			result: store.Result[api.Playlist]{Items: list.Items, TotalItems: list.Pagination.TotalItems},
			err:    err,
		}
	}
}

func (m *Model) fetchMediaCmd(target mediaTarget, reset bool) tea.Cmd {
	entry := m.mediaEntry(target)
	snap := entry.Snapshot()
	cursor := ""
	if !reset {
		cursor = snap.NextCursor
	}
	gen := entry.BeginFetch(reset)

	media := m.opts.Media
	ctx := m.ctx()
	kind := target.kind()
	pageSize := snap.Pagination.PageSize
	return func() tea.Msg {
		page, err := media.List(ctx, kind, pageSize, cursor)
		return mediaFetchedMsg{
			target: target,
			gen:    gen,
			reset:  reset,
			result: store.Result[mediahost.Asset]{
				Items:      page.Assets,
				NextCursor: page.NextCursor,
				HasMore:    page.HasMore,
			},
			err: err,
		}
	}
}

// Mutation commands

func (m *Model) savePageCmd(form pageFormState) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	payload := form.form.Payload()
	id := form.form.ID
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = client.Pages().Create(ctx, payload)
		} else {
			_, err = client.Pages().Update(ctx, id, payload)
		}
		return pageSavedMsg{err: err}
	}
}

func (m *Model) deletePageCmd(id string) tea.Cmd {
	m.opts.Store.Pages.SetUpdating(id)
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		return pageDeletedMsg{id: id, err: client.Pages().Delete(ctx, id)}
	}
}

func (m *Model) saveTrackCmd(form trackFormState) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	payload := form.form.Payload()
	id := form.form.ID
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = client.Tracks().Create(ctx, payload)
		} else {
			_, err = client.Tracks().Update(ctx, id, payload)
		}
		return trackSavedMsg{err: err}
	}
}

func (m *Model) deleteTrackCmd(id string) tea.Cmd {
	m.opts.Store.Tracks.SetUpdating(id)
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		return trackDeletedMsg{id: id, err: client.Tracks().Delete(ctx, id)}
	}
}

func (m *Model) savePlaylistCmd(form playlistFormState) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	payload := form.form.Payload()
	id := form.form.ID
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = client.Playlists().Create(ctx, payload)
		} else {
			_, err = client.Playlists().Update(ctx, id, payload)
		}
		return playlistSavedMsg{err: err}
	}
}

func (m *Model) deletePlaylistCmd(id string) tea.Cmd {
	m.opts.Store.Playlists.SetUpdating(id)
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		return playlistDeletedMsg{id: id, err: client.Playlists().Delete(ctx, id)}
	}
}

func (m *Model) reloadPlaylistCmd(id string) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		playlist, err := client.Playlists().GetByID(ctx, id)
		return playlistReloadedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) addPlaylistTracksCmd(playlistID string, trackIDs []string) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		playlist, err := client.Playlists().AddTracks(ctx, playlistID, trackIDs)
		return playlistReloadedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) removePlaylistTrackCmd(playlistID, trackID string) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		playlist, err := client.Playlists().RemoveTrack(ctx, playlistID, trackID)
		return playlistReloadedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) uploadMediaCmd(target mediaTarget, path string) tea.Cmd {
	media := m.opts.Media
	ctx := m.ctx()
	return func() tea.Msg {
		err := uploadFile(ctx, media, target, path)
		return mediaUploadedMsg{target: target, err: err}
	}
}

func (m *Model) deleteMediaCmd(target mediaTarget, publicID string) tea.Cmd {
	m.mediaEntry(target).SetUpdating(publicID)
	media := m.opts.Media
	ctx := m.ctx()
	kind := target.kind()
	return func() tea.Msg {
		return mediaDeletedMsg{target: target, publicID: publicID, err: media.Delete(ctx, kind, publicID)}
	}
}

func (m *Model) renameMediaCmd(target mediaTarget, publicID, name string) tea.Cmd {
	m.mediaEntry(target).SetUpdating(publicID)
	media := m.opts.Media
	ctx := m.ctx()
	kind := target.kind()
	return func() tea.Msg {
		return mediaRenamedMsg{target: target, err: media.Rename(ctx, kind, publicID, name)}
	}
}

func (m *Model) generateContentCmd(provider aigen.Provider, req aigen.Request) tea.Cmd {
	gen := m.opts.AI
	ctx := m.ctx()
	return func() tea.Msg {
		content, err := gen.Generate(ctx, provider, req)
		return aiGeneratedMsg{content: content, err: err}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	sess := m.opts.Session
	ctx := m.ctx()
	return func() tea.Msg {
		return loginDoneMsg{err: sess.Login(ctx, username, password)}
	}
}
