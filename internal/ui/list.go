package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/store"
)

// listState is the per-view state shared by the paginated resource lists.
type listState struct {
	cursor    int
	searching bool
	search    textinput.Model
}

func newSearchInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "search"
	in.CharLimit = 100
	in.Width = 40
	return in
}

func (l *listState) clampCursor(length int) {
	if l.cursor >= length {
		l.cursor = length - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *listState) move(delta, length int) {
	l.cursor += delta
	l.clampCursor(length)
}

func (l *listState) startSearch(current string) {
	l.searching = true
	l.search = newSearchInput()
	l.search.SetValue(current)
	l.search.Focus()
}

// updateActiveSearch routes keys into whichever list search input is open.
// It returns captured=false when no search is active.
func (m Model) updateActiveSearch(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	var state *listState
	var entry interface {
		SetSearch(string)
	}

	switch m.view {
	case viewPages:
		state, entry = &m.pages, m.opts.Store.Pages
	case viewTracks:
		state, entry = &m.tracks, m.opts.Store.Tracks
	case viewPlaylists:
		state, entry = &m.playlists, m.opts.Store.Playlists
	default:
		return false, m, nil
	}
	if !state.searching {
		return false, m, nil
	}

	switch msg.String() {
	case "enter":
		term := strings.TrimSpace(state.search.Value())
		state.searching = false
		entry.SetSearch(term)
		var fetch tea.Cmd
		switch m.view {
		case viewPages:
			fetch = m.fetchPagesCmd()
		case viewTracks:
			fetch = m.fetchTracksCmd()
		case viewPlaylists:
			fetch = m.fetchPlaylistsCmd()
		}
		return true, m, fetch
	case "esc":
		state.searching = false
		return true, m, nil
	}

	var cmd tea.Cmd
	state.search, cmd = state.search.Update(msg)
	return true, m, cmd
}

// renderListChrome renders the shared list scaffolding around rows: title,
// search bar, loading/error/empty states, and the pagination line.
func (m Model) renderListChrome(title string, state listState, snap listMeta, rows string) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if state.searching {
		b.WriteString(m.styles.AccentText.Render("/"))
		b.WriteString(state.search.View())
		b.WriteString("\n")
	} else if snap.SearchTerm != "" {
		b.WriteString(m.styles.MutedText.Render("filter: "))
		b.WriteString(m.styles.AccentText.Render(snap.SearchTerm))
		b.WriteString(m.styles.FaintText.Render("  (/ to change, enter empty to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case snap.Err != "":
		b.WriteString(m.styles.DangerText.Render("Error: " + snap.Err))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("Press R to retry."))
	case snap.Loading && snap.Count == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" loading..."))
	case snap.Count == 0:
		b.WriteString(m.styles.MutedText.Render("No items."))
	default:
		b.WriteString(rows)
	}
	b.WriteString("\n")

	if snap.Err == "" && snap.Count > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderPaginationLine(snap))
	}

	return b.String()
}

// listMeta is the slice of store.List state the chrome needs, untyped so one
// renderer serves every resource.
type listMeta struct {
	Count      int
	Loading    bool
	Err        string
	SearchTerm string
	Pagination store.Pagination
	HasMore    bool
	Cursored   bool // cursor pagination (media) instead of numbered pages
}

func listMetaOf[T any](snap store.List[T]) listMeta {
	return listMeta{
		Count:      len(snap.Items),
		Loading:    snap.Loading,
		Err:        snap.Err,
		SearchTerm: snap.SearchTerm,
		Pagination: snap.Pagination,
		HasMore:    snap.HasMore,
	}
}

func (m Model) renderPaginationLine(snap listMeta) string {
	if snap.Cursored {
		if snap.HasMore {
			return m.styles.MutedText.Render(fmt.Sprintf("%d loaded  •  m to load more", snap.Count))
		}
		return m.styles.MutedText.Render(fmt.Sprintf("%d loaded  •  end of list", snap.Count))
	}

	totalPages := 1
	if snap.Pagination.PageSize > 0 && snap.Pagination.TotalItems > 0 {
		totalPages = (snap.Pagination.TotalItems + snap.Pagination.PageSize - 1) / snap.Pagination.PageSize
	}
	return m.styles.MutedText.Render(fmt.Sprintf(
		"page %d/%d  •  %d total  •  [ ] to change page",
		snap.Pagination.Page, totalPages, snap.Pagination.TotalItems,
	))
}

// pageDelta moves a numbered-pagination entry by delta pages and reports
// whether the page actually changed.
func pageDelta[T any](entry *store.Entry[T], delta int) bool {
	snap := entry.Snapshot()
	page := snap.Pagination.Page + delta
	if page < 1 {
		return false
	}
	if snap.Pagination.PageSize > 0 && snap.Pagination.TotalItems > 0 {
		totalPages := (snap.Pagination.TotalItems + snap.Pagination.PageSize - 1) / snap.Pagination.PageSize
		if page > totalPages {
			return false
		}
	}
	entry.SetPage(page, 0)
	return true
}
