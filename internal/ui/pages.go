package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/store"
)

func (m *Model) showPages() tea.Cmd {
	m.view = viewPages
	if m.opts.Store.Pages.ShouldFetch(store.CooldownPaginated) {
		return m.fetchPagesCmd()
	}
	return nil
}

func (m Model) updatePages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.opts.Store.Pages.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.pages.move(-1, len(snap.Items))
	case key.Matches(msg, m.keys.Down):
		m.pages.move(1, len(snap.Items))
	case key.Matches(msg, m.keys.Search):
		m.pages.startSearch(snap.SearchTerm)
	case key.Matches(msg, m.keys.Refresh):
		m.opts.Store.Pages.Invalidate()
		return m, m.fetchPagesCmd()
	case key.Matches(msg, m.keys.NextPage):
		if pageDelta(m.opts.Store.Pages, 1) {
			return m, m.fetchPagesCmd()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if pageDelta(m.opts.Store.Pages, -1) {
			return m, m.fetchPagesCmd()
		}
	case key.Matches(msg, m.keys.New):
		m.pageForm = newPageFormState()
		m.view = viewPageForm
	case key.Matches(msg, m.keys.Open):
		if m.pages.cursor < len(snap.Items) {
			m.pageForm = editPageFormState(snap.Items[m.pages.cursor])
			m.view = viewPageForm
		}
	case key.Matches(msg, m.keys.Preview):
		if m.pages.cursor < len(snap.Items) {
			return m, m.showPagePreview(snap.Items[m.pages.cursor].Slug)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.pages.cursor < len(snap.Items) {
			page := snap.Items[m.pages.cursor]
			m.confirm = &confirmState{
				prompt:  fmt.Sprintf("Delete page %q? This cannot be undone.", page.Title),
				confirm: func() tea.Cmd { return m.deletePageCmd(page.ID) },
			}
		}
	}
	return m, nil
}

func (m Model) viewPages() string {
	snap := m.opts.Store.Pages.Snapshot()

	var rows strings.Builder
	for i, p := range snap.Items {
		line := fmt.Sprintf("%-40s %-24s %-10s",
			truncate(p.Title, 40), truncate("/"+p.Slug, 24), string(p.EditorType))
		if snap.Updating == p.ID {
			line += "  " + m.spinner.View()
		}
		if i == m.pages.cursor {
			rows.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			rows.WriteString(m.styles.Text.Render("  " + line))
		}
		rows.WriteString("\n")
	}

	return m.renderListChrome("Pages", m.pages, listMetaOf(snap), rows.String())
}
