package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
)

// pagePreviewState shows a single page resolved by slug, the way a site
// visitor would reach it.
type pagePreviewState struct {
	slug     string
	page     api.Page
	loading  bool
	notFound bool
	err      string
	offset   int // content lines scrolled down from the top
}

type pagePreviewMsg struct {
	slug string
	page api.Page
	err  error
}

func (m *Model) showPagePreview(slug string) tea.Cmd {
	m.view = viewPagePreview
	m.pagePreview = pagePreviewState{slug: slug, loading: true}
	return m.fetchPagePreviewCmd(slug)
}

func (m *Model) fetchPagePreviewCmd(slug string) tea.Cmd {
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		page, err := client.Pages().GetBySlug(ctx, slug)
		return pagePreviewMsg{slug: slug, page: page, err: err}
	}
}

func (m Model) resolvePagePreview(msg pagePreviewMsg) (Model, tea.Cmd) {
	if msg.slug != m.pagePreview.slug {
		// A newer preview superseded this fetch.
		return m, nil
	}
	m.pagePreview.loading = false
	switch {
	case api.IsNotFound(msg.err):
		m.pagePreview.notFound = true
	case msg.err != nil:
		m.pagePreview.err = msg.err.Error()
	default:
		m.pagePreview.page = msg.page
	}
	return m, nil
}

func (m Model) updatePagePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.pagePreview
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewPages
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		p.loading = true
		p.notFound = false
		p.err = ""
		return m, m.fetchPagePreviewCmd(p.slug)
	case key.Matches(msg, m.keys.Up):
		if p.offset > 0 {
			p.offset--
		}
	case key.Matches(msg, m.keys.Down):
		if p.offset < len(contentLines(p.page.Content))-1 {
			p.offset++
		}
	}
	return m, nil
}

func (m Model) viewPagePreview() string {
	p := m.pagePreview

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Preview"))
	b.WriteString("  ")
	b.WriteString(m.styles.FaintText.Render("/" + p.slug))
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" loading page..."))
		return b.String()
	case p.notFound:
		b.WriteString(m.styles.WarningText.Render("Page not found."))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("Nothing is published under this slug. Press esc to go back."))
		return b.String()
	case p.err != "":
		b.WriteString(m.styles.DangerText.Render("Error: " + p.err))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("Press R to retry."))
		return b.String()
	}

	page := p.page
	b.WriteString(m.styles.AccentText.Render(page.Title))
	b.WriteString("\n")

	meta := string(page.EditorType)
	if len(page.Groups) > 0 {
		meta += "  •  " + strings.Join(page.Groups, ", ")
	}
	if t := page.ParsedUpdatedAt(); !t.IsZero() {
		meta += "  •  updated " + t.Format("2006-01-02 15:04")
	}
	b.WriteString(m.styles.MutedText.Render(meta))
	b.WriteString("\n")
	if page.Description != "" {
		b.WriteString(m.styles.FaintText.Render(truncate(page.Description, m.width-4)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	lines := contentLines(page.Content)
	if len(lines) == 0 {
		b.WriteString(m.styles.MutedText.Render("This page has no content yet."))
		return b.String()
	}

	visible := m.height - 12
	if visible < 5 {
		visible = 5
	}
	start := p.offset
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	for _, line := range lines[start:end] {
		b.WriteString(m.styles.Text.Render(truncate(line, width)))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("lines %d-%d of %d", start+1, end, len(lines))))
	}
	return b.String()
}

func contentLines(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
