package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
)

func previewModel(slug string) Model {
	m := Model{keys: defaultKeyMap(), styles: GetTheme("dracula").Styles()}
	m.view = viewPagePreview
	m.pagePreview = pagePreviewState{slug: slug, loading: true}
	return m
}

func TestResolvePagePreview_SetsPage(t *testing.T) {
	m := previewModel("about")

	page := api.Page{ID: "p1", Title: "About", Slug: "about", Content: "Hello."}
	m, _ = m.handleDataMsg(pagePreviewMsg{slug: "about", page: page})

	if m.pagePreview.loading {
		t.Fatal("preview still loading after resolve")
	}
	if m.pagePreview.notFound {
		t.Fatal("preview marked not found for a resolved page")
	}
	if got, want := m.pagePreview.page.Title, "About"; got != want {
		t.Fatalf("page title = %q, want %q", got, want)
	}
}

func TestResolvePagePreview_NotFound(t *testing.T) {
	m := previewModel("missing")

	m, _ = m.handleDataMsg(pagePreviewMsg{slug: "missing", err: &api.APIError{Status: 404, Message: "not found"}})

	if !m.pagePreview.notFound {
		t.Fatal("404 did not mark the preview as not found")
	}
	if m.pagePreview.err != "" {
		t.Fatalf("404 recorded as a generic error: %q", m.pagePreview.err)
	}
}

func TestResolvePagePreview_TransportError(t *testing.T) {
	m := previewModel("about")

	m, _ = m.handleDataMsg(pagePreviewMsg{slug: "about", err: errors.New("dial tcp: connection refused")})

	if m.pagePreview.notFound {
		t.Fatal("transport failure marked the preview as not found")
	}
	if m.pagePreview.err == "" {
		t.Fatal("transport failure left no error message")
	}
}

func TestResolvePagePreview_StaleSlugDropped(t *testing.T) {
	m := previewModel("second")

	m, _ = m.handleDataMsg(pagePreviewMsg{slug: "first", page: api.Page{Title: "First"}})

	if !m.pagePreview.loading {
		t.Fatal("stale response resolved the in-flight preview")
	}
	if m.pagePreview.page.Title != "" {
		t.Fatalf("stale response stored page %q", m.pagePreview.page.Title)
	}
}

func TestUpdatePagePreview_BackReturnsToPages(t *testing.T) {
	m := previewModel("about")
	m.pagePreview.loading = false

	next, _ := m.updatePagePreview(tea.KeyMsg{Type: tea.KeyEsc})

	if got := next.(Model).view; got != viewPages {
		t.Fatalf("view after esc = %d, want pages list", got)
	}
}
