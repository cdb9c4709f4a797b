package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tapedeck/greenroom/internal/notify"
)

var navTabs = []struct {
	key   string
	label string
	views []view
}{
	{"1", "Dashboard", []view{viewDashboard}},
	{"2", "Pages", []view{viewPages, viewPageForm, viewPagePreview}},
	{"3", "Tracks", []view{viewTracks, viewTrackForm}},
	{"4", "Playlists", []view{viewPlaylists, viewPlaylistForm, viewPlaylistDetail}},
	{"5", "Images", []view{viewImages}},
	{"6", "Audio", []view{viewAudios}},
}

func (m Model) renderHeader() string {
	var parts []string

	parts = append(parts, m.styles.Logo.Render("greenroom"))

	for _, tab := range navTabs {
		active := false
		for _, v := range tab.views {
			if m.view == v {
				active = true
				break
			}
		}
		label := tab.key + ":" + tab.label
		if active {
			parts = append(parts, m.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, m.styles.MutedText.Render(label))
		}
	}

	dash := m.opts.Store.DashboardSnapshot()
	if dash.IsOffline() {
		parts = append(parts, m.styles.DangerText.Render("● OFFLINE"))
	}

	user := m.opts.Session.User()
	if user.Username != "" {
		label := user.Username
		if m.opts.Session.DemoMode() {
			label += " (demo)"
		}
		parts = append(parts, m.styles.MutedText.Render(label))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter() string {
	if len(m.toasts) > 0 {
		return m.renderToasts()
	}

	type hint struct{ key, desc string }
	var hints []hint

	switch m.view {
	case viewDashboard:
		hints = []hint{{"R", "refresh"}, {"2-6", "browse"}, {"?", "help"}, {"q", "quit"}}
	case viewPages:
		hints = []hint{
			{"j/k", "navigate"}, {"enter", "open"}, {"p", "preview"}, {"n", "new"},
			{"x", "delete"}, {"/", "search"}, {"[ ]", "page"}, {"?", "help"},
		}
	case viewTracks, viewPlaylists:
		hints = []hint{
			{"j/k", "navigate"}, {"enter", "open"}, {"n", "new"}, {"x", "delete"},
			{"/", "search"}, {"[ ]", "page"}, {"?", "help"},
		}
	case viewImages, viewAudios:
		hints = []hint{
			{"j/k", "navigate"}, {"u", "upload"}, {"r", "rename"}, {"x", "delete"},
			{"m", "more"}, {"R", "refresh"}, {"?", "help"},
		}
	case viewPageForm:
		hints = []hint{{"tab", "field"}, {"ctrl+e", "editor"}, {"ctrl+g", "AI draft"}, {"ctrl+s", "save"}, {"esc", "cancel"}}
	case viewTrackForm, viewPlaylistForm:
		hints = []hint{{"tab", "field"}, {"ctrl+s", "save"}, {"esc", "cancel"}}
	case viewPlaylistDetail:
		hints = []hint{{"j/k", "navigate"}, {"n", "add track"}, {"x", "remove"}, {"R", "refresh"}, {"esc", "back"}}
	case viewPagePreview:
		hints = []hint{{"j/k", "scroll"}, {"R", "reload"}, {"esc", "back"}}
	case viewLogs:
		hints = []hint{{"j/k", "scroll"}, {"R", "reload"}, {"esc", "back"}}
	}

	segments := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		segments = append(segments, m.styles.AccentText.Render(h.key)+m.styles.FaintText.Render(":")+m.styles.MutedText.Render(h.desc))
	}
	segments = append(segments, m.styles.AccentText.Render("T")+m.styles.FaintText.Render(":")+m.styles.FaintText.Render(m.theme.Name))

	return m.styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}

func (m Model) renderToasts() string {
	segments := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		var style lipgloss.Style
		switch t.notification.Level {
		case notify.LevelSuccess:
			style = m.styles.SuccessText
		case notify.LevelError:
			style = m.styles.DangerText
		default:
			style = m.styles.InfoText
		}
		segments = append(segments, style.Render(truncate(t.notification.Message, 60)))
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(segments, "  •  "))
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.WarningText.Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(m.confirm.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("y confirm  •  n cancel"))

	panel := m.styles.PanelFocus.Render(b.String())
	height := m.height - 2
	if height < 1 {
		height = 1
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) viewHelp() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{"1-6", "switch view"},
			{"j/k or arrows", "move selection"},
			{"enter", "open / edit"},
			{"esc", "back"},
		}},
		{"Lists", [][2]string{
			{"n", "new item"},
			{"p", "preview page (pages)"},
			{"e", "edit playlist metadata (playlists)"},
			{"x", "delete item (with confirmation)"},
			{"/", "search"},
			{"[ / ]", "previous / next page"},
			{"R", "force refresh"},
		}},
		{"Media", [][2]string{
			{"u", "upload file"},
			{"r", "rename asset"},
			{"m", "load more"},
		}},
		{"Forms", [][2]string{
			{"tab / shift+tab", "next / previous field"},
			{"ctrl+s", "save"},
			{"ctrl+e", "cycle editor type (pages)"},
			{"ctrl+g", "generate AI draft (pages)"},
			{"ctrl+p", "cycle AI provider (pages)"},
		}},
		{"Session", [][2]string{
			{"L", "view console logs"},
			{"ctrl+l", "log out"},
			{"T", "cycle theme"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(m.styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString("  ")
			b.WriteString(m.styles.Text.Render(padRight(row[0], 18)))
			b.WriteString(m.styles.MutedText.Render(row[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.FaintText.Render("press any key to close"))
	return b.String()
}
