package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/store"
)

// dashState tracks the dashboard's in-flight refresh.
type dashState struct {
	refreshing bool
}

func (m *Model) showDashboard() tea.Cmd {
	m.view = viewDashboard
	return m.refreshDashboardCmd(false)
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) {
		return m, m.refreshDashboardCmd(true)
	}
	return m, nil
}

// refreshDashboardCmd refetches health and recent pages. Unforced refreshes
// are skipped inside the cooldown window.
func (m *Model) refreshDashboardCmd(force bool) tea.Cmd {
	if !force && !m.opts.Store.DashboardStale(store.CooldownSimple) {
		return nil
	}
	if m.dash.refreshing {
		return nil
	}
	m.dash.refreshing = true

	st := m.opts.Store
	client := m.opts.API
	ctx := m.ctx()
	return func() tea.Msg {
		health, err := client.Health(ctx)
		if err != nil {
			st.UpdateDashboard(nil, 0, nil, err)
			return dashboardRefreshedMsg{}
		}
		pages, err := client.Pages().GetAll(ctx, api.ListParams{Page: 1, PageSize: 5})
		if err != nil {
			st.UpdateDashboard(nil, 0, nil, err)
			return dashboardRefreshedMsg{}
		}
		st.UpdateDashboard(pages.Items, pages.Pagination.TotalItems, &health, nil)
		return dashboardRefreshedMsg{}
	}
}

func (m Model) viewDashboard() string {
	dash := m.opts.Store.DashboardSnapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	// Health panel
	switch {
	case dash.IsOffline():
		b.WriteString(m.styles.DangerText.Render("● API OFFLINE"))
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("  %d consecutive failures", dash.ConsecutiveFailures)))
	case !dash.HasHealth:
		if m.dash.refreshing {
			b.WriteString(m.spinner.View())
			b.WriteString(m.styles.MutedText.Render(" checking API..."))
		} else {
			b.WriteString(m.styles.MutedText.Render("● API status unknown"))
		}
	case dash.Health.OK():
		b.WriteString(m.styles.SuccessText.Render("● API healthy"))
		if dash.Health.Uptime != "" {
			b.WriteString(m.styles.MutedText.Render("  up " + dash.Health.Uptime))
		}
	default:
		b.WriteString(m.styles.WarningText.Render("● API degraded: " + dash.Health.Status))
	}
	b.WriteString("\n")

	if dash.LastError != nil {
		b.WriteString(m.styles.DangerText.Render("Last error: "))
		b.WriteString(m.styles.Text.Render(truncate(dash.LastError.Error(), 80)))
		b.WriteString("\n")
	}
	if !dash.LastFetched.IsZero() {
		line := "updated " + dash.LastFetched.Format("15:04:05")
		if m.opts.PollTick > 0 {
			line += fmt.Sprintf("  •  auto-refresh every %s", m.opts.PollTick)
		}
		b.WriteString(m.styles.FaintText.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.MutedText.Render("Total pages: "))
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%d", dash.TotalPages)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.AccentText.Render("Recent pages"))
	b.WriteString("\n")
	if len(dash.RecentPages) == 0 {
		b.WriteString(m.styles.MutedText.Render("No pages yet."))
		b.WriteString("\n")
	}
	for _, p := range dash.RecentPages {
		b.WriteString("  ")
		b.WriteString(m.styles.Text.Render(truncate(p.Title, 50)))
		if p.Slug != "" {
			b.WriteString(m.styles.FaintText.Render("  /" + p.Slug))
		}
		if t := p.ParsedUpdatedAt(); !t.IsZero() {
			b.WriteString(m.styles.MutedText.Render("  " + t.Format("Jan 02 15:04")))
		}
		b.WriteString("\n")
	}

	return b.String()
}
