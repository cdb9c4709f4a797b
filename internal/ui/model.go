package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tapedeck/greenroom/internal/notify"
	"github.com/tapedeck/greenroom/internal/prefs"
)

// view identifies which screen the console is showing.
type view int

const (
	viewLogin view = iota
	viewDashboard
	viewPages
	viewTracks
	viewPlaylists
	viewImages
	viewAudios
	viewPageForm
	viewTrackForm
	viewPlaylistForm
	viewPlaylistDetail
	viewPagePreview
	viewLogs
)

const (
	toastLifetime = 4 * time.Second
	tickEvery     = time.Second
)

// toast is a notification currently visible in the status bar.
type toast struct {
	notification notify.Notification
	expires      time.Time
}

// confirmState is an open destructive-action confirmation modal.
type confirmState struct {
	prompt  string
	confirm func() tea.Cmd
}

// Model is the root Bubble Tea model for the console.
type Model struct {
	opts   Options
	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int

	view     view
	showHelp bool

	spinner spinner.Model
	toasts  []toast

	confirm *confirmState

	login          loginState
	dash           dashState
	pages          listState
	tracks         listState
	playlists      listState
	images         mediaState
	audios         mediaState
	pageForm       pageFormState
	trackForm      trackFormState
	playlistForm   playlistFormState
	playlistDetail playlistDetailState
	pagePreview    pagePreviewState
	logs           logsState
}

func newModel(opts Options) Model {
	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		opts:    opts,
		keys:    defaultKeyMap(),
		theme:   theme,
		styles:  theme.Styles(),
		spinner: sp,
		login:   newLoginState(),
		images:  newMediaState(mediaImages),
		audios:  newMediaState(mediaAudios),
	}

	if opts.Session.Authenticated() {
		m.view = viewDashboard
	} else {
		m.view = viewLogin
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, tick()}
	if m.view == viewDashboard {
		cmds = append(cmds, m.refreshDashboardCmd(false))
	}
	return tea.Batch(cmds...)
}

// tickMsg drives toast expiry and dashboard snapshot rereads.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.pruneToasts()
		m.drainNotifications()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else is a data message owned by one of the views.
	model, cmd := m.handleDataMsg(msg)
	model.drainNotifications()
	return model, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, even inside inputs and modals.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewPageForm:
		return m.updatePageForm(msg)
	case viewTrackForm:
		return m.updateTrackForm(msg)
	case viewPlaylistForm:
		return m.updatePlaylistForm(msg)
	}

	// List-style views: search input captures keys while active.
	if captured, model, cmd := m.updateActiveSearch(msg); captured {
		return model, cmd
	}

	if cmd, handled := m.globalKey(msg); handled {
		return m, cmd
	}

	switch m.view {
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewPages:
		return m.updatePages(msg)
	case viewTracks:
		return m.updateTracks(msg)
	case viewPlaylists:
		return m.updatePlaylists(msg)
	case viewImages, viewAudios:
		return m.updateMedia(msg)
	case viewPlaylistDetail:
		return m.updatePlaylistDetail(msg)
	case viewPagePreview:
		return m.updatePagePreview(msg)
	case viewLogs:
		return m.updateLogs(msg)
	}
	return m, nil
}

// globalKey handles navigation shared by every authenticated view.
func (m *Model) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil, true
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme(), true
	case key.Matches(msg, m.keys.Logout):
		m.opts.Session.Logout()
		m.view = viewLogin
		m.login = newLoginState()
		return nil, true
	case key.Matches(msg, m.keys.Dashboard):
		return m.showDashboard(), true
	case key.Matches(msg, m.keys.Pages):
		return m.showPages(), true
	case key.Matches(msg, m.keys.Tracks):
		return m.showTracks(), true
	case key.Matches(msg, m.keys.Playlists):
		return m.showPlaylists(), true
	case key.Matches(msg, m.keys.Images):
		return m.showMedia(mediaImages), true
	case key.Matches(msg, m.keys.Audios):
		return m.showMedia(mediaAudios), true
	case key.Matches(msg, m.keys.Logs):
		return m.showLogs(), true
	}
	return nil, false
}

func (m *Model) cycleTheme() tea.Cmd {
	name := NextTheme(m.theme.Name)
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

	prefsPath := m.opts.PrefsPath
	logger := m.opts.Logger
	return func() tea.Msg {
		p, _ := prefs.Load(prefsPath)
		p.Theme = name
		if err := prefs.Save(prefsPath, p); err != nil && logger != nil {
			logger.Warn("persist theme failed", zap.Error(err))
		}
		return nil
	}
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		confirm := m.confirm.confirm
		m.confirm = nil
		return m, confirm()
	case "n", "N", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) drainNotifications() {
	if m.opts.Notify == nil {
		return
	}
	now := time.Now()
	for _, n := range m.opts.Notify.Drain() {
		m.toasts = append(m.toasts, toast{notification: n, expires: now.Add(toastLifetime)})
	}
	// Keep the bar readable.
	if len(m.toasts) > 3 {
		m.toasts = m.toasts[len(m.toasts)-3:]
	}
}

func (m *Model) pruneToasts() {
	now := time.Now()
	kept := m.toasts[:0:0]
	for _, t := range m.toasts {
		if t.expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.view == viewLogin {
		return m.viewLogin()
	}

	var body string
	switch {
	case m.showHelp:
		body = m.viewHelp()
	case m.confirm != nil:
		body = m.viewConfirm()
	default:
		switch m.view {
		case viewDashboard:
			body = m.viewDashboard()
		case viewPages:
			body = m.viewPages()
		case viewTracks:
			body = m.viewTracks()
		case viewPlaylists:
			body = m.viewPlaylists()
		case viewImages, viewAudios:
			body = m.viewMedia()
		case viewPageForm:
			body = m.viewPageForm()
		case viewTrackForm:
			body = m.viewTrackForm()
		case viewPlaylistForm:
			body = m.viewPlaylistForm()
		case viewPlaylistDetail:
			body = m.viewPlaylistDetail()
		case viewPagePreview:
			body = m.viewPagePreview()
		case viewLogs:
			body = m.viewLogs()
		}
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
