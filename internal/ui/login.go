package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapedeck/greenroom/internal/session"
)

// loginState holds the credential form shown before any other view.
type loginState struct {
	username   textinput.Model
	password   textinput.Model
	focus      int // 0 username, 1 password
	submitting bool
	errMsg     string
}

func newLoginState() loginState {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 100
	user.Width = 32
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 100
	pass.Width = 32
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return loginState{username: user, password: pass}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.login.focus == 0 {
			m.login.focus = 1
			m.login.username.Blur()
			m.login.password.Focus()
		} else {
			m.login.focus = 0
			m.login.password.Blur()
			m.login.username.Focus()
		}
		return m, nil

	case "enter":
		username := strings.TrimSpace(m.login.username.Value())
		password := m.login.password.Value()
		if username == "" || password == "" {
			m.login.errMsg = "Username and password are required"
			return m, nil
		}
		m.login.submitting = true
		m.login.errMsg = ""
		return m, m.loginCmd(username, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) resolveLogin(msg loginDoneMsg) (Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		if errors.Is(msg.err, session.ErrInvalidCredentials) {
			m.login.errMsg = "Invalid username or password"
		} else {
			m.login.errMsg = msg.err.Error()
		}
		m.login.password.SetValue("")
		return m, nil
	}

	m.view = viewDashboard
	return m, m.refreshDashboardCmd(false)
}

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Logo.Render("greenroom"))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("content console"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.FieldLabel.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.login.username.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")

	if m.login.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" signing in..."))
	} else if m.login.errMsg != "" {
		b.WriteString(m.styles.DangerText.Render(m.login.errMsg))
	} else {
		b.WriteString(m.styles.MutedText.Render("enter to sign in  •  tab to switch fields"))
	}

	if m.opts.Session.DemoMode() {
		b.WriteString("\n\n")
		b.WriteString(m.styles.WarningText.Render("demo mode: credentials checked locally"))
	}

	panel := m.styles.Panel.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
