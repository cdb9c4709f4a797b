package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/logtail"
)

const logTailLines = 200

// logsState backs the log viewer showing the console's own log file.
type logsState struct {
	lines   []logtail.Line
	err     string
	loading bool
	offset  int // lines scrolled up from the bottom
}

type logsLoadedMsg struct {
	lines []logtail.Line
	err   error
}

func (m *Model) showLogs() tea.Cmd {
	m.view = viewLogs
	return m.loadLogsCmd()
}

func (m *Model) loadLogsCmd() tea.Cmd {
	m.logs.loading = true
	path := m.opts.LogPath
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

func (m Model) resolveLogsLoaded(msg logsLoadedMsg) (Model, tea.Cmd) {
	m.logs.loading = false
	if msg.err != nil {
		m.logs.err = msg.err.Error()
		return m, nil
	}
	m.logs.err = ""
	m.logs.lines = msg.lines
	m.logs.offset = 0
	return m, nil
}

func (m Model) updateLogs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewDashboard
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadLogsCmd()
	case key.Matches(msg, m.keys.Up):
		if m.logs.offset < len(m.logs.lines)-1 {
			m.logs.offset++
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.logs.offset > 0 {
			m.logs.offset--
		}
		return m, nil
	}
	return m, nil
}

func (m Model) viewLogs() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Logs"))
	b.WriteString("  ")
	b.WriteString(m.styles.FaintText.Render(m.opts.LogPath))
	b.WriteString("\n\n")

	switch {
	case m.logs.err != "":
		b.WriteString(m.styles.DangerText.Render("Error: " + m.logs.err))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("Press R to retry."))
		return b.String()
	case m.logs.loading && len(m.logs.lines) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" reading log file"))
		return b.String()
	case len(m.logs.lines) == 0:
		b.WriteString(m.styles.MutedText.Render("Log file is empty."))
		return b.String()
	}

	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	end := len(m.logs.lines) - m.logs.offset
	if end > len(m.logs.lines) {
		end = len(m.logs.lines)
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	for _, line := range m.logs.lines[start:end] {
		b.WriteString(m.renderLogLine(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d lines", len(m.logs.lines))
	if m.logs.offset > 0 {
		status += fmt.Sprintf(" • scrolled %d from end", m.logs.offset)
	}
	b.WriteString(m.styles.FaintText.Render(status))
	return b.String()
}

func (m Model) renderLogLine(line logtail.Line) string {
	var parts []string
	if !line.Time.IsZero() {
		parts = append(parts, m.styles.FaintText.Render(line.Time.Format("15:04:05")))
	}
	switch line.Level {
	case "ERROR", "FATAL", "PANIC":
		parts = append(parts, m.styles.DangerText.Render(line.Level))
	case "WARN":
		parts = append(parts, m.styles.WarningText.Render(line.Level))
	case "DEBUG":
		parts = append(parts, m.styles.InfoText.Render(line.Level))
	case "":
	default:
		parts = append(parts, m.styles.SuccessText.Render(line.Level))
	}
	width := m.width - 14
	if width < 20 {
		width = 20
	}
	parts = append(parts, m.styles.Text.Render(truncate(line.Message, width)))
	return strings.Join(parts, " ")
}
