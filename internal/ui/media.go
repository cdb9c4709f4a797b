package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/mediahost"
	"github.com/tapedeck/greenroom/internal/store"
)

// mediaTarget selects which asset browser a message or view refers to.
type mediaTarget int

const (
	mediaImages mediaTarget = iota
	mediaAudios
)

func (t mediaTarget) kind() mediahost.Kind {
	if t == mediaAudios {
		return mediahost.KindAudio
	}
	return mediahost.KindImage
}

func (t mediaTarget) title() string {
	if t == mediaAudios {
		return "Audio Files"
	}
	return "Images"
}

// mediaState is the per-kind asset browser state. Uploading and renaming use
// an inline text input instead of a separate screen.
type mediaState struct {
	target    mediaTarget
	cursor    int
	uploading bool
	uploadErr string

	prompting  bool // path or name input open
	promptKind promptKind
	prompt     textinput.Model
}

type promptKind int

const (
	promptUpload promptKind = iota
	promptRename
)

func newMediaState(target mediaTarget) mediaState {
	return mediaState{target: target}
}

func (s *mediaState) clampCursor(length int) {
	if s.cursor >= length {
		s.cursor = length - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (m *Model) mediaEntry(target mediaTarget) *store.Entry[mediahost.Asset] {
	if target == mediaAudios {
		return m.opts.Store.Audios
	}
	return m.opts.Store.Images
}

func (m *Model) mediaStateFor(target mediaTarget) *mediaState {
	if target == mediaAudios {
		return &m.audios
	}
	return &m.images
}

func (m *Model) activeMedia() *mediaState {
	if m.view == viewAudios {
		return &m.audios
	}
	return &m.images
}

func (m *Model) showMedia(target mediaTarget) tea.Cmd {
	if target == mediaAudios {
		m.view = viewAudios
	} else {
		m.view = viewImages
	}
	if m.mediaEntry(target).ShouldFetch(store.CooldownSimple) {
		return m.fetchMediaCmd(target, true)
	}
	return nil
}

func (m Model) updateMedia(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.activeMedia()
	entry := m.mediaEntry(state.target)
	snap := entry.Snapshot()

	if state.prompting {
		return m.updateMediaPrompt(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if state.cursor > 0 {
			state.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if state.cursor < len(snap.Items)-1 {
			state.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		entry.Invalidate()
		return m, m.fetchMediaCmd(state.target, true)
	case key.Matches(msg, m.keys.LoadMore):
		if snap.HasMore && !snap.LoadingMore {
			return m, m.fetchMediaCmd(state.target, false)
		}
	case key.Matches(msg, m.keys.Upload):
		state.prompting = true
		state.promptKind = promptUpload
		state.prompt = textinput.New()
		state.prompt.Placeholder = "path to file"
		state.prompt.Width = 60
		state.prompt.Focus()
	case key.Matches(msg, m.keys.Rename):
		if state.cursor < len(snap.Items) {
			state.prompting = true
			state.promptKind = promptRename
			state.prompt = textinput.New()
			state.prompt.Placeholder = "new name"
			state.prompt.SetValue(snap.Items[state.cursor].Name)
			state.prompt.Width = 60
			state.prompt.Focus()
		}
	case key.Matches(msg, m.keys.Delete):
		if state.cursor < len(snap.Items) {
			asset := snap.Items[state.cursor]
			target := state.target
			m.confirm = &confirmState{
				prompt:  fmt.Sprintf("Delete %s from the media host? This cannot be undone.", asset.PublicID),
				confirm: func() tea.Cmd { return m.deleteMediaCmd(target, asset.PublicID) },
			}
		}
	}
	return m, nil
}

func (m Model) updateMediaPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.activeMedia()

	switch msg.String() {
	case "esc":
		state.prompting = false
		return m, nil
	case "enter":
		value := strings.TrimSpace(state.prompt.Value())
		state.prompting = false
		if value == "" {
			return m, nil
		}
		if state.promptKind == promptUpload {
			state.uploading = true
			state.uploadErr = ""
			return m, m.uploadMediaCmd(state.target, value)
		}
		snap := m.mediaEntry(state.target).Snapshot()
		if state.cursor < len(snap.Items) {
			return m, m.renameMediaCmd(state.target, snap.Items[state.cursor].PublicID, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	state.prompt, cmd = state.prompt.Update(msg)
	return m, cmd
}

func (m Model) viewMedia() string {
	state := *m.activeMedia()
	snap := m.mediaEntry(state.target).Snapshot()

	var b strings.Builder

	if state.prompting {
		label := "Upload file path"
		if state.promptKind == promptRename {
			label = "New name"
		}
		b.WriteString(m.styles.AccentText.Render(label))
		b.WriteString("\n")
		b.WriteString(state.prompt.View())
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("enter to confirm, esc to cancel"))
		b.WriteString("\n\n")
	}
	if state.uploading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" uploading..."))
		b.WriteString("\n\n")
	}
	if state.uploadErr != "" {
		b.WriteString(m.styles.DangerText.Render(truncate(state.uploadErr, 80)))
		b.WriteString("\n\n")
	}

	var rows strings.Builder
	for i, a := range snap.Items {
		name := a.Name
		if name == "" {
			name = a.PublicID
		}
		created := a.CreatedAt
		if t := a.ParsedCreatedAt(); !t.IsZero() {
			created = t.Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("%-40s %-19s", truncate(name, 40), created)
		if snap.Updating == a.PublicID {
			line += "  " + m.spinner.View()
		}
		if i == state.cursor {
			rows.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			rows.WriteString(m.styles.Text.Render("  " + line))
		}
		rows.WriteString("\n")
	}
	if snap.LoadingMore {
		rows.WriteString(m.spinner.View())
		rows.WriteString(m.styles.MutedText.Render(" loading more..."))
		rows.WriteString("\n")
	}

	meta := listMetaOf(snap)
	meta.Cursored = true
	b.WriteString(m.renderListChrome(state.target.title(), listState{cursor: state.cursor}, meta, rows.String()))
	return b.String()
}

// uploadFile opens the local file and hands it to the media host client.
func uploadFile(ctx context.Context, media *mediahost.Client, target mediaTarget, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	name := filepath.Base(path)
	if target == mediaAudios {
		_, err = media.UploadAudio(ctx, name, file)
	} else {
		_, err = media.UploadImage(ctx, name, file)
	}
	return err
}
