package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/forms"
)

// Playlist form field order.
const (
	playlistFieldTitle = iota
	playlistFieldDescription
	playlistFieldThumbnail
	playlistFieldTags
	playlistFieldCount
)

var playlistFieldLabels = [...]string{
	"Title", "Description", "Thumbnail URL", "Tags (comma separated)",
}

var playlistFieldErrKeys = [...]string{
	"title", "description", "thumbnail", "tags",
}

// playlistFormState is the playlist create/edit screen.
type playlistFormState struct {
	form   forms.PlaylistForm
	inputs []textinput.Model
	focus  int
	errs   forms.Errors
	saving bool
}

func newPlaylistFormState() playlistFormState {
	return buildPlaylistFormState(forms.PlaylistForm{})
}

func editPlaylistFormState(p api.Playlist) playlistFormState {
	return buildPlaylistFormState(forms.EditPlaylistForm(p))
}

func buildPlaylistFormState(form forms.PlaylistForm) playlistFormState {
	inputs := make([]textinput.Model, playlistFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Width = 60
		in.CharLimit = 500
		inputs[i] = in
	}
	inputs[playlistFieldTitle].CharLimit = 200

	inputs[playlistFieldTitle].SetValue(form.Title)
	inputs[playlistFieldDescription].SetValue(form.Description)
	inputs[playlistFieldThumbnail].SetValue(form.Thumbnail)
	inputs[playlistFieldTags].SetValue(strings.Join(form.Tags, ", "))
	inputs[playlistFieldTitle].Focus()

	return playlistFormState{form: form, inputs: inputs}
}

func (s *playlistFormState) syncForm() {
	s.form.Title = s.inputs[playlistFieldTitle].Value()
	s.form.Description = s.inputs[playlistFieldDescription].Value()
	s.form.Thumbnail = s.inputs[playlistFieldThumbnail].Value()
	s.form.Tags = splitGroups(s.inputs[playlistFieldTags].Value())
}

func (m Model) updatePlaylistForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.playlistForm
	if s.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewPlaylists
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		s.inputs[s.focus].Blur()
		s.focus = (s.focus + 1) % playlistFieldCount
		s.inputs[s.focus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		s.inputs[s.focus].Blur()
		s.focus = (s.focus + playlistFieldCount - 1) % playlistFieldCount
		s.inputs[s.focus].Focus()
		return m, nil

	case msg.String() == "ctrl+v":
		s.form.IsPublic = !s.form.IsPublic
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		s.syncForm()
		s.errs = s.form.Validate()
		if !s.errs.Valid() {
			return m, nil
		}
		s.saving = true
		return m, m.savePlaylistCmd(*s)
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.syncForm()
	return m, cmd
}

func (m Model) resolvePlaylistSaved(msg playlistSavedMsg) (Model, tea.Cmd) {
	m.playlistForm.saving = false
	if msg.err != nil {
		return m, nil
	}
	m.opts.Store.Playlists.Invalidate()
	m.view = viewPlaylists
	return m, m.fetchPlaylistsCmd()
}

func (m Model) viewPlaylistForm() string {
	s := m.playlistForm

	var b strings.Builder
	title := "New Playlist"
	if s.form.Editing() {
		title = "Edit Playlist"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for field := 0; field < playlistFieldCount; field++ {
		b.WriteString(m.renderFormField(playlistFieldLabels[field], s.inputs[field].View(), s.errs[playlistFieldErrKeys[field]], s.focus == field))
	}

	visibility := "private"
	if s.form.IsPublic {
		visibility = "public"
	}
	b.WriteString(m.styles.FieldLabel.Render("Visibility: "))
	b.WriteString(m.styles.AccentText.Render(visibility))
	b.WriteString(m.styles.FaintText.Render("  (ctrl+v to toggle)"))
	b.WriteString("\n\n")

	if s.saving {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" saving..."))
	} else {
		b.WriteString(m.styles.MutedText.Render("ctrl+s save  •  esc cancel"))
	}
	b.WriteString("\n")

	return b.String()
}
