package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/forms"
)

// Track form field order.
const (
	trackFieldTitle = iota
	trackFieldAuthor
	trackFieldDescription
	trackFieldDuration
	trackFieldDate
	trackFieldCategory
	trackFieldThumbnail
	trackFieldAudioURL
	trackFieldCount
)

var trackFieldLabels = [...]string{
	"Title", "Author", "Description", "Duration", "Date", "Category", "Thumbnail URL", "Audio URL",
}

var trackFieldErrKeys = [...]string{
	"title", "author", "description", "duration", "date", "category", "thumbnail", "audioUrl",
}

// trackFormState is the track create/edit screen.
type trackFormState struct {
	form   forms.TrackForm
	inputs []textinput.Model
	focus  int
	errs   forms.Errors
	saving bool
}

func newTrackFormState() trackFormState {
	return buildTrackFormState(forms.TrackForm{})
}

func editTrackFormState(t api.Track) trackFormState {
	return buildTrackFormState(forms.EditTrackForm(t))
}

func buildTrackFormState(form forms.TrackForm) trackFormState {
	inputs := make([]textinput.Model, trackFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Width = 60
		in.CharLimit = 500
		inputs[i] = in
	}
	inputs[trackFieldTitle].CharLimit = 200

	inputs[trackFieldTitle].SetValue(form.Title)
	inputs[trackFieldAuthor].SetValue(form.Author)
	inputs[trackFieldDescription].SetValue(form.Description)
	inputs[trackFieldDuration].SetValue(form.Duration)
	inputs[trackFieldDate].SetValue(form.Date)
	inputs[trackFieldCategory].SetValue(form.Category)
	inputs[trackFieldThumbnail].SetValue(form.Thumbnail)
	inputs[trackFieldAudioURL].SetValue(form.AudioURL)
	inputs[trackFieldTitle].Focus()

	return trackFormState{form: form, inputs: inputs}
}

func (s *trackFormState) syncForm() {
	s.form.Title = s.inputs[trackFieldTitle].Value()
	s.form.Author = s.inputs[trackFieldAuthor].Value()
	s.form.Description = s.inputs[trackFieldDescription].Value()
	s.form.Duration = s.inputs[trackFieldDuration].Value()
	s.form.Date = s.inputs[trackFieldDate].Value()
	s.form.Category = s.inputs[trackFieldCategory].Value()
	s.form.Thumbnail = s.inputs[trackFieldThumbnail].Value()
	s.form.AudioURL = s.inputs[trackFieldAudioURL].Value()
}

func (m Model) updateTrackForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.trackForm
	if s.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewTracks
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		s.inputs[s.focus].Blur()
		s.focus = (s.focus + 1) % trackFieldCount
		s.inputs[s.focus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		s.inputs[s.focus].Blur()
		s.focus = (s.focus + trackFieldCount - 1) % trackFieldCount
		s.inputs[s.focus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		s.syncForm()
		s.errs = s.form.Validate()
		if !s.errs.Valid() {
			return m, nil
		}
		s.saving = true
		return m, m.saveTrackCmd(*s)
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.syncForm()
	return m, cmd
}

func (m Model) resolveTrackSaved(msg trackSavedMsg) (Model, tea.Cmd) {
	m.trackForm.saving = false
	if msg.err != nil {
		return m, nil
	}
	m.opts.Store.Tracks.Invalidate()
	m.view = viewTracks
	return m, m.fetchTracksCmd()
}

func (m Model) viewTrackForm() string {
	s := m.trackForm

	var b strings.Builder
	title := "New Track"
	if s.form.Editing() {
		title = "Edit Track"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for field := 0; field < trackFieldCount; field++ {
		b.WriteString(m.renderFormField(trackFieldLabels[field], s.inputs[field].View(), s.errs[trackFieldErrKeys[field]], s.focus == field))
	}

	if s.saving {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" saving..."))
	} else {
		b.WriteString(m.styles.MutedText.Render("ctrl+s save  •  esc cancel"))
	}
	b.WriteString("\n")

	return b.String()
}
