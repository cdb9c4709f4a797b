package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapedeck/greenroom/internal/aigen"
	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/forms"
)

// Page form field order.
const (
	pageFieldTitle = iota
	pageFieldSlug
	pageFieldDescription
	pageFieldImageURL
	pageFieldThumbnailURL
	pageFieldGroups
	pageFieldContent
	pageFieldCount
)

var pageFieldLabels = [...]string{
	"Title", "Slug", "Description", "Image URL", "Thumbnail URL", "Groups (comma separated)", "Content",
}

var pageFieldErrKeys = [...]string{
	"title", "slug", "description", "imageUrl", "thumbnailUrl", "groups", "content",
}

// pageFormState is the page create/edit screen. The forms.PageForm value is
// the source of truth; the text inputs mirror it.
type pageFormState struct {
	form    forms.PageForm
	editor  forms.Editor
	inputs  []textinput.Model
	content textarea.Model
	focus   int
	errs    forms.Errors
	saving  bool

	provider   aigen.Provider
	generating bool
	genErr     string
}

func newPageFormState() pageFormState {
	return buildPageFormState(forms.NewPageForm())
}

func editPageFormState(p api.Page) pageFormState {
	return buildPageFormState(forms.EditPageForm(p))
}

func buildPageFormState(form forms.PageForm) pageFormState {
	inputs := make([]textinput.Model, pageFieldContent)
	for i := range inputs {
		in := textinput.New()
		in.Width = 60
		in.CharLimit = 500
		inputs[i] = in
	}
	inputs[pageFieldTitle].CharLimit = 200
	inputs[pageFieldSlug].CharLimit = 100

	inputs[pageFieldTitle].SetValue(form.Title)
	inputs[pageFieldSlug].SetValue(form.Slug)
	inputs[pageFieldDescription].SetValue(form.Description)
	inputs[pageFieldImageURL].SetValue(form.ImageURL)
	inputs[pageFieldThumbnailURL].SetValue(form.ThumbnailURL)
	inputs[pageFieldGroups].SetValue(strings.Join(form.Groups, ", "))
	inputs[pageFieldTitle].Focus()

	content := textarea.New()
	content.SetWidth(76)
	content.SetHeight(10)
	content.CharLimit = 0
	content.SetValue(form.Content)

	editor := forms.NewEditor(form.EditorType)
	editor.SetContent(form.Content)

	return pageFormState{
		form:     form,
		editor:   editor,
		inputs:   inputs,
		content:  content,
		provider: aigen.ProviderGemini,
	}
}

func (s *pageFormState) setFocus(field int) {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.content.Blur()
	s.focus = field
	if field == pageFieldContent {
		s.content.Focus()
	} else {
		s.inputs[field].Focus()
	}
}

// syncField copies the focused widget's value back into the form.
func (s *pageFormState) syncField() {
	switch s.focus {
	case pageFieldTitle:
		s.form.SetTitle(s.inputs[pageFieldTitle].Value())
		// The derived slug follows the title until hand-edited.
		s.inputs[pageFieldSlug].SetValue(s.form.Slug)
	case pageFieldSlug:
		if s.inputs[pageFieldSlug].Value() != s.form.Slug {
			s.form.SetSlug(s.inputs[pageFieldSlug].Value())
		}
	case pageFieldDescription:
		s.form.Description = s.inputs[pageFieldDescription].Value()
	case pageFieldImageURL:
		s.form.ImageURL = s.inputs[pageFieldImageURL].Value()
	case pageFieldThumbnailURL:
		s.form.ThumbnailURL = s.inputs[pageFieldThumbnailURL].Value()
	case pageFieldGroups:
		s.form.Groups = splitGroups(s.inputs[pageFieldGroups].Value())
	case pageFieldContent:
		s.editor.SetContent(s.content.Value())
		s.form.Content = s.editor.Content()
	}
}

func splitGroups(raw string) []string {
	var groups []string
	for _, part := range strings.Split(raw, ",") {
		if g := strings.TrimSpace(part); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func (m Model) updatePageForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.pageForm
	if s.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewPages
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		s.syncField()
		s.setFocus((s.focus + 1) % pageFieldCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		s.syncField()
		s.setFocus((s.focus + pageFieldCount - 1) % pageFieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Editor):
		s.syncField()
		s.cycleEditor()
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		s.syncField()
		return m.startGeneration()

	case msg.String() == "ctrl+p":
		providers := aigen.Providers()
		for i, p := range providers {
			if p == s.provider {
				s.provider = providers[(i+1)%len(providers)]
				break
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		s.syncField()
		s.errs = s.form.Validate()
		if !s.errs.Valid() {
			return m, nil
		}
		s.saving = true
		return m, m.savePageCmd(*s)
	}

	var cmd tea.Cmd
	if s.focus == pageFieldContent {
		s.content, cmd = s.content.Update(msg)
	} else {
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	}
	s.syncField()
	return m, cmd
}

// cycleEditor rotates markdown -> summernote -> quill, carrying content over.
func (s *pageFormState) cycleEditor() {
	next := api.EditorMarkdown
	switch s.form.EditorType {
	case api.EditorMarkdown:
		next = api.EditorSummernote
	case api.EditorSummernote:
		next = api.EditorQuill
	}
	content := s.editor.Content()
	s.form.EditorType = next
	s.editor = forms.NewEditor(next)
	s.editor.SetContent(content)
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	s := &m.pageForm
	if m.opts.AI == nil || !m.opts.AI.Enabled(s.provider) {
		s.genErr = "Provider " + string(s.provider) + " is not configured"
		return m, nil
	}
	s.generating = true
	s.genErr = ""
	return m, m.generateContentCmd(s.provider, aigen.Request{
		Title:       s.form.Title,
		Description: s.form.Description,
	})
}

func (m Model) resolveAIGenerated(msg aiGeneratedMsg) (Model, tea.Cmd) {
	s := &m.pageForm
	s.generating = false
	if msg.err != nil {
		s.genErr = msg.err.Error()
		return m, nil
	}
	s.content.SetValue(msg.content)
	s.editor.SetContent(msg.content)
	s.form.Content = msg.content
	return m, nil
}

func (m Model) resolvePageSaved(msg pageSavedMsg) (Model, tea.Cmd) {
	m.pageForm.saving = false
	if msg.err != nil {
		return m, nil
	}
	m.opts.Store.Pages.Invalidate()
	m.view = viewPages
	return m, m.fetchPagesCmd()
}

func (m Model) viewPageForm() string {
	s := m.pageForm

	var b strings.Builder
	title := "New Page"
	if s.form.Editing() {
		title = "Edit Page"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for field := 0; field < pageFieldContent; field++ {
		b.WriteString(m.renderFormField(pageFieldLabels[field], s.inputs[field].View(), s.errs[pageFieldErrKeys[field]], s.focus == field))
	}

	editorLine := m.styles.FieldLabel.Render("Editor: ") +
		m.styles.AccentText.Render(string(s.form.EditorType)) +
		m.styles.FaintText.Render("  (ctrl+e to change)")
	if errMsg, ok := s.errs["editorType"]; ok {
		editorLine += "  " + m.styles.FieldError.Render(errMsg)
	}
	b.WriteString(editorLine)
	b.WriteString("\n\n")

	b.WriteString(m.renderFormField(pageFieldLabels[pageFieldContent], s.content.View(), s.errs["content"], s.focus == pageFieldContent))

	aiLine := m.styles.FieldLabel.Render("AI draft: ") +
		m.styles.AccentText.Render(string(s.provider)) +
		m.styles.FaintText.Render("  (ctrl+p provider, ctrl+g generate)")
	b.WriteString(aiLine)
	b.WriteString("\n")
	if s.generating {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" generating..."))
		b.WriteString("\n")
	} else if s.genErr != "" {
		b.WriteString(m.styles.FieldError.Render(truncate(s.genErr, 80)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.saving {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.MutedText.Render(" saving..."))
	} else {
		b.WriteString(m.styles.MutedText.Render("ctrl+s save  •  esc cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFormField(label, widget, errMsg string, focused bool) string {
	style := m.styles.FieldLabel
	if focused {
		style = m.styles.AccentText
	}
	out := style.Render(label) + "\n" + widget + "\n"
	if errMsg != "" {
		out += m.styles.FieldError.Render(errMsg) + "\n"
	}
	return out + "\n"
}
