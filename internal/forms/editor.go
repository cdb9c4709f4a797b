package forms

import "github.com/tapedeck/greenroom/internal/api"

// Editor is the capability the form layer needs from a content editor: the
// core owns only the content string and the chosen editor identifier, never
// widget internals. The two implementations are interchangeable.
type Editor interface {
	Kind() api.EditorKind
	Content() string
	SetContent(content string)
}

// NewEditor returns the editor implementation for kind, defaulting to
// markdown for unknown kinds.
func NewEditor(kind api.EditorKind) Editor {
	switch kind {
	case api.EditorSummernote, api.EditorQuill:
		return &RichTextEditor{kind: kind}
	default:
		return &MarkdownEditor{}
	}
}

// MarkdownEditor holds markdown source.
type MarkdownEditor struct {
	content string
}

// Kind implements Editor.
func (e *MarkdownEditor) Kind() api.EditorKind { return api.EditorMarkdown }

// Content implements Editor.
func (e *MarkdownEditor) Content() string { return e.content }

// SetContent implements Editor.
func (e *MarkdownEditor) SetContent(content string) { e.content = content }

// RichTextEditor holds HTML produced by one of the rich-text widgets.
type RichTextEditor struct {
	kind    api.EditorKind
	content string
}

// Kind implements Editor.
func (e *RichTextEditor) Kind() api.EditorKind { return e.kind }

// Content implements Editor.
func (e *RichTextEditor) Content() string { return e.content }

// SetContent implements Editor.
func (e *RichTextEditor) SetContent(content string) { e.content = content }
