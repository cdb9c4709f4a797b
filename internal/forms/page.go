package forms

import (
	"strings"

	"github.com/tapedeck/greenroom/internal/api"
)

// PageForm collects input for page create and edit screens. The slug
// auto-derives from the title only while creating; editing an existing page
// never regenerates its slug from title changes.
type PageForm struct {
	ID           string // empty when creating
	Title        string
	Description  string
	ImageURL     string
	ThumbnailURL string
	Groups       []string
	EditorType   api.EditorKind
	Slug         string
	Content      string

	slugEdited bool
}

// NewPageForm returns an empty creation form.
func NewPageForm() PageForm {
	return PageForm{EditorType: api.EditorMarkdown}
}

// EditPageForm returns a form pre-filled from an existing page.
func EditPageForm(p api.Page) PageForm {
	return PageForm{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		ThumbnailURL: p.ThumbnailURL,
		Groups:       append([]string(nil), p.Groups...),
		EditorType:   p.EditorType,
		Slug:         p.Slug,
		Content:      p.Content,
	}
}

// Editing reports whether the form targets an existing page.
func (f PageForm) Editing() bool { return f.ID != "" }

// SetTitle updates the title, deriving the slug while creating unless the
// operator has edited the slug by hand.
func (f *PageForm) SetTitle(title string) {
	f.Title = title
	if !f.Editing() && !f.slugEdited {
		f.Slug = Slugify(title)
	}
}

// SetSlug records a hand-edited slug; the title stops driving it afterwards.
func (f *PageForm) SetSlug(slug string) {
	f.Slug = slug
	f.slugEdited = true
}

// Validate checks the form and returns per-field inline errors.
func (f PageForm) Validate() Errors {
	errs := Errors{}

	title := strings.TrimSpace(f.Title)
	switch {
	case title == "":
		errs["title"] = "Title is required"
	case len(title) > 200:
		errs["title"] = "Title cannot be more than 200 characters"
	}

	desc := strings.TrimSpace(f.Description)
	switch {
	case desc == "":
		errs["description"] = "Description is required"
	case len(desc) > 500:
		errs["description"] = "Description cannot be more than 500 characters"
	}

	switch {
	case strings.TrimSpace(f.ImageURL) == "":
		errs["imageUrl"] = "Image URL is required"
	case !validURL(f.ImageURL):
		errs["imageUrl"] = "Must be a valid URL"
	}

	switch {
	case strings.TrimSpace(f.ThumbnailURL) == "":
		errs["thumbnailUrl"] = "Thumbnail URL is required"
	case !validURL(f.ThumbnailURL):
		errs["thumbnailUrl"] = "Must be a valid URL"
	}

	if len(f.Groups) > 10 {
		errs["groups"] = "Cannot have more than 10 groups"
	}

	if !f.EditorType.Valid() {
		errs["editorType"] = "Editor type must be markdown, summernote, or quill"
	}

	if f.Slug != "" {
		switch {
		case len(f.Slug) > 100:
			errs["slug"] = "Slug cannot be more than 100 characters"
		case !validSlug(f.Slug):
			errs["slug"] = "Slug can only contain lowercase letters, numbers, and hyphens"
		}
	}

	return errs
}

// Payload maps the form to the API create/update payload. A blank slug on a
// creation form falls back to the derived one.
func (f PageForm) Payload() api.PageData {
	slug := f.Slug
	if slug == "" && !f.Editing() {
		slug = Slugify(f.Title)
	}
	return api.PageData{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		ImageURL:     strings.TrimSpace(f.ImageURL),
		ThumbnailURL: strings.TrimSpace(f.ThumbnailURL),
		Groups:       f.Groups,
		EditorType:   f.EditorType,
		Slug:         slug,
		Content:      f.Content,
	}
}
