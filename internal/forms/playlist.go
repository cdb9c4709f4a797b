package forms

import (
	"strings"

	"github.com/tapedeck/greenroom/internal/api"
)

// PlaylistForm collects input for playlist create and edit screens.
type PlaylistForm struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	IsPublic    bool
	Tags        []string
}

// EditPlaylistForm returns a form pre-filled from an existing playlist.
func EditPlaylistForm(p api.Playlist) PlaylistForm {
	return PlaylistForm{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		IsPublic:    p.IsPublic,
		Tags:        append([]string(nil), p.Tags...),
	}
}

// Editing reports whether the form targets an existing playlist.
func (f PlaylistForm) Editing() bool { return f.ID != "" }

// Validate checks the form and returns per-field inline errors.
func (f PlaylistForm) Validate() Errors {
	errs := Errors{}

	title := strings.TrimSpace(f.Title)
	switch {
	case title == "":
		errs["title"] = "Title is required"
	case len(title) > 200:
		errs["title"] = "Title cannot be more than 200 characters"
	}

	if len(f.Description) > 500 {
		errs["description"] = "Description cannot be more than 500 characters"
	}
	if f.Thumbnail != "" && !validURL(f.Thumbnail) {
		errs["thumbnail"] = "Must be a valid URL"
	}
	if len(f.Tags) > 10 {
		errs["tags"] = "Cannot have more than 10 tags"
	}

	return errs
}

// Payload maps the form to the API create/update payload.
func (f PlaylistForm) Payload() api.PlaylistData {
	return api.PlaylistData{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Thumbnail:   strings.TrimSpace(f.Thumbnail),
		IsPublic:    f.IsPublic,
		Tags:        f.Tags,
	}
}
