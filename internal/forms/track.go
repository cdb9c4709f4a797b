package forms

import (
	"strings"

	"github.com/tapedeck/greenroom/internal/api"
)

// TrackForm collects input for track create and edit screens. Every field
// except the title is optional, matching the server's schema.
type TrackForm struct {
	ID          string
	Title       string
	Author      string
	Description string
	Duration    string
	Listeners   string
	Date        string
	Thumbnail   string
	Category    string
	AudioURL    string
	PlaylistID  string // optional: playlist to attach the track to on save
}

// EditTrackForm returns a form pre-filled from an existing track.
func EditTrackForm(t api.Track) TrackForm {
	return TrackForm{
		ID:          t.ID,
		Title:       t.Title,
		Author:      t.Author,
		Description: t.Description,
		Duration:    t.Duration,
		Listeners:   t.Listeners,
		Date:        t.Date,
		Thumbnail:   t.Thumbnail,
		Category:    t.Category,
		AudioURL:    t.AudioURL,
	}
}

// Editing reports whether the form targets an existing track.
func (f TrackForm) Editing() bool { return f.ID != "" }

// Validate checks the form and returns per-field inline errors.
func (f TrackForm) Validate() Errors {
	errs := Errors{}

	title := strings.TrimSpace(f.Title)
	switch {
	case title == "":
		errs["title"] = "Title is required"
	case len(title) > 200:
		errs["title"] = "Title cannot be more than 200 characters"
	}

	if f.Thumbnail != "" && !validURL(f.Thumbnail) {
		errs["thumbnail"] = "Must be a valid URL"
	}
	if f.AudioURL != "" && !validURL(f.AudioURL) {
		errs["audioUrl"] = "Must be a valid URL"
	}

	return errs
}

// Payload maps the form to the API create/update payload.
func (f TrackForm) Payload() api.TrackData {
	return api.TrackData{
		Title:       strings.TrimSpace(f.Title),
		Author:      strings.TrimSpace(f.Author),
		Description: strings.TrimSpace(f.Description),
		Duration:    strings.TrimSpace(f.Duration),
		Listeners:   strings.TrimSpace(f.Listeners),
		Date:        strings.TrimSpace(f.Date),
		Thumbnail:   strings.TrimSpace(f.Thumbnail),
		Category:    strings.TrimSpace(f.Category),
		AudioURL:    strings.TrimSpace(f.AudioURL),
	}
}
