package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedeck/greenroom/internal/api"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Post", "my-post"},
		{"  Hello,  World!  ", "hello-world"},
		{"Already-slugged", "already-slugged"},
		{"100% Guide (2026)", "100-guide-2026"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Slugify(tc.title), "Slugify(%q)", tc.title)
	}
}

func TestPageForm_SlugDerivesOnCreateOnly(t *testing.T) {
	f := NewPageForm()
	f.SetTitle("My Post")
	assert.Equal(t, "my-post", f.Slug)

	// Typing keeps deriving until the slug is hand-edited.
	f.SetTitle("My Post Revisited")
	assert.Equal(t, "my-post-revisited", f.Slug)

	f.SetSlug("custom-slug")
	f.SetTitle("Another Title")
	assert.Equal(t, "custom-slug", f.Slug)

	// Editing an existing page never regenerates the slug from the title.
	edit := EditPageForm(api.Page{ID: "p1", Title: "Old", Slug: "old-slug"})
	edit.SetTitle("Completely New Title")
	assert.Equal(t, "old-slug", edit.Slug)
}

func TestPageForm_PayloadFallsBackToDerivedSlug(t *testing.T) {
	f := NewPageForm()
	f.Title = "My Post"
	f.Description = "Desc"
	f.ImageURL = "https://example.com/a.png"
	f.ThumbnailURL = "https://example.com/a-thumb.png"

	payload := f.Payload()
	assert.Equal(t, "my-post", payload.Slug)
	assert.Equal(t, api.EditorMarkdown, payload.EditorType)
}

func TestPageForm_Validate(t *testing.T) {
	valid := NewPageForm()
	valid.SetTitle("My Post")
	valid.Description = "A description"
	valid.ImageURL = "https://example.com/a.png"
	valid.ThumbnailURL = "https://example.com/a-thumb.png"
	require.True(t, valid.Validate().Valid(), "errors: %v", valid.Validate())

	empty := NewPageForm()
	errs := empty.Validate()
	assert.Equal(t, "Title is required", errs["title"])
	assert.Equal(t, "Description is required", errs["description"])
	assert.Equal(t, "Image URL is required", errs["imageUrl"])
	assert.Equal(t, "Thumbnail URL is required", errs["thumbnailUrl"])

	long := valid
	long.Title = strings.Repeat("x", 201)
	assert.Contains(t, long.Validate()["title"], "200 characters")

	badURL := valid
	badURL.ImageURL = "not-a-url"
	assert.Equal(t, "Must be a valid URL", badURL.Validate()["imageUrl"])

	badSlug := valid
	badSlug.SetSlug("Bad Slug!")
	assert.Contains(t, badSlug.Validate()["slug"], "lowercase")

	manyGroups := valid
	manyGroups.Groups = make([]string, 11)
	assert.Contains(t, manyGroups.Validate()["groups"], "10 groups")

	badEditor := valid
	badEditor.EditorType = api.EditorKind("tinymce")
	assert.Contains(t, badEditor.Validate()["editorType"], "markdown")
}

func TestTrackForm_Validate(t *testing.T) {
	f := TrackForm{Title: "Episode 1"}
	require.True(t, f.Validate().Valid())

	f.Title = ""
	assert.Equal(t, "Title is required", f.Validate()["title"])

	f = TrackForm{Title: "Episode 1", AudioURL: "nope", Thumbnail: "also nope"}
	errs := f.Validate()
	assert.Equal(t, "Must be a valid URL", errs["audioUrl"])
	assert.Equal(t, "Must be a valid URL", errs["thumbnail"])
}

func TestPlaylistForm_ValidateAndPayload(t *testing.T) {
	f := PlaylistForm{Title: "Morning Mix", IsPublic: true, Tags: []string{"chill"}}
	require.True(t, f.Validate().Valid())

	payload := f.Payload()
	assert.Equal(t, "Morning Mix", payload.Title)
	assert.True(t, payload.IsPublic)

	f.Tags = make([]string, 11)
	assert.Contains(t, f.Validate()["tags"], "10 tags")

	f = PlaylistForm{}
	assert.Equal(t, "Title is required", f.Validate()["title"])
}

func TestEditor_Implementations(t *testing.T) {
	for _, kind := range []api.EditorKind{api.EditorMarkdown, api.EditorSummernote, api.EditorQuill} {
		ed := NewEditor(kind)
		assert.Equal(t, kind, ed.Kind())
		ed.SetContent("<p>hello</p>")
		assert.Equal(t, "<p>hello</p>", ed.Content())
	}

	// Unknown kinds degrade to markdown.
	assert.Equal(t, api.EditorMarkdown, NewEditor(api.EditorKind("weird")).Kind())
}
