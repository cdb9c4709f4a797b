package api

import "time"

// EditorKind identifies which rich-text editor a page's content targets.
type EditorKind string

// Editor kinds accepted by the content API.
const (
	EditorMarkdown   EditorKind = "markdown"
	EditorSummernote EditorKind = "summernote"
	EditorQuill      EditorKind = "quill"
)

// Valid reports whether k is one of the accepted editor kinds.
func (k EditorKind) Valid() bool {
	switch k {
	case EditorMarkdown, EditorSummernote, EditorQuill:
		return true
	}
	return false
}

// envelope mirrors the {success, data} wrapper every API response uses.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// Pagination mirrors the pagination block of paginated responses.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ListParams configure paginated list requests. Zero values are omitted.
type ListParams struct {
	Page     int    // 1-based
	PageSize int    // sent as "limit"
	Search   string // server-side title/description filter
}

// Page describes a rich-text content entry in transport-friendly form.
// The server owns the record; the client holds a possibly-stale copy.
type Page struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Groups       []string   `json:"groups"`
	EditorType   EditorKind `json:"editorType"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p Page) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (p Page) ParsedUpdatedAt() time.Time {
	return parseTime(p.UpdatedAt)
}

// PageData is the payload for page create and update calls.
type PageData struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Groups       []string   `json:"groups"`
	EditorType   EditorKind `json:"editorType"`
	Slug         string     `json:"slug,omitempty"`
	Content      string     `json:"content,omitempty"`
}

// PageList aggregates one fetched page of pages with its pagination block.
type PageList struct {
	Items      []Page     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Track describes an audio metadata record. Every field except the identity
// is optional on the server.
type Track struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Listeners   string   `json:"listeners"`
	Date        string   `json:"date"`
	Thumbnail   string   `json:"thumbnail"`
	Category    string   `json:"category"`
	AudioURL    string   `json:"audioUrl"`
	Playlists   []string `json:"playlists"`
}

// TrackData is the payload for track create and update calls.
type TrackData struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Listeners   string `json:"listeners,omitempty"`
	Date        string `json:"date,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Category    string `json:"category,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// TrackList aggregates one fetched page of tracks.
type TrackList struct {
	Items      []Track    `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Playlist describes an ordered grouping of tracks.
type Playlist struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Tracks      []Track  `json:"tracks"`
	TrackCount  int      `json:"trackCount"`
	Duration    string   `json:"duration"`
	IsPublic    bool     `json:"isPublic"`
	CreatedBy   string   `json:"createdBy"`
	Tags        []string `json:"tags"`
}

// PlaylistData is the payload for playlist create and update calls.
type PlaylistData struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags,omitempty"`
}

// PlaylistList aggregates one fetched page of playlists.
type PlaylistList struct {
	Items      []Playlist `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// AuthUser is the user object returned by login and verify.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult carries the token and user returned by a successful login.
type LoginResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// HealthStatus mirrors the /api/health probe consumed by the dashboard.
type HealthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// OK reports whether the probe indicates a healthy API.
func (h HealthStatus) OK() bool {
	return h.Status == "ok" || h.Status == "healthy"
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
