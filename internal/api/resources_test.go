package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// resourceServer records the last request and serves canned envelopes.
type resourceServer struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

func newResourceServer(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*resourceServer, *Client, *recordingNotifier) {
	t.Helper()
	rec := &resourceServer{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		respond(w, r)
	}))
	t.Cleanup(server.Close)

	notices := &recordingNotifier{}
	c, err := NewClient(server.URL, nil, notices)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return rec, c, notices
}

func TestPages_GetAllDecodesEnvelopeAndEncodesQuery(t *testing.T) {
	t.Parallel()

	rec, c, _ := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope[PageList]{Success: true, Data: PageList{
			Items:      []Page{{ID: "p1", Title: "First", Slug: "first"}},
			Pagination: Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42, ItemsPerPage: 10},
		}})
	})

	list, err := c.Pages().GetAll(context.Background(), ListParams{Page: 2, PageSize: 10, Search: "fir"})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if rec.path != "/api/pages" {
		t.Fatalf("path = %q, want /api/pages", rec.path)
	}
	if rec.query.Get("page") != "2" || rec.query.Get("limit") != "10" || rec.query.Get("search") != "fir" {
		t.Fatalf("query = %v, want page/limit/search encoded", rec.query)
	}
	if len(list.Items) != 1 || list.Items[0].ID != "p1" {
		t.Fatalf("items = %#v, want 1 item p1", list.Items)
	}
	if list.Pagination.TotalItems != 42 {
		t.Fatalf("TotalItems = %d, want 42", list.Pagination.TotalItems)
	}
}

func TestPages_GetAllEmptyResultIsSuccess(t *testing.T) {
	t.Parallel()

	_, c, notices := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope[PageList]{Success: true, Data: PageList{
			Items:      []Page{},
			Pagination: Pagination{CurrentPage: 1, TotalItems: 0, ItemsPerPage: 10},
		}})
	})

	list, err := c.Pages().GetAll(context.Background(), ListParams{Search: "foo"})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(list.Items) != 0 || list.Pagination.TotalItems != 0 {
		t.Fatalf("list = %#v, want empty success", list)
	}
	if len(notices.errors) != 0 {
		t.Fatalf("error notifications = %v, want none for empty result", notices.errors)
	}
}

func TestPages_MutationsNotifySuccess(t *testing.T) {
	t.Parallel()

	rec, c, notices := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope[Page]{Success: true, Data: Page{ID: "p1", Slug: "my-post"}})
	})

	created, err := c.Pages().Create(context.Background(), PageData{Title: "My Post", Slug: "my-post"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/api/pages" {
		t.Fatalf("request = %s %s, want POST /api/pages", rec.method, rec.path)
	}
	if created.Slug != "my-post" {
		t.Fatalf("created slug = %q, want my-post", created.Slug)
	}

	if _, err := c.Pages().Update(context.Background(), "p1", PageData{Title: "My Post"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/api/pages/p1" {
		t.Fatalf("request = %s %s, want PUT /api/pages/p1", rec.method, rec.path)
	}

	if err := c.Pages().Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.method != http.MethodDelete || rec.path != "/api/pages/p1" {
		t.Fatalf("request = %s %s, want DELETE /api/pages/p1", rec.method, rec.path)
	}

	want := []string{"Page created", "Page updated", "Page deleted"}
	if len(notices.successes) != len(want) {
		t.Fatalf("success notifications = %v, want %v", notices.successes, want)
	}
	for i, msg := range want {
		if notices.successes[i] != msg {
			t.Fatalf("success[%d] = %q, want %q", i, notices.successes[i], msg)
		}
	}
}

func TestPages_GetByIDAndBySlugPaths(t *testing.T) {
	t.Parallel()

	rec, c, _ := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope[Page]{Success: true, Data: Page{ID: "p9"}})
	})

	if _, err := c.Pages().GetByID(context.Background(), "p9"); err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if rec.path != "/api/pages/by-id/p9" {
		t.Fatalf("path = %q, want /api/pages/by-id/p9", rec.path)
	}

	if _, err := c.Pages().GetBySlug(context.Background(), "about-us"); err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if rec.path != "/api/pages/about-us" {
		t.Fatalf("path = %q, want /api/pages/about-us", rec.path)
	}

	if _, err := c.Pages().GetByID(context.Background(), ""); err == nil {
		t.Fatalf("GetByID with empty id returned nil error")
	}
}

func TestPlaylists_TrackMembershipCalls(t *testing.T) {
	t.Parallel()

	rec, c, notices := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope[Playlist]{Success: true, Data: Playlist{ID: "pl1", TrackCount: 2}})
	})

	got, err := c.Playlists().AddTracks(context.Background(), "pl1", []string{"t1", "t2"})
	if err != nil {
		t.Fatalf("AddTracks returned error: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/api/playlists/pl1/tracks" {
		t.Fatalf("request = %s %s, want POST /api/playlists/pl1/tracks", rec.method, rec.path)
	}
	var body struct {
		TrackIDs []string `json:"trackIds"`
	}
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if len(body.TrackIDs) != 2 || body.TrackIDs[0] != "t1" {
		t.Fatalf("body = %#v, want trackIds [t1 t2]", body)
	}
	if got.TrackCount != 2 {
		t.Fatalf("TrackCount = %d, want 2", got.TrackCount)
	}

	if _, err := c.Playlists().RemoveTrack(context.Background(), "pl1", "t1"); err != nil {
		t.Fatalf("RemoveTrack returned error: %v", err)
	}
	if rec.method != http.MethodDelete || rec.path != "/api/playlists/pl1/tracks/t1" {
		t.Fatalf("request = %s %s, want DELETE /api/playlists/pl1/tracks/t1", rec.method, rec.path)
	}

	if _, err := c.Playlists().AddTracks(context.Background(), "pl1", nil); err == nil {
		t.Fatalf("AddTracks with no track ids returned nil error")
	}

	if len(notices.successes) != 2 {
		t.Fatalf("success notifications = %v, want add and remove", notices.successes)
	}
}

func TestAuth_LoginAndVerify(t *testing.T) {
	t.Parallel()

	rec, c, _ := newResourceServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(envelope[LoginResult]{Success: true, Data: LoginResult{
				Token: "tok-1",
				User:  AuthUser{ID: "u1", Username: "admin"},
			}})
		case "/api/auth/verify":
			_ = json.NewEncoder(w).Encode(envelope[AuthUser]{Success: true, Data: AuthUser{ID: "u1", Username: "admin"}})
		default:
			http.NotFound(w, r)
		}
	})

	result, err := c.Auth().Login(context.Background(), Credentials{Username: "admin", Password: "pw"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token != "tok-1" || result.User.Username != "admin" {
		t.Fatalf("login result = %#v, want tok-1/admin", result)
	}

	user, err := c.Auth().Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("verify user = %#v, want u1", user)
	}
	var sent struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("decode verify body: %v", err)
	}
	if sent.Token != "tok-1" {
		t.Fatalf("verify body token = %q, want tok-1", sent.Token)
	}

	if _, err := c.Auth().Login(context.Background(), Credentials{}); err == nil {
		t.Fatalf("Login with empty credentials returned nil error")
	}
}

func TestEditorKind_Valid(t *testing.T) {
	for _, kind := range []EditorKind{EditorMarkdown, EditorSummernote, EditorQuill} {
		if !kind.Valid() {
			t.Fatalf("Valid(%q) = false, want true", kind)
		}
	}
	if EditorKind("tinymce").Valid() {
		t.Fatalf("Valid(tinymce) = true, want false")
	}
}
