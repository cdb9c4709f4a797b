package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("example.com:4000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:4000" {
		t.Fatalf("url = %q, want http://example.com:4000", u.String())
	}
}

func TestClient_AttachesAuthAndRequestHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(envelope[HealthStatus]{Success: true, Data: HealthStatus{Status: "ok"}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, staticTokens{token: "tok-123"}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if _, err := c.Health(ctx); err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID missing")
	}
	if !strings.HasPrefix(gotUserAgent, "greenroom/") {
		t.Fatalf("User-Agent = %q, want greenroom/*", gotUserAgent)
	}

	// Anonymous client sends no Authorization header at all.
	anon, err := NewClient(server.URL, staticTokens{}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := anon.Health(ctx); err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty for anonymous client", gotAuth)
	}
}

func TestClient_ErrorNotificationAndMessageExtraction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"database unavailable"}`))
	}))
	t.Cleanup(server.Close)

	notices := &recordingNotifier{}
	c, err := NewClient(server.URL, nil, notices)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Pages().GetAll(context.Background(), ListParams{})
	if err == nil {
		t.Fatalf("GetAll returned nil error, want APIError")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "database unavailable" {
		t.Fatalf("APIError = %#v, want 500/database unavailable", apiErr)
	}
	if len(notices.errors) != 1 || notices.errors[0] != "database unavailable" {
		t.Fatalf("error notifications = %v, want one extracted message", notices.errors)
	}
}

func TestClient_ErrorMessageDefaultsWhenBodyUnreadable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	notices := &recordingNotifier{}
	c, err := NewClient(server.URL, nil, notices)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Tracks().GetAll(context.Background(), ListParams{})
	if err == nil {
		t.Fatalf("GetAll returned nil error, want APIError")
	}
	if len(notices.errors) != 1 || notices.errors[0] != genericErrorMessage {
		t.Fatalf("error notifications = %v, want generic message", notices.errors)
	}
}

func TestClient_NotFoundIsSilent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"page not found"}`))
	}))
	t.Cleanup(server.Close)

	notices := &recordingNotifier{}
	c, err := NewClient(server.URL, nil, notices)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Pages().GetBySlug(context.Background(), "missing-slug")
	if err == nil {
		t.Fatalf("GetBySlug returned nil error, want 404")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false, want true", err)
	}
	if len(notices.errors) != 0 {
		t.Fatalf("error notifications = %v, want none for 404", notices.errors)
	}

	// Deleting a page that is already gone follows the same silent path.
	err = c.Pages().Delete(context.Background(), "gone")
	if !IsNotFound(err) {
		t.Fatalf("Delete error = %v, want 404", err)
	}
	if len(notices.errors) != 0 || len(notices.successes) != 0 {
		t.Fatalf("notifications = %v/%v, want none", notices.errors, notices.successes)
	}
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Health(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Health error = %v, want decode response error", err)
	}
}

func TestListQuery_EncodesParams(t *testing.T) {
	values := listQuery(ListParams{Page: 3, PageSize: 25, Search: "  foo "})
	if values.Get("page") != "3" || values.Get("limit") != "25" || values.Get("search") != "foo" {
		t.Fatalf("query = %v, want page=3 limit=25 search=foo", values)
	}

	empty := listQuery(ListParams{})
	if len(empty) != 0 {
		t.Fatalf("query = %v, want empty for zero params", empty)
	}
}
