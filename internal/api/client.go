package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource yields the current session token. An empty string means the
// request is sent anonymously and the server decides whether that is allowed.
type TokenSource interface {
	Token() string
}

// Notifier receives the one-shot user notifications the gateway raises.
// This interface is implemented by *notify.Center and can be used for testing.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// APIError describes a non-2xx response from the content API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the content API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to the content platform HTTP API. It is the single outbound
// gateway: it attaches the bearer token, normalizes errors into notifications,
// and exposes the per-resource call groups.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tokens    TokenSource
	notify    Notifier
}

const (
	defaultBaseURL   = "http://127.0.0.1:4000"
	defaultUserAgent = "greenroom/0.1"
	requestTimeout   = 10 * time.Second

	genericErrorMessage = "an error occurred"
)

// NewClient builds a Client for the given base URL. tokens and notifier may
// be nil; requests are then anonymous and notifications are dropped.
func NewClient(baseURL string, tokens TokenSource, notifier Notifier) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		tokens:    tokens,
		notify:    notifier,
	}, nil
}

// Pages returns the pages call group.
func (c *Client) Pages() PagesAPI { return PagesAPI{c: c} }

// Tracks returns the tracks call group.
func (c *Client) Tracks() TracksAPI { return TracksAPI{c: c} }

// Playlists returns the playlists call group.
func (c *Client) Playlists() PlaylistsAPI { return PlaylistsAPI{c: c} }

// Auth returns the authentication call group.
func (c *Client) Auth() AuthAPI { return AuthAPI{c: c} }

// Health retrieves the API health probe used by the dashboard.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	if c == nil {
		return HealthStatus{}, fmt.Errorf("client is nil")
	}
	var payload envelope[HealthStatus]
	if err := c.get(ctx, "/api/health", nil, &payload); err != nil {
		return HealthStatus{}, err
	}
	return payload.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	return c.do(ctx, http.MethodGet, rel, nil, dest)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyError(genericErrorMessage)
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
		var failure struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			if msg := strings.TrimSpace(failure.Message); msg != "" {
				apiErr.Message = msg
			}
		}
		// 404 is left for the calling view to handle (missing slugs, deleted
		// items); everything else raises the one global notification.
		if resp.StatusCode != http.StatusNotFound {
			c.notifyError(apiErr.Message)
		}
		return apiErr
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) notifySuccess(message string) {
	if c.notify != nil {
		c.notify.Success(message)
	}
}

func (c *Client) notifyError(message string) {
	if c.notify != nil {
		c.notify.Error(message)
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
