package mediahost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Kind selects which media host resource family a call targets.
type Kind string

// Resource families on the media host. The host has no dedicated audio
// endpoint, so audio travels through the general video/binary family.
const (
	KindImage Kind = "image"
	KindAudio Kind = "video"
)

// Notifier receives the one-shot upload notifications. Implemented by
// *notify.Center.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Asset is an uploaded media record as the host reports it.
type Asset struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	CreatedAt string `json:"created_at"`
	Name      string `json:"name,omitempty"`
}

// ParsedCreatedAt returns the parsed created_at timestamp. The host reports
// RFC 3339; anything else parses as zero.
func (a Asset) ParsedCreatedAt() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, a.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// AssetPage is one cursor page of a media listing.
type AssetPage struct {
	Assets     []Asset
	NextCursor string
	HasMore    bool
}

// Config carries the media host collaborator credentials. These come from
// configuration, never from user input.
type Config struct {
	CloudName   string
	ImagePreset string
	AudioPreset string
	AudioFolder string
	UploadURL   string // override for tests; defaults to the public host
	ListURL     string // override for tests; defaults to the public host
}

// Client uploads, lists, deletes, and renames assets on the external media
// host.
type Client struct {
	cfg    Config
	http   *http.Client
	notify Notifier
}

const (
	defaultUploadURL = "https://api.mediahost.example/v1_1"
	defaultListURL   = "https://api.mediahost.example/v1_1"
	uploadTimeout    = 60 * time.Second

	defaultAudioFolder = "audio-uploads"
)

// NewClient builds a media host client. notifier may be nil.
func NewClient(cfg Config, notifier Notifier) (*Client, error) {
	if strings.TrimSpace(cfg.CloudName) == "" {
		return nil, fmt.Errorf("media host cloud name required")
	}
	if strings.TrimSpace(cfg.UploadURL) == "" {
		cfg.UploadURL = defaultUploadURL
	}
	if strings.TrimSpace(cfg.ListURL) == "" {
		cfg.ListURL = defaultListURL
	}
	if strings.TrimSpace(cfg.AudioFolder) == "" {
		cfg.AudioFolder = defaultAudioFolder
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: uploadTimeout},
		notify: notifier,
	}, nil
}

// UploadImage uploads an image file and returns the host-assigned asset.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (Asset, error) {
	asset, err := c.upload(ctx, KindImage, c.cfg.ImagePreset, "", filename, file)
	if err != nil {
		return Asset{}, err
	}
	c.notifySuccess("Image uploaded")
	return asset, nil
}

// UploadAudio uploads an audio file through the host's video endpoint,
// tagged into the configured audio folder.
func (c *Client) UploadAudio(ctx context.Context, filename string, file io.Reader) (Asset, error) {
	asset, err := c.upload(ctx, KindAudio, c.cfg.AudioPreset, c.cfg.AudioFolder, filename, file)
	if err != nil {
		return Asset{}, err
	}
	c.notifySuccess("Audio uploaded")
	return asset, nil
}

// List retrieves one cursor page of uploaded assets. Pass the previous
// page's NextCursor to continue; an empty cursor starts from the beginning.
func (c *Client) List(ctx context.Context, kind Kind, limit int, cursor string) (AssetPage, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		values.Set("next_cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/%s/resources/%s", strings.TrimRight(c.cfg.ListURL, "/"), c.cfg.CloudName, kind)
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return AssetPage{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyError("Failed to list media")
		return AssetPage{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		c.notifyError("Failed to list media")
		return AssetPage{}, fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var payload struct {
		Resources  []Asset `json:"resources"`
		NextCursor string  `json:"next_cursor"`
		HasMore    bool    `json:"has_more"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AssetPage{}, fmt.Errorf("decode response: %w", err)
	}
	return AssetPage{
		Assets:     payload.Resources,
		NextCursor: payload.NextCursor,
		HasMore:    payload.HasMore || payload.NextCursor != "",
	}, nil
}

// Delete removes an asset from the host and raises the success notification.
func (c *Client) Delete(ctx context.Context, kind Kind, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return fmt.Errorf("public id required")
	}
	endpoint := fmt.Sprintf("%s/%s/resources/%s/%s",
		strings.TrimRight(c.cfg.ListURL, "/"), c.cfg.CloudName, kind, url.PathEscape(publicID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyError("Failed to delete media")
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		c.notifyError("Failed to delete media")
		return fmt.Errorf("media host returned status %d", resp.StatusCode)
	}
	c.notifySuccess("Media deleted")
	return nil
}

// Rename updates an asset's display name and raises the success notification.
func (c *Client) Rename(ctx context.Context, kind Kind, publicID, name string) error {
	if strings.TrimSpace(publicID) == "" {
		return fmt.Errorf("public id required")
	}
	body := strings.NewReader(url.Values{"name": {name}}.Encode())
	endpoint := fmt.Sprintf("%s/%s/resources/%s/%s",
		strings.TrimRight(c.cfg.ListURL, "/"), c.cfg.CloudName, kind, url.PathEscape(publicID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyError("Failed to rename media")
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		c.notifyError("Failed to rename media")
		return fmt.Errorf("media host returned status %d", resp.StatusCode)
	}
	c.notifySuccess("Media renamed")
	return nil
}

func (c *Client) upload(ctx context.Context, kind Kind, preset, folder, filename string, file io.Reader) (Asset, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		defer func() { _ = pw.Close() }()
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("upload_preset", preset); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if folder != "" {
			if err := writer.WriteField("folder", folder); err != nil {
				_ = pw.CloseWithError(err)
				return
			}
		}
		_ = pw.CloseWithError(writer.Close())
	}()

	endpoint := fmt.Sprintf("%s/%s/%s/upload", strings.TrimRight(c.cfg.UploadURL, "/"), c.cfg.CloudName, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return Asset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyError("Upload failed")
		return Asset{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		c.notifyError("Upload failed")
		return Asset{}, fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var asset Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		c.notifyError("Upload failed")
		return Asset{}, fmt.Errorf("decode response: %w", err)
	}
	return asset, nil
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
