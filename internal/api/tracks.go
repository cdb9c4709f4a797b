package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// TracksAPI groups the track resource calls.
type TracksAPI struct {
	c *Client
}

// GetAll retrieves a page of tracks, filtered and paginated per params.
func (t TracksAPI) GetAll(ctx context.Context, params ListParams) (TrackList, error) {
	var payload envelope[TrackList]
	if err := t.c.get(ctx, "/api/tracks", listQuery(params), &payload); err != nil {
		return TrackList{}, err
	}
	return payload.Data, nil
}

// GetByID retrieves a single track by its identifier.
func (t TracksAPI) GetByID(ctx context.Context, id string) (Track, error) {
	if strings.TrimSpace(id) == "" {
		return Track{}, fmt.Errorf("track id required")
	}
	var payload envelope[Track]
	if err := t.c.get(ctx, "/api/tracks/"+url.PathEscape(id), nil, &payload); err != nil {
		return Track{}, err
	}
	return payload.Data, nil
}

// Create creates a new track and raises the success notification itself.
func (t TracksAPI) Create(ctx context.Context, data TrackData) (Track, error) {
	var payload envelope[Track]
	rel := &url.URL{Path: "/api/tracks"}
	if err := t.c.do(ctx, "POST", rel, data, &payload); err != nil {
		return Track{}, err
	}
	t.c.notifySuccess("Track created")
	return payload.Data, nil
}

// Update updates an existing track and raises the success notification itself.
func (t TracksAPI) Update(ctx context.Context, id string, data TrackData) (Track, error) {
	if strings.TrimSpace(id) == "" {
		return Track{}, fmt.Errorf("track id required")
	}
	var payload envelope[Track]
	rel := &url.URL{Path: "/api/tracks/" + url.PathEscape(id)}
	if err := t.c.do(ctx, "PUT", rel, data, &payload); err != nil {
		return Track{}, err
	}
	t.c.notifySuccess("Track updated")
	return payload.Data, nil
}

// Delete deletes a track by identifier and raises the success notification.
func (t TracksAPI) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("track id required")
	}
	rel := &url.URL{Path: "/api/tracks/" + url.PathEscape(id)}
	if err := t.c.do(ctx, "DELETE", rel, nil, nil); err != nil {
		return err
	}
	t.c.notifySuccess("Track deleted")
	return nil
}
