package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// PlaylistsAPI groups the playlist resource calls.
type PlaylistsAPI struct {
	c *Client
}

// GetAll retrieves a page of playlists, filtered and paginated per params.
func (p PlaylistsAPI) GetAll(ctx context.Context, params ListParams) (PlaylistList, error) {
	var payload envelope[PlaylistList]
	if err := p.c.get(ctx, "/api/playlists", listQuery(params), &payload); err != nil {
		return PlaylistList{}, err
	}
	return payload.Data, nil
}

// GetByID retrieves a single playlist, including its ordered tracks.
func (p PlaylistsAPI) GetByID(ctx context.Context, id string) (Playlist, error) {
	if strings.TrimSpace(id) == "" {
		return Playlist{}, fmt.Errorf("playlist id required")
	}
	var payload envelope[Playlist]
	if err := p.c.get(ctx, "/api/playlists/"+url.PathEscape(id), nil, &payload); err != nil {
		return Playlist{}, err
	}
	return payload.Data, nil
}

// Create creates a new playlist and raises the success notification itself.
func (p PlaylistsAPI) Create(ctx context.Context, data PlaylistData) (Playlist, error) {
	var payload envelope[Playlist]
	rel := &url.URL{Path: "/api/playlists"}
	if err := p.c.do(ctx, "POST", rel, data, &payload); err != nil {
		return Playlist{}, err
	}
	p.c.notifySuccess("Playlist created")
	return payload.Data, nil
}

// Update updates an existing playlist and raises the success notification.
func (p PlaylistsAPI) Update(ctx context.Context, id string, data PlaylistData) (Playlist, error) {
	if strings.TrimSpace(id) == "" {
		return Playlist{}, fmt.Errorf("playlist id required")
	}
	var payload envelope[Playlist]
	rel := &url.URL{Path: "/api/playlists/" + url.PathEscape(id)}
	if err := p.c.do(ctx, "PUT", rel, data, &payload); err != nil {
		return Playlist{}, err
	}
	p.c.notifySuccess("Playlist updated")
	return payload.Data, nil
}

// Delete deletes a playlist by identifier and raises the success notification.
func (p PlaylistsAPI) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("playlist id required")
	}
	rel := &url.URL{Path: "/api/playlists/" + url.PathEscape(id)}
	if err := p.c.do(ctx, "DELETE", rel, nil, nil); err != nil {
		return err
	}
	p.c.notifySuccess("Playlist deleted")
	return nil
}

// AddTracks appends tracks to a playlist and raises the success notification.
func (p PlaylistsAPI) AddTracks(ctx context.Context, id string, trackIDs []string) (Playlist, error) {
	if strings.TrimSpace(id) == "" {
		return Playlist{}, fmt.Errorf("playlist id required")
	}
	if len(trackIDs) == 0 {
		return Playlist{}, fmt.Errorf("track ids required")
	}
	body := struct {
		TrackIDs []string `json:"trackIds"`
	}{TrackIDs: trackIDs}
	var payload envelope[Playlist]
	rel := &url.URL{Path: "/api/playlists/" + url.PathEscape(id) + "/tracks"}
	if err := p.c.do(ctx, "POST", rel, body, &payload); err != nil {
		return Playlist{}, err
	}
	p.c.notifySuccess("Tracks added to playlist")
	return payload.Data, nil
}

// RemoveTrack removes one track from a playlist and raises the success
// notification.
func (p PlaylistsAPI) RemoveTrack(ctx context.Context, id, trackID string) (Playlist, error) {
	if strings.TrimSpace(id) == "" {
		return Playlist{}, fmt.Errorf("playlist id required")
	}
	if strings.TrimSpace(trackID) == "" {
		return Playlist{}, fmt.Errorf("track id required")
	}
	var payload envelope[Playlist]
	rel := &url.URL{Path: "/api/playlists/" + url.PathEscape(id) + "/tracks/" + url.PathEscape(trackID)}
	if err := p.c.do(ctx, "DELETE", rel, nil, &payload); err != nil {
		return Playlist{}, err
	}
	p.c.notifySuccess("Track removed from playlist")
	return payload.Data, nil
}
