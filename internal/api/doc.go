// Package api provides the HTTP client for the content platform API.
//
// # Overview
//
// This package is the single outbound gateway to the remote content API. It
// handles HTTP communication, the {success, data} response envelope, bearer
// token attachment, and normalization of failures into one-shot user
// notifications. Resource call groups (pages, tracks, playlists, auth) all
// hang off *Client.
//
// # Architecture
//
// The package is split by concern:
//
//   - client.go: HTTP plumbing, error normalization, notification hooks
//   - types.go: transport structs mirroring the API schema
//   - pages.go, tracks.go, playlists.go, auth.go: per-resource call groups
//
// # Client Usage
//
// Create a client with the base URL from configuration, a session token
// source, and a notification sink:
//
//	client, err := api.NewClient(cfg.APIBaseURL, sessions, notices)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	pages, err := client.Pages().GetAll(ctx, api.ListParams{Page: 1, PageSize: 10})
//	if err != nil {
//		// already notified, handle locally
//	}
//
// # Error Policy
//
// Every non-2xx response is returned as an *APIError carrying the status and
// the server's message (falling back to a generic one). The gateway raises
// exactly one error notification per failure, except for 404 responses, which
// stay silent so views can render their own "not found" state. Successful
// mutating calls raise their success notification inside the call group, so
// callers never notify again for the same operation.
package api
