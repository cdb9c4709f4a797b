// Package store provides thread-safe cached list state for the console.
//
// # Overview
//
// This package implements the client-side cache that keeps list views
// responsive without redundant network calls. Each resource (pages, tracks,
// playlists, images, audios) owns one cache entry holding the last fetched
// items, loading flags, an error message, pagination and search cursor
// state, and a freshness timestamp. The dashboard keeps its own aggregate
// snapshot.
//
// # Architecture
//
// Fetch flow for one entry:
//
//	View (UI command):                 Entry:
//	┌─────────────────────┐           ┌──────────────────────────┐
//	│ ShouldFetch(cooldown)│──true───→│ gen := BeginFetch(reset) │
//	│   call API           │          │   ...request in flight...│
//	│   ResolveFetch(gen)  │─────────→│ commit or discard        │
//	└─────────────────────┘           └──────────────────────────┘
//
// Every transition is mutex-guarded and snapshots are defensive copies, so
// Bubble Tea command goroutines and the render loop never share mutable
// state.
//
// # Freshness And Generations
//
// ShouldFetch applies a per-resource cooldown: a fetch is skipped while the
// entry's lastFetched is inside the window. BeginFetch hands out a request
// generation; ResolveFetch discards any payload whose generation has been
// superseded. Rapid repeated fetches therefore commit only the most recently
// issued request instead of whichever response happened to resolve last.
//
// # Terminal States
//
// A successful reset fetch replaces items and stamps the timestamp; a
// successful load-more appends in response order. A failed fetch leaves the
// previous items untouched and records the error message. Loading flags
// drop on every terminal path. An empty items slice with no error is the
// valid "no items" state, distinct from an error.
package store
