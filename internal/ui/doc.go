// Package ui implements the terminal console with Bubble Tea.
//
// # Overview
//
// A single root Model owns every screen: login, dashboard, the pages,
// tracks and playlists lists, the image and audio libraries, and the
// edit forms. Screens are plain value types embedded in the Model;
// switching views swaps an enum, not a model tree.
//
// # Update Flow
//
// Key messages route through handleKey, which gives modal state
// (confirmation prompts, the help overlay, open search inputs, forms)
// first claim on the keystroke before global navigation runs. All other
// messages are data messages produced by commands in commands.go and
// resolved in handleDataMsg, which writes results into the shared
// store.
//
// Every list fetch carries the generation token handed out by the
// store when the fetch began. A response whose token no longer matches
// is dropped, so a slow page-2 response can never clobber a newer
// page-1 result.
//
// # Rendering
//
// View composes a header bar, the active screen body, and a footer of
// key hints or notification toasts. Styling comes from a named Theme
// resolved to a Styles bundle at construction; cycling themes rebuilds
// the bundle and persists the choice to prefs.
package ui
