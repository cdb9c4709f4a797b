// Package app provides the orchestration layer for the greenroom console.
//
// # Overview
//
// This package wires together configuration, preferences, session handling,
// the API gateway, the media host client, the shared store, and the UI to
// create the complete greenroom experience. It serves as the composition root
// where all dependencies are initialized and connected; nothing here holds
// module-level state.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/greenroom/config.toml
//  2. Load user preferences (theme, page size) with graceful defaults
//  3. Open the log file; logging never blocks startup
//  4. Create the session manager and the API client, then bind them
//  5. Create the media host client and the AI content generator
//  6. Restore any persisted session before the UI picks its first view
//  7. Launch the background dashboard refresher
//  8. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read console config
//	       ├─────> prefs.Load()          Theme + page size
//	       ├─────> session.NewManager()  Persisted login
//	       ├─────> api.NewClient()       Outbound gateway
//	       ├─────> mediahost.NewClient() Upload/list assets
//	       ├─────> store.NewSized()      Shared list caches
//	       ├─────> StartPoller()         Dashboard refresher
//	       └─────> ui.Run()              Start TUI (blocks)
//
//	Background Refresher Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> DashboardStale()?  skip if fresh   │
//	│  ├─> Health()                           │
//	│  ├─> Pages().GetAll()  (recent 5)       │
//	│  └─> store.UpdateDashboard()            │
//	│      └─> UI reads DashboardSnapshot()   │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The refresher ticks at a fixed interval (default: 30 seconds) but only hits
// the network when the dashboard cooldown has elapsed, so navigating views
// never multiplies API traffic. On failure the previous dashboard data is
// kept and the consecutive-failure count drives the offline indicator.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - API or media host client initialization failure
//
// Recoverable errors (logged, things continue):
//   - Log file cannot be opened (no-op logger is used)
//   - Session restore fails (the UI shows the login view)
//   - Periodic dashboard refresh failures
package app
