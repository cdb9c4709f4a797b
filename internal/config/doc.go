// Package config handles loading and parsing greenroom configuration files.
//
// # Overview
//
// This package reads the console's TOML configuration: the content API base
// URL, the media host credentials (cloud name, upload presets, audio
// folder), the optional demo-mode login, and the optional AI provider keys.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/greenroom/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// AI provider keys may also come from the environment
// (GREENROOM_GEMINI_API_KEY, GREENROOM_PERPLEXITY_API_KEY), which always
// overrides the file so keys never have to live on disk.
//
// # Default Values
//
//   - Config file: ~/.config/greenroom/config.toml
//   - API base URL: http://127.0.0.1:4000
//   - Log directory: ~/.local/state/greenroom
//   - Log file: <log_dir>/greenroom.log
//
// # TOML Format
//
// Example config.toml:
//
//	api_base_url = "https://api.example.com"
//	log_dir = "~/.local/state/greenroom"
//
//	[media]
//	cloud_name = "demo-cloud"
//	image_preset = "img-preset"
//	audio_preset = "aud-preset"
//	audio_folder = "da-audios"
//
//	[demo]
//	enabled = false
//	username = "admin"
//	password_hash = "<bcrypt hash>"
//
//	[ai]
//	gemini_key = ""
//	perplexity_key = ""
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors.
// Missing config files are NOT an error - defaults are used instead, so the
// console works out-of-the-box against a local API.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
