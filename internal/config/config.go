package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything greenroom needs to reach its collaborators:
// the content API, the external media host, and the optional AI content
// providers. All of these are credentials/endpoints, not user input.
type Config struct {
	APIBaseURL string
	LogDir     string

	Media MediaConfig
	Demo  DemoConfig
	AI    AIConfig
}

// MediaConfig carries the media host credentials.
type MediaConfig struct {
	CloudName   string
	ImagePreset string
	AudioPreset string
	AudioFolder string
}

// DemoConfig enables the local-only demo login.
type DemoConfig struct {
	Enabled      bool
	Username     string
	PasswordHash string
}

// AIConfig carries the optional content-generation provider keys.
type AIConfig struct {
	GeminiKey     string
	PerplexityKey string
}

const (
	defaultConfigPath = "~/.config/greenroom/config.toml"
	defaultLogDir     = "~/.local/state/greenroom"
	defaultAPIBaseURL = "http://127.0.0.1:4000"

	envGeminiKey     = "GREENROOM_GEMINI_API_KEY"
	envPerplexityKey = "GREENROOM_PERPLEXITY_API_KEY"
)

type rawConfig struct {
	APIBaseURL string `toml:"api_base_url"`
	LogDir     string `toml:"log_dir"`

	Media struct {
		CloudName   string `toml:"cloud_name"`
		ImagePreset string `toml:"image_preset"`
		AudioPreset string `toml:"audio_preset"`
		AudioFolder string `toml:"audio_folder"`
	} `toml:"media"`

	Demo struct {
		Enabled      bool   `toml:"enabled"`
		Username     string `toml:"username"`
		PasswordHash string `toml:"password_hash"`
	} `toml:"demo"`

	AI struct {
		GeminiKey     string `toml:"gemini_key"`
		PerplexityKey string `toml:"perplexity_key"`
	} `toml:"ai"`
}

// Load locates and parses the greenroom config, falling back to defaults
// when the file is missing. Environment variables override the AI keys so
// they never have to live on disk.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBaseURL: defaultAPIBaseURL, LogDir: mustExpand(defaultLogDir)}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}

	cfg.Media = MediaConfig{
		CloudName:   strings.TrimSpace(raw.Media.CloudName),
		ImagePreset: strings.TrimSpace(raw.Media.ImagePreset),
		AudioPreset: strings.TrimSpace(raw.Media.AudioPreset),
		AudioFolder: strings.TrimSpace(raw.Media.AudioFolder),
	}
	cfg.Demo = DemoConfig{
		Enabled:      raw.Demo.Enabled,
		Username:     strings.TrimSpace(raw.Demo.Username),
		PasswordHash: strings.TrimSpace(raw.Demo.PasswordHash),
	}
	cfg.AI = AIConfig{
		GeminiKey:     strings.TrimSpace(raw.AI.GeminiKey),
		PerplexityKey: strings.TrimSpace(raw.AI.PerplexityKey),
	}
	applyEnv(&cfg)

	return cfg, nil
}

// LogPath returns the path to the console's log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "greenroom.log")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envGeminiKey)); v != "" {
		cfg.AI.GeminiKey = v
	}
	if v := strings.TrimSpace(os.Getenv(envPerplexityKey)); v != "" {
		cfg.AI.PerplexityKey = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
