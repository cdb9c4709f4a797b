package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// sessionFile is the persisted shape of a session. Exactly one file under a
// fixed key; nothing else is persisted by the console.
type sessionFile struct {
	Token string      `toml:"token"`
	Demo  bool        `toml:"demo"`
	User  sessionUser `toml:"user"`
}

type sessionUser struct {
	ID       string `toml:"id"`
	Username string `toml:"username"`
	Role     string `toml:"role"`
}

const defaultSessionPath = "~/.config/greenroom/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

func loadFile(path string) (sessionFile, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return sessionFile{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sessionFile{}, nil
		}
		return sessionFile{}, fmt.Errorf("read session: %w", err)
	}

	var stored sessionFile
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return sessionFile{}, fmt.Errorf("parse session: %w", err)
	}
	return stored, nil
}

func saveFile(path string, record sessionFile) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// The file holds a credential; keep it owner-only.
	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (m *Manager) clearFile() error {
	resolved, err := expandPath(m.path)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
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
