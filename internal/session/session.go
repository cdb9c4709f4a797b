// Package session manages the console's authenticated-identity state: the
// token and user returned by the content API, persisted across runs in a
// single TOML file.
//
// Two backings exist for the same component. The primary flow is
// server-verified: login posts credentials, and on every startup the
// persisted token is re-verified against the API, reverting to anonymous on
// rejection. Demo mode is a degraded, local-only flow kept behind a
// capability flag: credentials are checked against a fixed username and
// bcrypt hash with no network call.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapedeck/greenroom/internal/api"
)

// AuthService is the slice of the API gateway the session needs. Implemented
// by api.AuthAPI and by fakes in tests.
type AuthService interface {
	Login(ctx context.Context, creds api.Credentials) (api.LoginResult, error)
	Verify(ctx context.Context, token string) (api.AuthUser, error)
}

// DemoConfig enables the local-only demo login.
type DemoConfig struct {
	Enabled      bool
	Username     string
	PasswordHash string // bcrypt hash of the demo password
}

// ErrInvalidCredentials is returned when a login is rejected; the login view
// renders it inline.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Manager holds the in-memory session and mirrors it to persistent storage.
// It implements api.TokenSource for the gateway.
type Manager struct {
	mu   sync.RWMutex
	path string
	demo DemoConfig
	auth AuthService

	token         string
	user          api.AuthUser
	authenticated bool
	demoSession   bool
}

// NewManager builds a Manager persisting to path (empty uses the default
// ~/.config/greenroom/session.toml).
func NewManager(path string, demo DemoConfig) *Manager {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Manager{path: path, demo: demo}
}

// SetAuth binds the API auth group. Wiring is two-phase because the gateway
// needs the Manager as its token source before the auth group exists.
func (m *Manager) SetAuth(auth AuthService) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Token returns the current session token, or empty when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Authenticated reports whether a session is present.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

// User returns the authenticated user, zero when anonymous.
func (m *Manager) User() api.AuthUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// DemoMode reports whether the local-only demo flow is enabled.
func (m *Manager) DemoMode() bool {
	return m.demo.Enabled
}

// Login authenticates. In demo mode the credentials are compared locally
// against the configured pair; otherwise they are posted to the API. On
// success the session is persisted; on failure nothing is written and the
// session stays anonymous.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if m.demo.Enabled {
		return m.demoLogin(username, password)
	}

	m.mu.RLock()
	auth := m.auth
	m.mu.RUnlock()
	if auth == nil {
		return fmt.Errorf("auth service not configured")
	}

	result, err := auth.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403) {
			return ErrInvalidCredentials
		}
		return err
	}

	m.mu.Lock()
	m.token = result.Token
	m.user = result.User
	m.authenticated = true
	m.demoSession = false
	m.mu.Unlock()

	return m.persist()
}

func (m *Manager) demoLogin(username, password string) error {
	if username != m.demo.Username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.demo.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	m.mu.Lock()
	m.token = ""
	m.user = api.AuthUser{Username: username}
	m.authenticated = true
	m.demoSession = true
	m.mu.Unlock()

	return m.persist()
}

// Logout clears all in-memory and persisted session state unconditionally
// and synchronously. No server call is made.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = api.AuthUser{}
	m.authenticated = false
	m.demoSession = false
	m.mu.Unlock()

	_ = m.clearFile()
}

// VerifyStartup loads the persisted session and verifies it. A persisted
// demo flag restores the demo session when demo mode is still enabled. A
// persisted token that is already expired, or that the server rejects with
// 401/403, is discarded and the session reverts to anonymous. Transport
// failures keep the persisted token and return the error; the session comes
// up anonymous for this run only. The UI shows a loading
// affordance while this runs and renders no protected view until it returns.
func (m *Manager) VerifyStartup(ctx context.Context) error {
	stored, err := loadFile(m.path)
	if err != nil {
		// Unreadable session files degrade to anonymous.
		return nil
	}

	if stored.Demo {
		if !m.demo.Enabled {
			_ = m.clearFile()
			return nil
		}
		m.mu.Lock()
		m.user = api.AuthUser{Username: m.demo.Username}
		m.authenticated = true
		m.demoSession = true
		m.mu.Unlock()
		return nil
	}

	token := strings.TrimSpace(stored.Token)
	if token == "" {
		return nil
	}
	if tokenExpired(token) {
		_ = m.clearFile()
		return nil
	}

	m.mu.RLock()
	auth := m.auth
	m.mu.RUnlock()
	if auth == nil {
		return fmt.Errorf("auth service not configured")
	}

	user, err := auth.Verify(ctx, token)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403) {
			_ = m.clearFile()
			return nil
		}
		// A transport failure is not a rejection; keep the token for the
		// next start and come up anonymous.
		return err
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.authenticated = true
	m.demoSession = false
	m.mu.Unlock()
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Non-JWT tokens and tokens without exp are left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (m *Manager) persist() error {
	m.mu.RLock()
	record := sessionFile{
		Token: m.token,
		Demo:  m.demoSession,
		User: sessionUser{
			ID:       m.user.ID,
			Username: m.user.Username,
			Role:     m.user.Role,
		},
	}
	m.mu.RUnlock()
	return saveFile(m.path, record)
}
