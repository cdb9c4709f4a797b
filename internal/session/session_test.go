package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapedeck/greenroom/internal/api"
)

// fakeAuth records calls and serves canned results.
type fakeAuth struct {
	loginResult  api.LoginResult
	loginErr     error
	verifyUser   api.AuthUser
	verifyErr    error
	loginCalls   int
	verifyCalls  int
	lastVerified string
}

func (f *fakeAuth) Login(ctx context.Context, creds api.Credentials) (api.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return api.LoginResult{}, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuth) Verify(ctx context.Context, token string) (api.AuthUser, error) {
	f.verifyCalls++
	f.lastVerified = token
	if f.verifyErr != nil {
		return api.AuthUser{}, f.verifyErr
	}
	return f.verifyUser, nil
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.toml")
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLogin_SuccessPersistsSession(t *testing.T) {
	path := sessionPath(t)
	auth := &fakeAuth{loginResult: api.LoginResult{
		Token: "tok-1",
		User:  api.AuthUser{ID: "u1", Username: "admin"},
	}}

	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	require.NoError(t, m.Login(context.Background(), "admin", "pw"))
	assert.True(t, m.Authenticated())
	assert.Equal(t, "tok-1", m.Token())
	assert.Equal(t, "admin", m.User().Username)

	// A fresh manager restores the session from disk after verification.
	restored := NewManager(path, DemoConfig{})
	restored.SetAuth(&fakeAuth{verifyUser: api.AuthUser{ID: "u1", Username: "admin"}})
	require.NoError(t, restored.VerifyStartup(context.Background()))
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "tok-1", restored.Token())
}

func TestLogin_RejectedLeavesNoTrace(t *testing.T) {
	path := sessionPath(t)
	auth := &fakeAuth{loginErr: &api.APIError{Status: 401, Message: "invalid credentials"}}

	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	err := m.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no session file may be written on failed login")
}

func TestDemoLogin_LocalOnly(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	path := sessionPath(t)
	auth := &fakeAuth{}
	m := NewManager(path, DemoConfig{Enabled: true, Username: "admin", PasswordHash: string(hash)})
	m.SetAuth(auth)

	require.ErrorIs(t, m.Login(context.Background(), "admin", "nope"), ErrInvalidCredentials)
	require.ErrorIs(t, m.Login(context.Background(), "other", "admin123"), ErrInvalidCredentials)
	assert.False(t, m.Authenticated())

	require.NoError(t, m.Login(context.Background(), "admin", "admin123"))
	assert.True(t, m.Authenticated())
	assert.Empty(t, m.Token(), "demo session carries no token")
	assert.Zero(t, auth.loginCalls, "demo login must not call the network")

	// Demo sessions survive restart while the flag stays on.
	restored := NewManager(path, DemoConfig{Enabled: true, Username: "admin", PasswordHash: string(hash)})
	require.NoError(t, restored.VerifyStartup(context.Background()))
	assert.True(t, restored.Authenticated())

	// With demo mode disabled the persisted flag is discarded.
	strict := NewManager(path, DemoConfig{})
	strict.SetAuth(auth)
	require.NoError(t, strict.VerifyStartup(context.Background()))
	assert.False(t, strict.Authenticated())
}

func TestLogout_ClearsEverythingSynchronously(t *testing.T) {
	path := sessionPath(t)
	m := NewManager(path, DemoConfig{})
	m.SetAuth(&fakeAuth{loginResult: api.LoginResult{Token: "tok-1"}})
	require.NoError(t, m.Login(context.Background(), "admin", "pw"))

	m.Logout()
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	assert.Zero(t, m.User())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "persisted session must be removed")
}

func TestVerifyStartup_RejectedTokenRevertsToAnonymous(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, saveFile(path, sessionFile{Token: "tok-stale"}))

	auth := &fakeAuth{verifyErr: &api.APIError{Status: 401, Message: "expired"}}
	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	require.NoError(t, m.VerifyStartup(context.Background()))
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	assert.Equal(t, 1, auth.verifyCalls)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "rejected token must be discarded")
}

func TestVerifyStartup_TransportFailureKeepsToken(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, saveFile(path, sessionFile{Token: "tok-1"}))

	auth := &fakeAuth{verifyErr: errors.New("dial tcp: connection refused")}
	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	require.Error(t, m.VerifyStartup(context.Background()))
	assert.False(t, m.Authenticated())

	// The credential survives for the next start.
	stored, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored.Token)

	// Once the API is reachable again the same token verifies.
	m2 := NewManager(path, DemoConfig{})
	m2.SetAuth(&fakeAuth{verifyUser: api.AuthUser{ID: "u1", Username: "admin"}})
	require.NoError(t, m2.VerifyStartup(context.Background()))
	assert.True(t, m2.Authenticated())
	assert.Equal(t, "tok-1", m2.Token())
}

func TestVerifyStartup_ExpiredJWTSkipsNetwork(t *testing.T) {
	path := sessionPath(t)
	expired := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, saveFile(path, sessionFile{Token: expired}))

	auth := &fakeAuth{}
	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	require.NoError(t, m.VerifyStartup(context.Background()))
	assert.False(t, m.Authenticated())
	assert.Zero(t, auth.verifyCalls, "expired token must be discarded without a verify call")
}

func TestVerifyStartup_ValidJWTIsVerified(t *testing.T) {
	path := sessionPath(t)
	valid := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, saveFile(path, sessionFile{Token: valid}))

	auth := &fakeAuth{verifyUser: api.AuthUser{ID: "u1", Username: "admin"}}
	m := NewManager(path, DemoConfig{})
	m.SetAuth(auth)

	require.NoError(t, m.VerifyStartup(context.Background()))
	assert.True(t, m.Authenticated())
	assert.Equal(t, valid, m.Token())
	assert.Equal(t, valid, auth.lastVerified)
}

func TestVerifyStartup_NoPersistedStateStaysAnonymous(t *testing.T) {
	m := NewManager(sessionPath(t), DemoConfig{})
	m.SetAuth(&fakeAuth{})
	require.NoError(t, m.VerifyStartup(context.Background()))
	assert.False(t, m.Authenticated())
}

func TestTokenExpired_NonJWTLeftToServer(t *testing.T) {
	assert.False(t, tokenExpired("opaque-token"))
}
