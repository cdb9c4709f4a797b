package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Credentials carry a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthAPI groups the authentication calls.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token and user object. A rejected login
// surfaces as an *APIError for the login view to render inline.
func (a AuthAPI) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return LoginResult{}, fmt.Errorf("username and password required")
	}
	var payload envelope[LoginResult]
	rel := &url.URL{Path: "/api/auth/login"}
	if err := a.c.do(ctx, "POST", rel, creds, &payload); err != nil {
		return LoginResult{}, err
	}
	return payload.Data, nil
}

// Verify sends a persisted token for server-side verification. A rejection
// means the token must be discarded and the session reverts to anonymous.
func (a AuthAPI) Verify(ctx context.Context, token string) (AuthUser, error) {
	if strings.TrimSpace(token) == "" {
		return AuthUser{}, fmt.Errorf("token required")
	}
	body := struct {
		Token string `json:"token"`
	}{Token: token}
	var payload envelope[AuthUser]
	rel := &url.URL{Path: "/api/auth/verify"}
	if err := a.c.do(ctx, "POST", rel, body, &payload); err != nil {
		return AuthUser{}, err
	}
	return payload.Data, nil
}
