package noticesdk

import (
	"context"
	"net/http"
	"time"
)

// Session represents an authenticated session holding a bearer access token.
// Tokens are stateless JWTs; there is no refresh flow, so an expired session
// requires a fresh Login.
type Session struct {
	client *SDKClient

	accessToken string
	expiresAt   time.Time
	user        UserResponse
}

// newSession creates a session from a login response.
func newSession(client *SDKClient, tokenResp *LoginResponse) *Session {
	return &Session{
		client:      client,
		accessToken: tokenResp.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
		user:        tokenResp.User,
	}
}

// NewSessionFromToken creates a session from a previously stored access token.
func (c *SDKClient) NewSessionFromToken(accessToken string, expiresAt time.Time) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		expiresAt:   expiresAt,
	}
}

// AccessToken exposes the raw bearer token, e.g. for persisting a session.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt reports when the token stops being valid.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User returns the account view captured at login. Sessions built from a
// stored token carry a zero value; use Me for a fresh copy.
func (s *Session) User() UserResponse { return s.user }

// Me fetches the authenticated user's account.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// ChangePassword replaces the account password. The session's token keeps
// working until it expires.
func (s *Session) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/password", ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// Logout ends the session server-side. Tokens are stateless, so this mostly
// exists to give clients a uniform flow; the local token is cleared either way.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}

	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.accessToken = ""
	return nil
}
