package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Now()
	claims := NewAccessClaims("user-1", "alice", 30*time.Minute, "noticeboard", now)

	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "noticeboard", claims.Issuer)
	require.WithinDuration(t, now, claims.IssuedAt.Time, time.Second)
	require.WithinDuration(t, now.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestValidateIssuer(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "noticeboard"}}

	require.NoError(t, claims.ValidateIssuer(""))
	require.NoError(t, claims.ValidateIssuer("noticeboard"))
	require.ErrorIs(t, claims.ValidateIssuer("other"), ErrIssuer)
}

func TestValidateExpiry(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		claims := NewAccessClaims("u", "n", time.Hour, "", time.Now())
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token fails", func(t *testing.T) {
		claims := NewAccessClaims("u", "n", time.Minute, "", time.Now().Add(-time.Hour))
		require.ErrorIs(t, claims.ValidateExpiry(), ErrExpired)
	})

	t.Run("not-yet-valid token fails", func(t *testing.T) {
		claims := NewAccessClaims("u", "n", time.Hour, "", time.Now().Add(time.Hour))
		require.ErrorIs(t, claims.ValidateExpiry(), ErrNotYetValid)
	})

	t.Run("no exp or nbf passes", func(t *testing.T) {
		var claims Claims
		require.NoError(t, claims.ValidateExpiry())
	})
}
