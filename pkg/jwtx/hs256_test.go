package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	secret := []byte("test-secret-at-least-32-bytes-long!!")

	signer, err := NewSignerHS256(secret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	verifier, err := NewVerifierHS256(secret, VerifyOptions{Issuer: "noticeboard"})
	require.NoError(t, err)

	claims := NewAccessClaims("01J0USER", "alice", time.Hour, "noticeboard", time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J0USER", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "noticeboard", got.Issuer)
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	signer, err := NewSignerHS256([]byte("secret-one-secret-one-secret-one"))
	require.NoError(t, err)

	verifier, err := NewVerifierHS256([]byte("secret-two-secret-two-secret-two"), VerifyOptions{})
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("u1", "alice", time.Hour, "", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("alg-secret-alg-secret-alg-secret")

	verifier, err := NewVerifierHS256(secret, VerifyOptions{})
	require.NoError(t, err)

	// A token signed with a different HMAC variant must not verify, even
	// with the right secret.
	claims := NewAccessClaims("u1", "alice", time.Hour, "", time.Now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256RejectsMalformed(t *testing.T) {
	verifier, err := NewVerifierHS256([]byte("some-secret-some-secret-some-sec"), VerifyOptions{})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(raw)
		require.Error(t, err, "raw=%q", raw)
	}
}

func TestHS256RejectsExpired(t *testing.T) {
	secret := []byte("expiry-secret-expiry-secret-1234")

	signer, err := NewSignerHS256(secret)
	require.NoError(t, err)

	// Issued two hours ago with a one hour TTL.
	claims := NewAccessClaims("u1", "alice", time.Hour, "", time.Now().Add(-2*time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier, err := NewVerifierHS256(secret, VerifyOptions{})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)

	// A generous leeway covering the overshoot lets it pass.
	lenient, err := NewVerifierHS256(secret, VerifyOptions{Leeway: 3 * time.Hour})
	require.NoError(t, err)

	_, err = lenient.Verify(token)
	require.NoError(t, err)
}

func TestHS256RejectsIssuerMismatch(t *testing.T) {
	secret := []byte("issuer-secret-issuer-secret-1234")

	signer, err := NewSignerHS256(secret)
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("u1", "alice", time.Hour, "someone-else", time.Now()))
	require.NoError(t, err)

	verifier, err := NewVerifierHS256(secret, VerifyOptions{Issuer: "noticeboard"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256EmptySecret(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewVerifierHS256(nil, VerifyOptions{})
	require.ErrorIs(t, err, ErrEmptySecret)
}
