package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// hs256Signer signs tokens with a process-wide shared secret. The secret is
// injected once at startup; rotating it invalidates every outstanding token,
// which is the accepted trade-off for a stateless session model.
type hs256Signer struct {
	secret []byte
}

func newHS256Signer(secret []byte) (*hs256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &hs256Signer{secret: secret}, nil
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// hs256Verifier validates HS256 tokens against the same shared secret.
type hs256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

func newHS256Verifier(secret []byte, opts VerifyOptions) (*hs256Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &hs256Verifier{secret: secret, opts: opts}, nil
}

func (v *hs256Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		// Expiry is validated explicitly below so the caller-configured
		// leeway applies consistently.
		jwt.WithoutClaimsValidation(),
	)

	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrMalformed
	}
}
