package domain

import "time"

// LoginChallenge represents a pending second-factor step. A successful
// password check on a TOTP-enabled account creates one, and the client
// finishes login by presenting its token together with a TOTP or backup code.
type LoginChallenge struct {
	ID        string // random opaque token (the mfa_token handed to the client)
	UserID    string
	Attempts  int // Failed verification attempts (max 5 to prevent brute force)
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TOTPEnrollment is what setup returns so the user can add the secret to an
// authenticator app. Enrollment stays pending until the user proves they can
// produce a valid code.
type TOTPEnrollment struct {
	Secret  string // Base32 encoded secret for TOTP
	URL     string // otpauth:// URL for QR code generation
	Issuer  string // Issuer name (e.g., service name)
	Account string // Account name (the username)
}
