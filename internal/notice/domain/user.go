package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string     // argon2 encoded
	IsAdmin      bool
	TOTPEnabled  *time.Time // Timestamp when TOTP was enabled (nullable)
	TOTPSecret   *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasTOTP reports whether the user finished TOTP enrollment.
func (u User) HasTOTP() bool {
	return u.TOTPEnabled != nil && u.TOTPSecret != nil
}
