package noticesdk

import "time"

// ErrorResponse is the JSON error envelope returned by the service.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw12345"`
}

// LoginResponse is returned when authentication completes (no second factor,
// or after the challenge step).
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresIn   int          `json:"expires_in" example:"604800"` // seconds until expiry
	User        UserResponse `json:"user"`
}

// MFAChallengeResponse is returned (as a 409) when the password was accepted
// but the account requires a second factor.
type MFAChallengeResponse struct {
	MFARequired bool     `json:"mfa_required"` // always true
	MFAToken    string   `json:"mfa_token"`    // opaque challenge token
	Methods     []string `json:"mfa_methods"`  // e.g. ["totp", "backup_code"]
}

// CompleteMFARequest is the body for POST /api/auth/login/mfa.
type CompleteMFARequest struct {
	MFAToken string `json:"mfa_token"`
	Method   string `json:"method" example:"totp"` // "totp" or "backup_code"
	Code     string `json:"code" example:"123456"`
}

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw12345"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

// ChangePasswordRequest is the body for POST /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	IsAdmin     bool      `json:"is_admin"`
	TOTPEnabled bool      `json:"totp_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TOTPSetupResponse carries the staged secret for enrollment.
type TOTPSetupResponse struct {
	Secret  string `json:"secret"`  // base32 encoded
	URL     string `json:"url"`     // otpauth:// URL for QR code generation
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

// TOTPEnableRequest is the body for POST /api/auth/2fa/enable.
type TOTPEnableRequest struct {
	Code string `json:"code" example:"123456"`
}

// TOTPEnableResponse returns the single-use backup codes. They are shown
// exactly once.
type TOTPEnableResponse struct {
	BackupCodes []string `json:"backup_codes"`
}

// TOTPDisableRequest is the body for POST /api/auth/2fa/disable.
type TOTPDisableRequest struct {
	Code string `json:"code" example:"123456"`
}

// TOTPStatusResponse reports the account's second-factor state.
type TOTPStatusResponse struct {
	Enabled         bool `json:"enabled"`
	Pending         bool `json:"pending"`
	BackupCodesLeft int  `json:"backup_codes_left"`
}

// NotificationResponse is a single notification.
type NotificationResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Priority    string     `json:"priority" example:"medium"` // low, medium or high
	CreatedBy   string     `json:"created_by"`
	Author      string     `json:"author"` // username of the authoring admin
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NotificationListResponse is a page of notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Pages         int                    `json:"pages"`
	CurrentPage   int                    `json:"current_page"`
	PerPage       int                    `json:"per_page"`
}

// CreateNotificationRequest is the body for POST /api/admin/notifications.
// Priority defaults to "medium" when empty.
type CreateNotificationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority,omitempty" example:"medium"`
	Publish  bool   `json:"publish"`
}

// UpdateNotificationRequest is the body for PUT /api/admin/notifications/{id}.
type UpdateNotificationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority,omitempty" example:"medium"`
	Publish  bool   `json:"publish"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
