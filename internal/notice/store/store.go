package store

import (
	"context"
	"errors"

	"github.com/driftlock/noticeboard/internal/notice/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable, and to stop people accidentally opening
// transactions within transactions.
type Store interface {
	Users() Users
	Notifications() Notifications
	BackupCodes() BackupCodes
	LoginChallenges() LoginChallenges

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser removes a user and cascades to their second-factor records.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)

	// UpdateTOTPSecret stages a TOTP secret for a user without enabling it.
	UpdateTOTPSecret(ctx context.Context, userID string, secret string) error

	// EnableTOTP marks TOTP as enabled for a user (sets totp_enabled timestamp).
	EnableTOTP(ctx context.Context, userID string) error

	// DisableTOTP disables TOTP for a user (clears totp_enabled and totp_secret).
	DisableTOTP(ctx context.Context, userID string) error
}

type Notifications interface {
	// GetNotificationByID returns a notification by id.
	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// ListPublished returns a page of published notifications, newest first.
	// offset/limit paginate; the int return is the total published count.
	ListPublished(ctx context.Context, offset, limit int) ([]domain.Notification, int, error)

	// ListAll returns a page of every notification regardless of publish
	// state, newest first, for admin views.
	ListAll(ctx context.Context, offset, limit int) ([]domain.Notification, int, error)

	// CreateNotification inserts a new notification (id is ULID).
	CreateNotification(ctx context.Context, n domain.Notification) error

	// UpdateNotification replaces title, body and publish state.
	UpdateNotification(ctx context.Context, n domain.Notification) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id string) error
}

type BackupCodes interface {
	// CreateBackupCode stores a backup code fingerprint for a user.
	CreateBackupCode(ctx context.Context, userID string, codeHash string) error

	// VerifyBackupCode checks if a backup code fingerprint exists for a user.
	VerifyBackupCode(ctx context.Context, userID string, codeHash string) (bool, error)

	// DeleteBackupCode removes a specific backup code after use.
	DeleteBackupCode(ctx context.Context, userID string, codeHash string) error

	// DeleteAllBackupCodes removes all backup codes for a user.
	DeleteAllBackupCodes(ctx context.Context, userID string) error

	// CountUserBackupCodes returns the number of backup codes for a user.
	CountUserBackupCodes(ctx context.Context, userID string) (int, error)
}

type LoginChallenges interface {
	// CreateLoginChallenge creates a new second-factor challenge.
	CreateLoginChallenge(ctx context.Context, c domain.LoginChallenge) error

	// GetLoginChallenge retrieves a challenge by its token (only if not expired).
	GetLoginChallenge(ctx context.Context, token string) (domain.LoginChallenge, error)

	// IncrementLoginChallengeAttempts bumps the failed attempt counter and
	// returns the updated challenge.
	IncrementLoginChallengeAttempts(ctx context.Context, token string) (domain.LoginChallenge, error)

	// DeleteLoginChallenge removes a challenge by its token.
	DeleteLoginChallenge(ctx context.Context, token string) error

	// DeleteExpiredLoginChallenges removes all expired challenges (housekeeping).
	DeleteExpiredLoginChallenges(ctx context.Context) error
}
