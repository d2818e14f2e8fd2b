package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/cryptox"
	"github.com/driftlock/noticeboard/pkg/idx"
	"github.com/driftlock/noticeboard/pkg/jwtx"
	"github.com/driftlock/noticeboard/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

const (
	// MaxMFAAttempts is the maximum number of failed second-factor attempts
	// allowed per login challenge.
	MaxMFAAttempts = 5

	// ChallengeTTL is how long a login challenge stays redeemable.
	ChallengeTTL = 5 * time.Minute

	minPasswordLength = 6
	minUsernameLength = 3
	maxUsernameLength = 32
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrInvalidChallenge   = errors.New("invalid_challenge")
	ErrTooManyAttempts    = errors.New("too_many_attempts")
)

// Second-factor methods accepted by CompleteMFA.
const (
	MFAMethodTOTP       = "totp"
	MFAMethodBackupCode = "backup_code"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// LoginResult is either a minted access token plus the public view of the
// account, or a second-factor challenge when the account has TOTP enabled.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        domain.User

	MFARequired bool
	MFAToken    string
	Methods     []string
}

type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Register creates a new account with a hashed password. Usernames are
// unique; a race between two registrations is settled by the database
// constraint rather than a read-then-write check.
func (s *AuthService) Register(ctx context.Context, username, password string, isAdmin bool) (domain.User, error) {
	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}
	if len(password) < minPasswordLength {
		return domain.User{}, ErrInvalidPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// ChangePassword replaces the account's password after verifying the current
// one. Outstanding tokens stay valid; there is no revocation list.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrInvalidPassword
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// Login checks the password and either mints an access token or, for
// TOTP-enabled accounts, hands back a challenge to finish via CompleteMFA.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn time comparable to a real verify so absent usernames
			// are not distinguishable by latency.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login password mismatch", slog.String("user_id", user.ID))
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if user.HasTOTP() {
		return s.issueChallenge(ctx, user)
	}

	return s.issueToken(user, time.Now())
}

// CompleteMFA redeems a login challenge with a TOTP or backup code and mints
// the access token the password step withheld.
func (s *AuthService) CompleteMFA(ctx context.Context, mfaToken, method, code string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	challenge, err := s.Store.LoginChallenges().GetLoginChallenge(ctx, mfaToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidChallenge
		}
		return LoginResult{}, err
	}

	if challenge.Attempts >= MaxMFAAttempts {
		_ = s.Store.LoginChallenges().DeleteLoginChallenge(ctx, mfaToken)
		return LoginResult{}, ErrTooManyAttempts
	}

	user, err := s.Store.Users().GetUserByID(ctx, challenge.UserID)
	if err != nil {
		return LoginResult{}, err
	}
	if !user.HasTOTP() {
		// TOTP was disabled while the challenge was pending.
		_ = s.Store.LoginChallenges().DeleteLoginChallenge(ctx, mfaToken)
		return LoginResult{}, ErrInvalidChallenge
	}

	ok, err := s.verifySecondFactor(ctx, user, method, code)
	if err != nil {
		return LoginResult{}, err
	}
	if !ok {
		updated, incErr := s.Store.LoginChallenges().IncrementLoginChallengeAttempts(ctx, mfaToken)
		if incErr != nil && !errors.Is(incErr, store.ErrNotFound) {
			return LoginResult{}, incErr
		}

		l.Info("second factor rejected",
			slog.String("user_id", user.ID),
			slog.String("method", method),
			slog.Int("attempts", updated.Attempts),
		)

		if updated.Attempts >= MaxMFAAttempts {
			_ = s.Store.LoginChallenges().DeleteLoginChallenge(ctx, mfaToken)
			return LoginResult{}, ErrTooManyAttempts
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.Store.LoginChallenges().DeleteLoginChallenge(ctx, mfaToken); err != nil {
		return LoginResult{}, err
	}

	return s.issueToken(user, time.Now())
}

func (s *AuthService) verifySecondFactor(ctx context.Context, user domain.User, method, code string) (bool, error) {
	switch method {
	case MFAMethodTOTP:
		return totp.Validate(code, *user.TOTPSecret), nil

	case MFAMethodBackupCode:
		fp := cryptox.FingerprintToken(code)

		ok, err := s.Store.BackupCodes().VerifyBackupCode(ctx, user.ID, fp)
		if err != nil || !ok {
			return false, err
		}

		// Backup codes are single use.
		if err := s.Store.BackupCodes().DeleteBackupCode(ctx, user.ID, fp); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, nil
	}
}

func (s *AuthService) issueChallenge(ctx context.Context, user domain.User) (LoginResult, error) {
	// The challenge token is a bearer credential for the second login step,
	// so it must be unguessable rather than merely unique.
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate challenge token: %w", err)
	}

	now := time.Now().UTC()
	challenge := domain.LoginChallenge{
		ID:        token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(ChallengeTTL),
	}
	if err := s.Store.LoginChallenges().CreateLoginChallenge(ctx, challenge); err != nil {
		return LoginResult{}, err
	}

	slogx.FromContext(ctx).Info("login challenge issued", slog.String("user_id", user.ID))

	return LoginResult{
		MFARequired: true,
		MFAToken:    challenge.ID,
		Methods:     []string{MFAMethodTOTP, MFAMethodBackupCode},
	}, nil
}

func (s *AuthService) issueToken(user domain.User, now time.Time) (LoginResult, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return LoginResult{
		AccessToken: token,
		ExpiresIn:   ttl,
		User:        user,
	}, nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}
