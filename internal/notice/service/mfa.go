package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/cryptox"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidTOTPCode    = errors.New("invalid_totp_code")
	ErrTOTPNotEnrolled    = errors.New("totp_not_enrolled")
	ErrTOTPNotEnabled     = errors.New("totp_not_enabled")
	ErrTOTPAlreadyEnabled = errors.New("totp_already_enabled")
)

// MFAStatus describes where a user sits in the TOTP lifecycle.
type MFAStatus struct {
	Enabled         bool
	Pending         bool // secret staged but not yet verified
	BackupCodesLeft int
}

type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name for TOTP (e.g., "Noticeboard")
}

// Setup generates a TOTP secret for the user and returns it along with the
// otpauth URL. This does NOT enable the second factor yet - the user must
// verify a code via Enable first. Calling Setup again while enrollment is
// still pending replaces the staged secret.
func (s *MFAService) Setup(ctx context.Context, userID string) (domain.TOTPEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TOTPEnabled != nil {
		return domain.TOTPEnrollment{}, ErrTOTPAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("failed to store TOTP secret: %w", err)
	}

	return domain.TOTPEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: user.Username,
	}, nil
}

// Enable verifies a TOTP code against the staged secret and turns the second
// factor on. It also generates single-use backup codes; the plaintext codes
// are returned exactly once, only fingerprints are stored.
func (s *MFAService) Enable(ctx context.Context, userID string, code string) ([]string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TOTPSecret == nil || *user.TOTPSecret == "" {
		return nil, ErrTOTPNotEnrolled
	}
	if user.TOTPEnabled != nil {
		return nil, ErrTOTPAlreadyEnabled
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		return nil, ErrInvalidTOTPCode
	}

	backupCodes, err := cryptox.GenerateBackupCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate backup codes: %w", err)
	}

	// Store backup codes and enable TOTP in a transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, c := range backupCodes {
			hash := cryptox.FingerprintToken(c)
			if err := tx.BackupCodes().CreateBackupCode(ctx, userID, hash); err != nil {
				return fmt.Errorf("failed to store backup code: %w", err)
			}
		}

		if err := tx.Users().EnableTOTP(ctx, userID); err != nil {
			return fmt.Errorf("failed to enable TOTP: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return backupCodes, nil
}

// Disable removes the second factor after verifying a current TOTP code, and
// deletes any remaining backup codes.
func (s *MFAService) Disable(ctx context.Context, userID string, code string) error {
	if err := s.verifyTOTPCode(ctx, userID, code); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete backup codes: %w", err)
		}

		if err := tx.Users().DisableTOTP(ctx, userID); err != nil {
			return fmt.Errorf("failed to disable TOTP: %w", err)
		}

		return nil
	})
}

// RegenerateBackupCodes replaces the user's backup codes after verifying a
// current TOTP code. Old codes stop working immediately.
func (s *MFAService) RegenerateBackupCodes(ctx context.Context, userID string, code string) ([]string, error) {
	if err := s.verifyTOTPCode(ctx, userID, code); err != nil {
		return nil, err
	}

	backupCodes, err := cryptox.GenerateBackupCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate backup codes: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete old backup codes: %w", err)
		}

		for _, c := range backupCodes {
			hash := cryptox.FingerprintToken(c)
			if err := tx.BackupCodes().CreateBackupCode(ctx, userID, hash); err != nil {
				return fmt.Errorf("failed to store backup code: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return backupCodes, nil
}

// Status reports the user's TOTP lifecycle state.
func (s *MFAService) Status(ctx context.Context, userID string) (MFAStatus, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return MFAStatus{}, fmt.Errorf("failed to get user: %w", err)
	}

	remaining, err := s.Store.BackupCodes().CountUserBackupCodes(ctx, userID)
	if err != nil {
		return MFAStatus{}, fmt.Errorf("failed to count backup codes: %w", err)
	}

	return MFAStatus{
		Enabled:         user.TOTPEnabled != nil,
		Pending:         user.TOTPEnabled == nil && user.TOTPSecret != nil,
		BackupCodesLeft: remaining,
	}, nil
}

// verifyTOTPCode checks a TOTP code for a user with the factor enabled.
func (s *MFAService) verifyTOTPCode(ctx context.Context, userID string, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasTOTP() {
		return ErrTOTPNotEnabled
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	return nil
}
