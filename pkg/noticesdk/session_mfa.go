package noticesdk

import (
	"context"
	"net/http"
)

// SetupTOTP stages a TOTP secret for the account. The second factor stays off
// until EnableTOTP verifies a code generated from this secret.
func (s *Session) SetupTOTP(ctx context.Context) (*TOTPSetupResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/2fa/setup", nil)
	if err != nil {
		return nil, err
	}

	var setup TOTPSetupResponse
	if err := decodeJSON(resp, &setup, http.StatusOK); err != nil {
		return nil, err
	}

	return &setup, nil
}

// EnableTOTP verifies a code from the staged secret and turns the second
// factor on. The returned backup codes are shown exactly once; store them.
func (s *Session) EnableTOTP(ctx context.Context, code string) ([]string, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/2fa/enable", TOTPEnableRequest{Code: code})
	if err != nil {
		return nil, err
	}

	var enable TOTPEnableResponse
	if err := decodeJSON(resp, &enable, http.StatusOK); err != nil {
		return nil, err
	}

	return enable.BackupCodes, nil
}

// DisableTOTP turns the second factor off after verifying a current code.
func (s *Session) DisableTOTP(ctx context.Context, code string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/2fa/disable", TOTPDisableRequest{Code: code})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// RegenerateBackupCodes replaces all remaining backup codes after verifying a
// current TOTP code. Old codes stop working immediately.
func (s *Session) RegenerateBackupCodes(ctx context.Context, code string) ([]string, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/auth/2fa/backup-codes", TOTPEnableRequest{Code: code})
	if err != nil {
		return nil, err
	}

	var regen TOTPEnableResponse
	if err := decodeJSON(resp, &regen, http.StatusOK); err != nil {
		return nil, err
	}

	return regen.BackupCodes, nil
}

// TOTPStatus reports where the account sits in the TOTP lifecycle.
func (s *Session) TOTPStatus(ctx context.Context) (*TOTPStatusResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/api/auth/2fa/status", nil)
	if err != nil {
		return nil, err
	}

	var status TOTPStatusResponse
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return nil, err
	}

	return &status, nil
}
