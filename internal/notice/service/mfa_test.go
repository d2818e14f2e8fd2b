package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/service"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func testBootstrapData() domain.BootstrapData {
	return domain.BootstrapData{
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestMFALifecycle(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	status, err := mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, status.Enabled)
	require.False(t, status.Pending)

	enrollment, err := mfa.Setup(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.URL, "otpauth://totp/")
	require.Equal(t, "noticeboard-test", enrollment.Issuer)
	require.Equal(t, "alice", enrollment.Account)

	status, err = mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, status.Enabled)
	require.True(t, status.Pending)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)

	backupCodes, err := mfa.Enable(ctx, user.ID, code)
	require.NoError(t, err)
	require.Len(t, backupCodes, 8)
	for _, c := range backupCodes {
		require.Len(t, c, 8)
	}

	status, err = mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, status.Enabled)
	require.False(t, status.Pending)
	require.Equal(t, 8, status.BackupCodesLeft)

	code, err = totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.Disable(ctx, user.ID, code))

	status, err = mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, status.Enabled)
	require.Zero(t, status.BackupCodesLeft)
}

func TestSetupWhilePendingReplacesSecret(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	first, err := mfa.Setup(ctx, user.ID)
	require.NoError(t, err)

	second, err := mfa.Setup(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	// The first secret no longer enables.
	staleCode, err := totp.GenerateCode(first.Secret, time.Now())
	require.NoError(t, err)
	_, err = mfa.Enable(ctx, user.ID, staleCode)
	require.ErrorIs(t, err, service.ErrInvalidTOTPCode)

	freshCode, err := totp.GenerateCode(second.Secret, time.Now())
	require.NoError(t, err)
	_, err = mfa.Enable(ctx, user.ID, freshCode)
	require.NoError(t, err)
}

func TestSetupWhenAlreadyEnabled(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	enableTOTP(t, st, user.ID)

	_, err = mfa.Setup(ctx, user.ID)
	require.ErrorIs(t, err, service.ErrTOTPAlreadyEnabled)
}

func TestEnableWithoutSetup(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	_, err = mfa.Enable(ctx, user.ID, "123456")
	require.ErrorIs(t, err, service.ErrTOTPNotEnrolled)
}

func TestEnableWrongCode(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	_, err = mfa.Setup(ctx, user.ID)
	require.NoError(t, err)

	_, err = mfa.Enable(ctx, user.ID, "000000")
	require.ErrorIs(t, err, service.ErrInvalidTOTPCode)

	// A failed enable leaves enrollment pending, not enabled.
	status, err := mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, status.Enabled)
	require.True(t, status.Pending)
}

func TestDisableWrongCode(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	enableTOTP(t, st, user.ID)

	require.ErrorIs(t, mfa.Disable(ctx, user.ID, "000000"), service.ErrInvalidTOTPCode)

	status, err := mfa.Status(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, status.Enabled)
}

func TestDisableWhenNotEnabled(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	require.ErrorIs(t, mfa.Disable(ctx, user.ID, "123456"), service.ErrTOTPNotEnabled)
}

func TestRegenerateBackupCodes(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	mfa := &service.MFAService{Store: st, Issuer: "noticeboard-test"}
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "pw12345", false)
	require.NoError(t, err)

	secret, oldCodes := enableTOTP(t, st, user.ID)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	newCodes, err := mfa.RegenerateBackupCodes(ctx, user.ID, code)
	require.NoError(t, err)
	require.Len(t, newCodes, 8)
	require.NotElementsMatch(t, oldCodes, newCodes)

	// Old codes stop working for login.
	result, err := auth.Login(ctx, "alice", "pw12345")
	require.NoError(t, err)

	_, err = auth.CompleteMFA(ctx, result.MFAToken, service.MFAMethodBackupCode, oldCodes[0])
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
