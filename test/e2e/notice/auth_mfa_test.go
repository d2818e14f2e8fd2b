package notice_test

import (
	"testing"

	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/stretchr/testify/require"
)

// TestMFAEnrollmentAndLogin walks the complete second-factor story: enroll,
// get challenged at login, complete with TOTP, then with a backup code, and
// confirm backup codes are single-use.
func TestMFAEnrollmentAndLogin(t *testing.T) {
	client := setupServer(t)
	session := registerAndLogin(t, client, "mfauser", "pw12345")

	secret, backupCodes := enrollTOTP(t, session)
	t.Logf("enrolled with %d backup codes", len(backupCodes))

	status, err := session.TOTPStatus(t.Context())
	require.NoError(t, err)
	require.True(t, status.Enabled)
	require.False(t, status.Pending)
	require.Equal(t, len(backupCodes), status.BackupCodesLeft)

	// Login now answers with a challenge instead of a token
	challenge := loginExpectingChallenge(t, client, "mfauser", "pw12345")
	require.Contains(t, challenge.Methods, "totp")
	require.Contains(t, challenge.Methods, "backup_code")

	// Complete with a TOTP code
	mfaSession, err := client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", generateTOTP(t, secret))
	require.NoError(t, err)

	me, err := mfaSession.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "mfauser", me.Username)
	require.True(t, me.TOTPEnabled)

	// Complete a second login with a backup code
	backupCode := backupCodes[0]
	challenge2 := loginExpectingChallenge(t, client, "mfauser", "pw12345")
	_, err = client.CompleteMFA(t.Context(), challenge2.MFAToken, "backup_code", backupCode)
	require.NoError(t, err)

	// The spent backup code must not work again
	challenge3 := loginExpectingChallenge(t, client, "mfauser", "pw12345")
	_, err = client.CompleteMFA(t.Context(), challenge3.MFAToken, "backup_code", backupCode)
	assertAPIError(t, err, noticesdk.ErrorCodeInvalidCredentials)
}

// TestMFAChallengeIsSingleUse verifies a redeemed challenge token cannot be
// replayed.
func TestMFAChallengeIsSingleUse(t *testing.T) {
	client := setupServer(t)
	session := registerAndLogin(t, client, "replayuser", "pw12345")
	secret, _ := enrollTOTP(t, session)

	challenge := loginExpectingChallenge(t, client, "replayuser", "pw12345")

	_, err := client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", generateTOTP(t, secret))
	require.NoError(t, err)

	_, err = client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", generateTOTP(t, secret))
	assertAPIError(t, err, noticesdk.ErrorCodeInvalidChallenge)
}

// TestMFAAttemptLimit verifies a challenge burns out after too many wrong
// codes and the user has to log in again.
func TestMFAAttemptLimit(t *testing.T) {
	client := setupServer(t)
	session := registerAndLogin(t, client, "bruteuser", "pw12345")
	enrollTOTP(t, session)

	challenge := loginExpectingChallenge(t, client, "bruteuser", "pw12345")

	for i := 0; i < 4; i++ {
		_, err := client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", "000000")
		assertAPIError(t, err, noticesdk.ErrorCodeInvalidCredentials)
	}

	// Fifth failure exhausts the challenge
	_, err := client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", "000000")
	assertAPIError(t, err, noticesdk.ErrorCodeTooManyAttempts)

	// The challenge is gone entirely now
	_, err = client.CompleteMFA(t.Context(), challenge.MFAToken, "totp", "000000")
	assertAPIError(t, err, noticesdk.ErrorCodeInvalidChallenge)
}

// TestMFARegenerateBackupCodes verifies regeneration invalidates the old set.
func TestMFARegenerateBackupCodes(t *testing.T) {
	client := setupServer(t)
	session := registerAndLogin(t, client, "regenuser", "pw12345")
	secret, oldCodes := enrollTOTP(t, session)

	newCodes, err := session.RegenerateBackupCodes(t.Context(), generateTOTP(t, secret))
	require.NoError(t, err)
	require.Len(t, newCodes, len(oldCodes))
	require.NotEqual(t, oldCodes, newCodes)

	// Old code rejected, new code accepted
	challenge := loginExpectingChallenge(t, client, "regenuser", "pw12345")
	_, err = client.CompleteMFA(t.Context(), challenge.MFAToken, "backup_code", oldCodes[0])
	assertAPIError(t, err, noticesdk.ErrorCodeInvalidCredentials)

	challenge2 := loginExpectingChallenge(t, client, "regenuser", "pw12345")
	_, err = client.CompleteMFA(t.Context(), challenge2.MFAToken, "backup_code", newCodes[0])
	require.NoError(t, err)
}

// TestMFADisable verifies disabling restores the plain login flow.
func TestMFADisable(t *testing.T) {
	client := setupServer(t)
	session := registerAndLogin(t, client, "disableuser", "pw12345")
	secret, _ := enrollTOTP(t, session)

	require.NoError(t, session.DisableTOTP(t.Context(), generateTOTP(t, secret)))

	status, err := session.TOTPStatus(t.Context())
	require.NoError(t, err)
	require.False(t, status.Enabled)
	require.Zero(t, status.BackupCodesLeft)

	// Login goes straight through again
	_, err = client.Login(t.Context(), "disableuser", "pw12345")
	require.NoError(t, err)
}
