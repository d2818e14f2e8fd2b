package notice_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	httpapi "github.com/driftlock/noticeboard/internal/notice/http"
	"github.com/driftlock/noticeboard/internal/notice/service"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/internal/notice/store/drivers/sqlite"
	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/jwtx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for noticeboard end-to-end tests.
 * Each test spins up the full service in-process against an in-memory
 * database and talks to it through the SDK.
 */

const (
	testIssuer = "noticeboard-test"
	testSecret = "e2e-test-secret-at-least-32-bytes!!"

	adminUsername = "admin"
	adminPassword = "admin123"
)

// relaxedLimit is applied to the shared rate limit profiles so rapid test
// requests don't trip the production defaults. Individual tests that exercise
// rate limiting restore a profile locally before building their server.
var relaxedLimit = httpx.RateLimitConfig{
	RequestsPerWindow: 1000,
	Window:            time.Minute,
	Burst:             1000,
}

func TestMain(m *testing.M) {
	httpx.StrictLimit = relaxedLimit
	httpx.ModerateLimit = relaxedLimit
	httpx.LenientLimit = relaxedLimit
	httpx.PublicLimit = relaxedLimit

	os.Exit(m.Run())
}

// setupServer starts the full HTTP stack in-process and returns an SDK client
// pointed at it. The database is in-memory and seeded with the default admin.
func setupServer(t *testing.T) *noticesdk.SDKClient {
	t.Helper()

	client, _ := setupServerWithStore(t)
	return client
}

// setupServerWithStore additionally exposes the backing store for tests that
// mutate state the API doesn't reach.
func setupServerWithStore(t *testing.T) (*noticesdk.SDKClient, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), jwtx.VerifyOptions{Issuer: testIssuer})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bootstrap := &service.BootstrapService{Store: st}
	_, err = bootstrap.Bootstrap(context.Background(), domain.BootstrapData{
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	})
	require.NoError(t, err)

	router := httpapi.NewRouter(verifier, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:     st,
		Signer:    signer,
		Issuer:    testIssuer,
		AccessTTL: time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.MFAService = &service.MFAService{Store: st, Issuer: testIssuer}
	router.NotificationService = &service.NotificationService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return noticesdk.NewSDKClient(server.URL), st
}

// loginAdmin logs in as the bootstrapped admin account.
func loginAdmin(t *testing.T, client *noticesdk.SDKClient) *noticesdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err)
	require.NotNil(t, session)
	return session
}

// registerAndLogin creates a fresh account and returns an authenticated session.
func registerAndLogin(t *testing.T, client *noticesdk.SDKClient, username, password string) *noticesdk.Session {
	t.Helper()

	_, err := client.Register(t.Context(), username, password)
	require.NoError(t, err)

	session, err := client.Login(t.Context(), username, password)
	require.NoError(t, err)
	return session
}

// enrollTOTP walks a session through the full enrollment flow and returns the
// shared secret plus the one-time backup codes.
func enrollTOTP(t *testing.T, session *noticesdk.Session) (secret string, backupCodes []string) {
	t.Helper()

	setup, err := session.SetupTOTP(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	require.Contains(t, setup.URL, "otpauth://")

	code := generateTOTP(t, setup.Secret)
	backupCodes, err = session.EnableTOTP(t.Context(), code)
	require.NoError(t, err)
	require.NotEmpty(t, backupCodes)

	return setup.Secret, backupCodes
}

// generateTOTP computes a currently valid code for the given secret.
func generateTOTP(t *testing.T, secret string) string {
	t.Helper()

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

// loginExpectingChallenge asserts that a login is answered with an MFA
// challenge and returns it.
func loginExpectingChallenge(t *testing.T, client *noticesdk.SDKClient, username, password string) *noticesdk.MFARequiredError {
	t.Helper()

	_, err := client.Login(t.Context(), username, password)
	require.Error(t, err)

	var challenge *noticesdk.MFARequiredError
	require.ErrorAs(t, err, &challenge)
	require.NotEmpty(t, challenge.MFAToken)
	return challenge
}
