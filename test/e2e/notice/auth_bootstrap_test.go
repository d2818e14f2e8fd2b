package notice_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultAdminBootstrap verifies a fresh deployment comes up with the
// seeded admin account ready to use.
func TestDefaultAdminBootstrap(t *testing.T) {
	client := setupServer(t)

	session := loginAdmin(t, client)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminUsername, me.Username)
	require.True(t, me.IsAdmin)
	require.False(t, me.TOTPEnabled)
}

// TestRegisteredAccountsAreNotAdmin verifies self-registration never grants
// admin.
func TestRegisteredAccountsAreNotAdmin(t *testing.T) {
	client := setupServer(t)

	session := registerAndLogin(t, client, "normaluser", "pw12345")

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.False(t, me.IsAdmin)
}
