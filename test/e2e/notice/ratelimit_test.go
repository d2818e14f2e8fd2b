package notice_test

import (
	"testing"
	"time"

	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit restores the production strict profile for one server
// and verifies the login endpoint starts answering 429 once the budget is
// spent.
func TestLoginRateLimit(t *testing.T) {
	old := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}
	t.Cleanup(func() { httpx.StrictLimit = old })

	client := setupServer(t)

	// Burn through the budget with bad credentials
	for i := 0; i < 5; i++ {
		_, err := client.Login(t.Context(), "nobody", "wrong")
		assertAPIError(t, err, noticesdk.ErrorCodeInvalidCredentials)
	}

	_, err := client.Login(t.Context(), "nobody", "wrong")
	require.Error(t, err)

	var apiErr *noticesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 429, apiErr.StatusCode)
}
