package noticesdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Noticeboard service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new Noticeboard client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with a username and password. For accounts with a
// second factor enabled, the returned error is an *MFARequiredError whose
// token must be redeemed via CompleteMFA.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	}, "")
	if err != nil {
		return nil, err
	}

	var tokenResp LoginResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &tokenResp), nil
}

// CompleteMFA finishes a challenged login with a TOTP or backup code.
// method is "totp" or "backup_code".
func (c *SDKClient) CompleteMFA(ctx context.Context, mfaToken, method, code string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login/mfa", CompleteMFARequest{
		MFAToken: mfaToken,
		Method:   method,
		Code:     code,
	}, "")
	if err != nil {
		return nil, err
	}

	var tokenResp LoginResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &tokenResp), nil
}

// Register creates a new account. It does not log the user in.
func (c *SDKClient) Register(ctx context.Context, username, password string) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", RegisterRequest{
		Username: username,
		Password: password,
	}, "")
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListNotifications fetches a page of published notifications. No
// authentication required.
func (c *SDKClient) ListNotifications(ctx context.Context, page, perPage int) (*NotificationListResponse, error) {
	path := fmt.Sprintf("/api/notifications?page=%d&per_page=%d", page, perPage)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var list NotificationListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetNotification fetches a single published notification.
func (c *SDKClient) GetNotification(ctx context.Context, id string) (*NotificationResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/notifications/"+id, nil, "")
	if err != nil {
		return nil, err
	}

	var notification NotificationResponse
	if err := decodeJSON(resp, &notification, http.StatusOK); err != nil {
		return nil, err
	}

	return &notification, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

// GetHealth fetches the combined health endpoint.
func (c *SDKClient) GetHealth(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/health")
}

func (c *SDKClient) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
