/*
Package noticesdk provides a client SDK for interacting with the Noticeboard
service.

# Overview

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations with a bearer access token

Create an SDKClient to interact with public endpoints and log in:

	client := noticesdk.NewSDKClient("https://notices.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Browse published notifications without logging in
	page, err := client.ListNotifications(ctx, 1, 20)

	// Authenticate to create a session
	session, err := client.Login(ctx, username, password)

When the account has a second factor enabled, Login returns an
*MFARequiredError carrying a challenge token. Finish the flow with a TOTP or
backup code:

	session, err := client.Login(ctx, username, password)
	if mfaErr, ok := err.(*noticesdk.MFARequiredError); ok {
		session, err = client.CompleteMFA(ctx, mfaErr.MFAToken, "totp", code)
	}

Use a Session for authenticated operations:

	me, err := session.Me(ctx)

	enrollment, err := session.SetupTOTP(ctx)
	backupCodes, err := session.EnableTOTP(ctx, code)

	// Admin only
	created, err := session.CreateNotification(ctx, noticesdk.CreateNotificationRequest{
		Title:   "Maintenance window",
		Body:    "Down for an hour on Saturday.",
		Publish: true,
	})

Access tokens are stateless JWTs with a fixed lifetime; there is no refresh
flow. When a token expires, log in again.

# Error Handling

Server errors are returned as *APIError with the HTTP status and a stable
machine-readable code:

	_, err := client.Login(ctx, username, password)
	var apiErr *noticesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == noticesdk.ErrorCodeInvalidCredentials {
		// bad username or password
	}
*/
package noticesdk
