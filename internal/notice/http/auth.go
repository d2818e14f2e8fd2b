package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlock/noticeboard/internal/notice/service"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

// AuthHandler handles login, registration and account endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in with username and password
//	@Description	Authenticates a user. Returns a bearer token, or a 409 MFA challenge
//	@Description	when the account has a second factor enabled.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.LoginRequest			true	"Credentials"
//	@Success		200		{object}	noticesdk.LoginResponse			"Access token"
//	@Failure		401		{object}	noticesdk.ErrorResponse			"Invalid credentials"
//	@Failure		409		{object}	noticesdk.MFAChallengeResponse	"Second factor required"
//	@Failure		500		{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req noticesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			noticesdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	if result.MFARequired {
		mfaErr := &noticesdk.MFARequiredError{
			MFAToken: result.MFAToken,
			Methods:  result.Methods,
		}
		mfaErr.WriteError(w)
		return
	}

	writeTokenResponse(w, result)
}

// HandleCompleteMFA handles POST /api/auth/login/mfa
//
//	@Summary		Complete a challenged login
//	@Description	Redeems the challenge token from a 409 login response with a TOTP or
//	@Description	backup code and returns the withheld access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.CompleteMFARequest	true	"Challenge token and code"
//	@Success		200		{object}	noticesdk.LoginResponse			"Access token"
//	@Failure		401		{object}	noticesdk.ErrorResponse			"Invalid challenge or code"
//	@Failure		429		{object}	noticesdk.ErrorResponse			"Too many failed attempts"
//	@Failure		500		{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/login/mfa [post].
func (h *AuthHandler) HandleCompleteMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req noticesdk.CompleteMFARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.MFAToken == "" || req.Method == "" || req.Code == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.AuthService.CompleteMFA(ctx, req.MFAToken, req.Method, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidChallenge):
			noticesdk.ErrInvalidChallenge.WriteError(w)
		case errors.Is(err, service.ErrTooManyAttempts):
			noticesdk.ErrTooManyAttempts.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			noticesdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("mfa completion failed", "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	writeTokenResponse(w, result)
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an account with the given username and password. Usernames are
//	@Description	3-32 characters of letters, digits, underscores and hyphens.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.RegisterRequest	true	"New account credentials"
//	@Success		201		{object}	noticesdk.UserResponse		"The created account"
//	@Failure		400		{object}	noticesdk.ErrorResponse		"Invalid username or password"
//	@Failure		409		{object}	noticesdk.ErrorResponse		"Username already taken"
//	@Failure		500		{object}	noticesdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req noticesdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"username must be 3-32 characters of letters, digits, underscores and hyphens").WriteError(w)
		case errors.Is(err, service.ErrInvalidPassword):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"password must be at least 6 characters").WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			noticesdk.ErrUsernameTaken.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Get the authenticated account
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	noticesdk.UserResponse	"The authenticated account"
//	@Failure		401	{object}	noticesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	noticesdk.ErrorResponse	"Account no longer exists"
//	@Failure		500	{object}	noticesdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		// Tokens outlive a deleted account; the record is simply gone.
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("account gone for valid token", "user_id", userID)
			noticesdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load user", "user_id", userID, "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleChangePassword handles POST /api/auth/password
//
//	@Summary		Change the account password
//	@Description	Verifies the current password and replaces it. Outstanding tokens
//	@Description	stay valid until they expire.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Password changed"
//	@Failure		400	{object}	noticesdk.ErrorResponse	"New password too short"
//	@Failure		401	{object}	noticesdk.ErrorResponse	"Current password wrong or token invalid"
//	@Failure		500	{object}	noticesdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req noticesdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"password must be at least 6 characters").WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			noticesdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("password change failed", "user_id", userID, "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Ends the session. Tokens are stateless, so the client discards its
//	@Description	token; the endpoint exists to give clients a uniform flow.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Logged out"
//	@Failure		401	{object}	noticesdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	slogx.FromContext(ctx).Info("user logged out", "user_id", userID)

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func writeTokenResponse(w http.ResponseWriter, result service.LoginResult) {
	httpx.WriteJSON(w, http.StatusOK, noticesdk.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(result.ExpiresIn.Seconds()),
		User:        userResponse(result.User),
	})
}
