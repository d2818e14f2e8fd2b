package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlock/noticeboard/internal/notice/service"
	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

// MFAHandler handles the TOTP second-factor endpoints.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleSetup handles POST /api/auth/2fa/setup
//
//	@Summary		Begin TOTP enrollment
//	@Description	Stages a TOTP secret for the authenticated user and returns it with
//	@Description	an otpauth URL. The second factor stays off until a code is verified
//	@Description	via the enable endpoint.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	noticesdk.TOTPSetupResponse	"Staged secret and otpauth URL"
//	@Failure		401	{object}	noticesdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		409	{object}	noticesdk.ErrorResponse		"Second factor already enabled"
//	@Failure		500	{object}	noticesdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/2fa/setup [post].
func (h *MFAHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	enrollment, err := h.MFAService.Setup(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrTOTPAlreadyEnabled) {
			noticesdk.NewAPIError(http.StatusConflict, noticesdk.ErrorCodeConflict,
				"a second factor is already enabled for this account").WriteError(w)
			return
		}
		log.Error("totp setup failed", "user_id", userID, "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, noticesdk.TOTPSetupResponse{
		Secret:  enrollment.Secret,
		URL:     enrollment.URL,
		Issuer:  enrollment.Issuer,
		Account: enrollment.Account,
	})
}

// HandleEnable handles POST /api/auth/2fa/enable
//
//	@Summary		Verify a TOTP code and enable the second factor
//	@Description	Verifies a code from the staged secret and enables TOTP. Returns the
//	@Description	single-use backup codes, shown exactly once.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.TOTPEnableRequest		true	"TOTP code"
//	@Success		200		{object}	noticesdk.TOTPEnableResponse	"Backup codes (shown once)"
//	@Failure		400		{object}	noticesdk.ErrorResponse			"Invalid code or not enrolled"
//	@Failure		401		{object}	noticesdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		409		{object}	noticesdk.ErrorResponse			"Second factor already enabled"
//	@Failure		500		{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/enable [post].
func (h *MFAHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req noticesdk.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	backupCodes, err := h.MFAService.Enable(ctx, userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPNotEnrolled):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"no staged secret, call setup first").WriteError(w)
		case errors.Is(err, service.ErrTOTPAlreadyEnabled):
			noticesdk.NewAPIError(http.StatusConflict, noticesdk.ErrorCodeConflict,
				"a second factor is already enabled for this account").WriteError(w)
		case errors.Is(err, service.ErrInvalidTOTPCode):
			log.Warn("invalid totp code during enable", "user_id", userID)
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"invalid TOTP code").WriteError(w)
		default:
			log.Error("totp enable failed", "user_id", userID, "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, noticesdk.TOTPEnableResponse{
		BackupCodes: backupCodes,
	})
}

// HandleDisable handles POST /api/auth/2fa/disable
//
//	@Summary		Disable the TOTP second factor
//	@Description	Verifies a current TOTP code, then removes the second factor and all
//	@Description	remaining backup codes.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Second factor disabled"
//	@Failure		400	{object}	noticesdk.ErrorResponse	"Invalid code or second factor not enabled"
//	@Failure		401	{object}	noticesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	noticesdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/2fa/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req noticesdk.TOTPDisableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.MFAService.Disable(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPNotEnabled):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"no second factor is enabled for this account").WriteError(w)
		case errors.Is(err, service.ErrInvalidTOTPCode):
			log.Warn("invalid totp code during disable", "user_id", userID)
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"invalid TOTP code").WriteError(w)
		default:
			log.Error("totp disable failed", "user_id", userID, "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRegenerateBackupCodes handles POST /api/auth/2fa/backup-codes
//
//	@Summary		Regenerate backup codes
//	@Description	Verifies a current TOTP code, then replaces all remaining backup codes
//	@Description	with a fresh set. Old codes stop working immediately.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.TOTPEnableRequest		true	"TOTP code"
//	@Success		200		{object}	noticesdk.TOTPEnableResponse	"New backup codes (shown once)"
//	@Failure		400		{object}	noticesdk.ErrorResponse			"Invalid code or second factor not enabled"
//	@Failure		401		{object}	noticesdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		500		{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/backup-codes [post].
func (h *MFAHandler) HandleRegenerateBackupCodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req noticesdk.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	backupCodes, err := h.MFAService.RegenerateBackupCodes(ctx, userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPNotEnabled):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"no second factor is enabled for this account").WriteError(w)
		case errors.Is(err, service.ErrInvalidTOTPCode):
			log.Warn("invalid totp code during backup code regeneration", "user_id", userID)
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"invalid TOTP code").WriteError(w)
		default:
			log.Error("backup code regeneration failed", "user_id", userID, "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, noticesdk.TOTPEnableResponse{
		BackupCodes: backupCodes,
	})
}

// HandleStatus handles GET /api/auth/2fa/status
//
//	@Summary		Second-factor status
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	noticesdk.TOTPStatusResponse	"Second-factor state"
//	@Failure		401	{object}	noticesdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		500	{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/status [get].
func (h *MFAHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	status, err := h.MFAService.Status(ctx, userID)
	if err != nil {
		log.Error("totp status failed", "user_id", userID, "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, noticesdk.TOTPStatusResponse{
		Enabled:         status.Enabled,
		Pending:         status.Pending,
		BackupCodesLeft: status.BackupCodesLeft,
	})
}
