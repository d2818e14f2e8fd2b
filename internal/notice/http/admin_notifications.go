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

// AdminNotificationsHandler serves the admin notification endpoints. The
// router guards every route here with an admin check.
type AdminNotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleCreate handles POST /api/admin/notifications
//
//	@Summary		Create a notification
//	@Description	Creates a notification, optionally publishing it immediately.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		noticesdk.CreateNotificationRequest	true	"Notification content"
//	@Success		201		{object}	noticesdk.NotificationResponse		"The created notification"
//	@Failure		400		{object}	noticesdk.ErrorResponse				"Empty title or body"
//	@Failure		401		{object}	noticesdk.ErrorResponse				"Invalid or missing access token"
//	@Failure		403		{object}	noticesdk.ErrorResponse				"Not an administrator"
//	@Failure		500		{object}	noticesdk.ErrorResponse				"Internal server error"
//	@Router			/api/admin/notifications [post].
func (h *AdminNotificationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		noticesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req noticesdk.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	n, err := h.NotificationService.Create(ctx, userID, req.Title, req.Body, req.Priority, req.Publish)
	if err != nil {
		if errors.Is(err, service.ErrInvalidNotification) {
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"title and body must not be empty and priority must be low, medium or high").WriteError(w)
			return
		}
		log.Error("failed to create notification", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, notificationResponse(n))
}

// HandleList handles GET /api/admin/notifications
//
//	@Summary		List all notifications including drafts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int									false	"Page number (1-based)"	default(1)
//	@Param			per_page	query		int									false	"Items per page"		default(20)
//	@Success		200			{object}	noticesdk.NotificationListResponse	"Page of notifications"
//	@Failure		401			{object}	noticesdk.ErrorResponse				"Invalid or missing access token"
//	@Failure		403			{object}	noticesdk.ErrorResponse				"Not an administrator"
//	@Failure		500			{object}	noticesdk.ErrorResponse				"Internal server error"
//	@Router			/api/admin/notifications [get].
func (h *AdminNotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, perPage := pageParams(r)

	result, err := h.NotificationService.ListAll(ctx, page, perPage)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list notifications", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notificationListResponse(result))
}

// HandleUpdate handles PUT /api/admin/notifications/{id}
//
//	@Summary		Update a notification
//	@Description	Replaces title, body and publish state. Publishing stamps the publish
//	@Description	time; unpublishing clears it.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Notification ID"
//	@Param			request	body		noticesdk.UpdateNotificationRequest	true	"New content"
//	@Success		200		{object}	noticesdk.NotificationResponse		"The updated notification"
//	@Failure		400		{object}	noticesdk.ErrorResponse				"Empty title or body"
//	@Failure		401		{object}	noticesdk.ErrorResponse				"Invalid or missing access token"
//	@Failure		403		{object}	noticesdk.ErrorResponse				"Not an administrator"
//	@Failure		404		{object}	noticesdk.ErrorResponse				"Not found"
//	@Failure		500		{object}	noticesdk.ErrorResponse				"Internal server error"
//	@Router			/api/admin/notifications/{id} [put].
func (h *AdminNotificationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req noticesdk.UpdateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		noticesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	n, err := h.NotificationService.Update(ctx, r.PathValue("id"), req.Title, req.Body, req.Priority, req.Publish)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNotification):
			noticesdk.NewAPIError(http.StatusBadRequest, noticesdk.ErrorCodeInvalidRequest,
				"title and body must not be empty and priority must be low, medium or high").WriteError(w)
		case errors.Is(err, service.ErrNotificationNotFound):
			noticesdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to update notification", "err", err)
			noticesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notificationResponse(n))
}

// HandleDelete handles DELETE /api/admin/notifications/{id}
//
//	@Summary		Delete a notification
//	@Tags			Admin
//	@Security		BearerAuth
//	@Success		204	"Deleted"
//	@Failure		401	{object}	noticesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	noticesdk.ErrorResponse	"Not an administrator"
//	@Failure		404	{object}	noticesdk.ErrorResponse	"Not found"
//	@Failure		500	{object}	noticesdk.ErrorResponse	"Internal server error"
//	@Router			/api/admin/notifications/{id} [delete].
func (h *AdminNotificationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.NotificationService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			noticesdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to delete notification", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
