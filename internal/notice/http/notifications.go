package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/driftlock/noticeboard/internal/notice/service"
	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

// NotificationsHandler serves the public, read-only notification endpoints.
// Only published notifications are visible here.
type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleList handles GET /api/notifications
//
//	@Summary		List published notifications
//	@Description	Returns a page of published notifications, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int									false	"Page number (1-based)"	default(1)
//	@Param			per_page	query		int									false	"Items per page"		default(20)
//	@Success		200			{object}	noticesdk.NotificationListResponse	"Page of notifications"
//	@Failure		500			{object}	noticesdk.ErrorResponse				"Internal server error"
//	@Router			/api/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, perPage := pageParams(r)

	result, err := h.NotificationService.List(ctx, page, perPage)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list notifications", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notificationListResponse(result))
}

// HandleGet handles GET /api/notifications/{id}
//
//	@Summary		Get a published notification
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		string							true	"Notification ID"
//	@Success		200	{object}	noticesdk.NotificationResponse	"The notification"
//	@Failure		404	{object}	noticesdk.ErrorResponse			"Not found or unpublished"
//	@Failure		500	{object}	noticesdk.ErrorResponse			"Internal server error"
//	@Router			/api/notifications/{id} [get].
func (h *NotificationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.NotificationService.Get(ctx, r.PathValue("id"), false)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			noticesdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to get notification", "err", err)
		noticesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notificationResponse(n))
}

// pageParams reads page/per_page query parameters. Invalid values fall back
// to defaults; the service clamps the range.
func pageParams(r *http.Request) (page, perPage int) {
	page = 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = v
	}
	perPage = service.DefaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil {
		perPage = v
	}
	return page, perPage
}
