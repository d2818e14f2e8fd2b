package noticesdk

import (
	"context"
	"fmt"
	"net/http"
)

// Admin notification management. These endpoints require an administrator
// account; others receive a 403.

// CreateNotification creates a notification, optionally publishing it
// immediately.
func (s *Session) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/admin/notifications", req)
	if err != nil {
		return nil, err
	}

	var notification NotificationResponse
	if err := decodeJSON(resp, &notification, http.StatusCreated); err != nil {
		return nil, err
	}

	return &notification, nil
}

// UpdateNotification replaces a notification's title, body and publish state.
func (s *Session) UpdateNotification(ctx context.Context, id string, req UpdateNotificationRequest) (*NotificationResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/api/admin/notifications/"+id, req)
	if err != nil {
		return nil, err
	}

	var notification NotificationResponse
	if err := decodeJSON(resp, &notification, http.StatusOK); err != nil {
		return nil, err
	}

	return &notification, nil
}

// DeleteNotification removes a notification.
func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/api/admin/notifications/"+id, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// ListAllNotifications pages through every notification including drafts.
func (s *Session) ListAllNotifications(ctx context.Context, page, perPage int) (*NotificationListResponse, error) {
	path := fmt.Sprintf("/api/admin/notifications?page=%d&per_page=%d", page, perPage)
	resp, err := s.doAuthJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list NotificationListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}
