package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/idx"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

const (
	// DefaultPageSize is used when the caller doesn't ask for one.
	DefaultPageSize = 20
	// MaxPageSize caps per_page so a single request can't dump the table.
	MaxPageSize = 100
)

var (
	ErrNotificationNotFound = errors.New("notification_not_found")
	ErrInvalidNotification  = errors.New("invalid_notification")
)

type NotificationService struct {
	Store store.Store
}

// List returns a page of published notifications, newest first. page is
// 1-based; out-of-range values are clamped rather than rejected.
func (s *NotificationService) List(ctx context.Context, page, perPage int) (domain.NotificationPage, error) {
	return s.list(ctx, page, perPage, false)
}

// ListAll is the admin variant that includes unpublished drafts.
func (s *NotificationService) ListAll(ctx context.Context, page, perPage int) (domain.NotificationPage, error) {
	return s.list(ctx, page, perPage, true)
}

func (s *NotificationService) list(ctx context.Context, page, perPage int, includeDrafts bool) (domain.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	offset := (page - 1) * perPage

	var (
		items []domain.Notification
		total int
		err   error
	)
	if includeDrafts {
		items, total, err = s.Store.Notifications().ListAll(ctx, offset, perPage)
	} else {
		items, total, err = s.Store.Notifications().ListPublished(ctx, offset, perPage)
	}
	if err != nil {
		return domain.NotificationPage{}, err
	}

	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}

	return domain.NotificationPage{
		Notifications: items,
		Total:         total,
		Pages:         pages,
		CurrentPage:   page,
		PerPage:       perPage,
	}, nil
}

// Get fetches a single notification. Unless includeDrafts is set, an
// unpublished notification is reported as not found so drafts don't leak.
func (s *NotificationService) Get(ctx context.Context, id string, includeDrafts bool) (domain.Notification, error) {
	n, err := s.Store.Notifications().GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notification{}, ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}

	if !n.Published && !includeDrafts {
		return domain.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// normalizePriority defaults an empty priority to medium and rejects
// anything outside the known levels.
func normalizePriority(priority string) (string, error) {
	switch priority {
	case "":
		return domain.PriorityMedium, nil
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return priority, nil
	default:
		return "", ErrInvalidNotification
	}
}

// Create inserts a new notification authored by the given admin user.
// Authorization happens at the transport layer; this only validates content.
func (s *NotificationService) Create(ctx context.Context, authorID, title, body, priority string, publish bool) (domain.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" {
		return domain.Notification{}, ErrInvalidNotification
	}
	priority, err := normalizePriority(priority)
	if err != nil {
		return domain.Notification{}, err
	}

	n := domain.Notification{
		ID:        idx.New().String(),
		Title:     title,
		Body:      body,
		Priority:  priority,
		CreatedBy: authorID,
		Published: publish,
	}
	if publish {
		now := time.Now().UTC()
		n.PublishedAt = &now
	}

	if err := s.Store.Notifications().CreateNotification(ctx, n); err != nil {
		return domain.Notification{}, err
	}

	slogx.FromContext(ctx).Info("notification created",
		slog.String("notification_id", n.ID),
		slog.Bool("published", publish),
	)

	return s.Store.Notifications().GetNotificationByID(ctx, n.ID)
}

// Update replaces title, body and publish state. Publishing for the first
// time stamps published_at; unpublishing clears it.
func (s *NotificationService) Update(ctx context.Context, id, title, body, priority string, publish bool) (domain.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" {
		return domain.Notification{}, ErrInvalidNotification
	}
	priority, err := normalizePriority(priority)
	if err != nil {
		return domain.Notification{}, err
	}

	n, err := s.Store.Notifications().GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notification{}, ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}

	n.Title = title
	n.Body = body
	n.Priority = priority
	switch {
	case publish && !n.Published:
		now := time.Now().UTC()
		n.PublishedAt = &now
	case !publish:
		n.PublishedAt = nil
	}
	n.Published = publish

	if err := s.Store.Notifications().UpdateNotification(ctx, n); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notification{}, ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}

	return s.Store.Notifications().GetNotificationByID(ctx, id)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.Notifications().GetNotificationByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.Store.Notifications().DeleteNotification(ctx, id)
}
