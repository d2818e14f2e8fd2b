package http

import (
	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
)

func userResponse(u domain.User) noticesdk.UserResponse {
	return noticesdk.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		IsAdmin:     u.IsAdmin,
		TOTPEnabled: u.TOTPEnabled != nil,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func notificationResponse(n domain.Notification) noticesdk.NotificationResponse {
	return noticesdk.NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Priority:    n.Priority,
		CreatedBy:   n.CreatedBy,
		Author:      n.AuthorName,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func notificationListResponse(page domain.NotificationPage) noticesdk.NotificationListResponse {
	items := make([]noticesdk.NotificationResponse, 0, len(page.Notifications))
	for _, n := range page.Notifications {
		items = append(items, notificationResponse(n))
	}

	return noticesdk.NotificationListResponse{
		Notifications: items,
		Total:         page.Total,
		Pages:         page.Pages,
		CurrentPage:   page.CurrentPage,
		PerPage:       page.PerPage,
	}
}
