package domain

import "time"

// Notification priorities, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Notification struct {
	ID          string
	Title       string
	Body        string
	Priority    string // low, medium or high
	CreatedBy   string // User ID of the authoring admin
	AuthorName  string // Username of the author, joined at read time
	Published   bool
	PublishedAt *time.Time // Set when Published flips to true
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotificationPage is a single page of a notification listing plus the
// pagination bookkeeping clients need to render page controls.
type NotificationPage struct {
	Notifications []Notification
	Total         int
	Pages         int
	CurrentPage   int
	PerPage       int
}
