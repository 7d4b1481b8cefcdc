package domain

import "time"

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	TypeDocumentExpiry  NotificationType = "document-expiry"
	TypeContractExpiry  NotificationType = "contract-expiry"
	TypeLeaveRequest    NotificationType = "leave-request"
	TypeFeedbackRequest NotificationType = "feedback-request"
	TypeOther           NotificationType = "other"
)

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	PriorityUrgent NotificationPriority = "urgent"
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// Notification is a single inbox entry. Notifications are created by the
// backend; the gateway holds an eventually-consistent cached copy and only
// flips IsRead or deletes by id.
type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	IsRead    bool                 `json:"isRead"`
	CreatedAt time.Time            `json:"createdAt"`
	ReadAt    *time.Time           `json:"readAt,omitempty"`
}
