package ports

import (
	"context"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// NotificationService maintains a near-real-time cached view of the current
// user's inbox. Mutations are optimistic: local state changes before the
// upstream call, and an upstream failure propagates to the caller without
// rolling the local change back. The divergence heals on the next Fetch.
type NotificationService interface {
	// Fetch replaces the full list and unread count from upstream.
	Fetch(ctx context.Context) error
	List() []domain.Notification
	UnreadCount() int
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	Remove(ctx context.Context, id string) error
	// ClearAll resets local state only; used on logout.
	ClearAll()
}
