package upstream

import (
	"context"
	"net/http"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

type inboxPayload struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// FetchNotifications calls GET /notifications.
func (c *Client) FetchNotifications(ctx context.Context) (*ports.Inbox, error) {
	var payload inboxPayload
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &payload); err != nil {
		return nil, err
	}
	return &ports.Inbox{
		Notifications: payload.Notifications,
		UnreadCount:   payload.UnreadCount,
	}, nil
}

// MarkNotificationRead calls PUT /notifications/:id/read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil)
}

// MarkAllNotificationsRead calls PUT /notifications/mark-all-read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, nil)
}

// DeleteNotification calls DELETE /notifications/:id.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+id, nil, nil)
}
