package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/api/metrics"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

// NotificationHandler serves the cached inbox and relays mutations. Routes
// sit behind the Gate middleware, so a user is always present.
type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type inboxResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// List handles GET /notifications. The poller keeps the cache warm; pass
// ?refresh=true to force a synchronous upstream fetch first.
//
// @Summary      Cached notification inbox
// @Tags         notifications
// @Produce      json
// @Param        refresh  query     bool  false  "Force an upstream fetch before answering"
// @Success      200      {object}  inboxResponse
// @Failure      401      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	if c.QueryParam("refresh") != "" {
		if err := h.notifications.Fetch(c.Request().Context()); err != nil {
			return err
		}
		metrics.NotificationsUnread.Set(float64(h.notifications.UnreadCount()))
	}

	return c.JSON(http.StatusOK, inboxResponse{
		Notifications: h.notifications.List(),
		UnreadCount:   h.notifications.UnreadCount(),
	})
}

// MarkRead handles PUT /notifications/:id/read. The local mark is applied
// even when the upstream call fails; the error still reaches the caller so
// the UI can surface it.
//
// @Summary      Mark one notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notifications.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.NotificationsUnread.Set(float64(h.notifications.UnreadCount()))
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles PUT /notifications/read-all.
//
// @Summary      Mark every notification read
// @Tags         notifications
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notifications.MarkAllAsRead(c.Request().Context()); err != nil {
		return err
	}
	metrics.NotificationsUnread.Set(0)
	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /notifications/:id.
//
// @Summary      Delete one notification
// @Tags         notifications
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Remove(c echo.Context) error {
	if err := h.notifications.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.NotificationsUnread.Set(float64(h.notifications.UnreadCount()))
	return c.NoContent(http.StatusNoContent)
}
