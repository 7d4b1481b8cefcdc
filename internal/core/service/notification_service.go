package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

// NotificationService caches the current user's inbox and applies optimistic
// mutations: local state changes first, then the upstream call is made. When
// the upstream call fails the error propagates to the caller and the local
// change stays — the view diverges until the next Fetch replaces it. That is
// the accepted reconciliation policy, not an accident; see DESIGN.md.
type NotificationService struct {
	api ports.NotificationAPI
	log zerolog.Logger

	mu     sync.RWMutex
	items  []domain.Notification
	unread int
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(api ports.NotificationAPI, log zerolog.Logger) *NotificationService {
	return &NotificationService{api: api, log: log}
}

// Fetch replaces the full list and unread count from upstream.
func (s *NotificationService) Fetch(ctx context.Context) error {
	inbox, err := s.api.FetchNotifications(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = inbox.Notifications
	s.unread = inbox.UnreadCount
	s.mu.Unlock()
	return nil
}

func (s *NotificationService) List() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// MarkAsRead optimistically marks one notification read and decrements the
// unread count, floored at zero. Marking an already-read item is a no-op at
// the data level: the count is not decremented twice and no upstream call is
// made. An unknown id still goes upstream — the cache may simply be stale.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	alreadyRead := false
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].IsRead {
			alreadyRead = true
			break
		}
		now := time.Now().UTC()
		s.items[i].IsRead = true
		s.items[i].ReadAt = &now
		if s.unread > 0 {
			s.unread--
		}
		break
	}
	s.mu.Unlock()

	if alreadyRead {
		return nil
	}
	return s.api.MarkNotificationRead(ctx, id)
}

// MarkAllAsRead optimistically marks every cached notification read and
// zeroes the count before the upstream call returns.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	now := time.Now().UTC()

	s.mu.Lock()
	for i := range s.items {
		if !s.items[i].IsRead {
			s.items[i].IsRead = true
			readAt := now
			s.items[i].ReadAt = &readAt
		}
	}
	s.unread = 0
	s.mu.Unlock()

	return s.api.MarkAllNotificationsRead(ctx)
}

// Remove optimistically drops the notification and recomputes the unread
// count from what remains, then deletes upstream.
func (s *NotificationService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, n := range s.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.items = kept

	unread := 0
	for _, n := range s.items {
		if !n.IsRead {
			unread++
		}
	}
	s.unread = unread
	s.mu.Unlock()

	return s.api.DeleteNotification(ctx, id)
}

// ClearAll resets the local cache. Called on logout; no upstream call.
func (s *NotificationService) ClearAll() {
	s.mu.Lock()
	s.items = nil
	s.unread = 0
	s.mu.Unlock()
}
