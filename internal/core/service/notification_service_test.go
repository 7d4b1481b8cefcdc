package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

type stubNotificationAPI struct {
	inbox      *ports.Inbox
	fetchErr   error
	mutateErr  error
	markCalls  []string
	markAll    int
	deleteIDs  []string
	fetchCount int
}

func (a *stubNotificationAPI) FetchNotifications(context.Context) (*ports.Inbox, error) {
	a.fetchCount++
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	return a.inbox, nil
}

func (a *stubNotificationAPI) MarkNotificationRead(_ context.Context, id string) error {
	a.markCalls = append(a.markCalls, id)
	return a.mutateErr
}

func (a *stubNotificationAPI) MarkAllNotificationsRead(context.Context) error {
	a.markAll++
	return a.mutateErr
}

func (a *stubNotificationAPI) DeleteNotification(_ context.Context, id string) error {
	a.deleteIDs = append(a.deleteIDs, id)
	return a.mutateErr
}

func inboxOf(ns ...domain.Notification) *ports.Inbox {
	unread := 0
	for _, n := range ns {
		if !n.IsRead {
			unread++
		}
	}
	return &ports.Inbox{Notifications: ns, UnreadCount: unread}
}

func note(id string, read bool) domain.Notification {
	n := domain.Notification{
		ID:        id,
		Title:     "n-" + id,
		Type:      domain.TypeOther,
		Priority:  domain.PriorityMedium,
		IsRead:    read,
		CreatedAt: time.Now().UTC(),
	}
	return n
}

func TestFetch_ReplacesListAndCount(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(note("1", false), note("2", true))}
	svc := NewNotificationService(api, zerolog.Nop())

	if err := svc.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected 2 notifications, got %d", got)
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("expected 1 unread, got %d", svc.UnreadCount())
	}
}

func TestMarkAsRead_DecrementsOnceFlooredAtZero(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(note("1", false))}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	if err := svc.MarkAsRead(context.Background(), "1"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if svc.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread, got %d", svc.UnreadCount())
	}
	if got := svc.List()[0]; !got.IsRead || got.ReadAt == nil {
		t.Fatalf("notification not marked locally: %+v", got)
	}

	// Second call on the same id: data-level no-op, no double decrement,
	// no second upstream call.
	if err := svc.MarkAsRead(context.Background(), "1"); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	if svc.UnreadCount() != 0 {
		t.Fatalf("count went below floor: %d", svc.UnreadCount())
	}
	if len(api.markCalls) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", len(api.markCalls))
	}
}

func TestMarkAsRead_UpstreamFailureKeepsOptimisticState(t *testing.T) {
	api := &stubNotificationAPI{
		inbox:     inboxOf(note("1", false)),
		mutateErr: errors.New("boom"),
	}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	err := svc.MarkAsRead(context.Background(), "1")
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	// No rollback: accepted divergence until the next fetch.
	if !svc.List()[0].IsRead || svc.UnreadCount() != 0 {
		t.Fatalf("optimistic state rolled back: %+v unread=%d", svc.List()[0], svc.UnreadCount())
	}
}

func TestMarkAsRead_UnknownIDStillGoesUpstream(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(note("1", false))}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	if err := svc.MarkAsRead(context.Background(), "ghost"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("unknown id must not touch the count, got %d", svc.UnreadCount())
	}
	if len(api.markCalls) != 1 || api.markCalls[0] != "ghost" {
		t.Fatalf("expected upstream call for stale cache, got %v", api.markCalls)
	}
}

func TestMarkAllAsRead_OptimisticBeforeConfirmation(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(
		note("1", false), note("2", true), note("3", false),
		note("4", true), note("5", false),
	)}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	// Upstream never confirms, but all five must flip locally anyway.
	api.mutateErr = errors.New("backend down")
	_ = svc.MarkAllAsRead(context.Background())

	for _, n := range svc.List() {
		if !n.IsRead {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
	if svc.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread, got %d", svc.UnreadCount())
	}
}

func TestRemove_RecomputesUnreadFromRemainder(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(note("1", false), note("2", false), note("3", true))}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	if err := svc.Remove(context.Background(), "1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected 2 left, got %d", got)
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("expected 1 unread after removal, got %d", svc.UnreadCount())
	}
	if len(api.deleteIDs) != 1 || api.deleteIDs[0] != "1" {
		t.Fatalf("expected upstream delete, got %v", api.deleteIDs)
	}
}

func TestClearAll_LocalOnly(t *testing.T) {
	api := &stubNotificationAPI{inbox: inboxOf(note("1", false))}
	svc := NewNotificationService(api, zerolog.Nop())
	_ = svc.Fetch(context.Background())

	svc.ClearAll()

	if len(svc.List()) != 0 || svc.UnreadCount() != 0 {
		t.Fatalf("clear left state behind")
	}
	if len(api.deleteIDs) != 0 {
		t.Fatalf("clear must not call upstream")
	}
}
