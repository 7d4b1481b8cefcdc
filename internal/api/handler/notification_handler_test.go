package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

type stubNotificationService struct {
	items      []domain.Notification
	unread     int
	fetchErr   error
	fetchCalls int
	markedID   string
	markedAll  bool
	removedID  string
	cleared    bool
}

func (s *stubNotificationService) Fetch(ctx context.Context) error {
	s.fetchCalls++
	return s.fetchErr
}

func (s *stubNotificationService) List() []domain.Notification { return s.items }
func (s *stubNotificationService) UnreadCount() int            { return s.unread }

func (s *stubNotificationService) MarkAsRead(ctx context.Context, id string) error {
	s.markedID = id
	return nil
}

func (s *stubNotificationService) MarkAllAsRead(ctx context.Context) error {
	s.markedAll = true
	return nil
}

func (s *stubNotificationService) Remove(ctx context.Context, id string) error {
	s.removedID = id
	return nil
}

func (s *stubNotificationService) ClearAll() { s.cleared = true }

func TestNotificationHandler_List(t *testing.T) {
	svc := &stubNotificationService{
		items: []domain.Notification{
			{ID: "n-1", Title: "Contract expiring", Type: domain.TypeContractExpiry},
			{ID: "n-2", Title: "Leave request", Type: domain.TypeLeaveRequest, IsRead: true},
		},
		unread: 1,
	}
	h := NewNotificationHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.fetchCalls != 0 {
		t.Fatal("plain List must serve the cache, not fetch")
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"unreadCount":1`) || !strings.Contains(body, "n-1") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestNotificationHandler_List_Refresh(t *testing.T) {
	svc := &stubNotificationService{}
	h := NewNotificationHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications?refresh=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if svc.fetchCalls != 1 {
		t.Fatalf("expected one forced fetch, got %d", svc.fetchCalls)
	}
}

func TestNotificationHandler_List_RefreshFailure(t *testing.T) {
	svc := &stubNotificationService{fetchErr: errors.New("backend down")}
	h := NewNotificationHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications?refresh=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err == nil {
		t.Fatal("expected the fetch error to propagate")
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	svc := &stubNotificationService{}
	h := NewNotificationHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/notifications/:id/read")
	c.SetParamNames("id")
	c.SetParamValues("n-7")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.markedID != "n-7" {
		t.Fatalf("expected n-7 marked, got %q", svc.markedID)
	}
}

func TestNotificationHandler_Remove(t *testing.T) {
	svc := &stubNotificationService{}
	h := NewNotificationHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/notifications/:id")
	c.SetParamNames("id")
	c.SetParamValues("n-3")

	if err := h.Remove(c); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.removedID != "n-3" {
		t.Fatalf("expected n-3 removed, got %q", svc.removedID)
	}
}
