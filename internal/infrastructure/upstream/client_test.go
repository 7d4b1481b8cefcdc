package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, func() string { return token }, zerolog.Nop())
}

func TestLogin_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "jane@spc.io" || req["password"] != "pw" {
			t.Fatalf("unexpected payload: %v", req)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok123","user":{"id":"u1","email":"jane@spc.io","role":"hr"}}}`))
	})

	res, err := client.Login(context.Background(), ports.Credentials{Email: "jane@spc.io", Password: "pw"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token != "tok123" || res.User == nil || res.User.Role != "hr" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogin_BusinessFailure(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), ports.Credentials{Email: "x", Password: "y"})
	var ue *ports.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Message != "Invalid credentials" || ue.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected error: %+v", ue)
	}
}

func TestFetchNotifications_CarriesBearerToken(t *testing.T) {
	client := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("missing bearer header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"notifications":[{"id":"n1","title":"Contract","type":"contract-expiry","priority":"high","isRead":false}],"unreadCount":1}}`))
	})

	inbox, err := client.FetchNotifications(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if inbox.UnreadCount != 1 || len(inbox.Notifications) != 1 {
		t.Fatalf("unexpected inbox: %+v", inbox)
	}
	if inbox.Notifications[0].ID != "n1" {
		t.Fatalf("unexpected notification: %+v", inbox.Notifications[0])
	}
}

func TestMarkNotificationRead_PathAndMethod(t *testing.T) {
	client := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/notifications/n1/read" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	if err := client.MarkNotificationRead(context.Background(), "n1"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
}

func TestDo_MalformedBodyIsTransportError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := client.FetchNotifications(context.Background())
	if err == nil {
		t.Fatalf("expected error for non-envelope body")
	}
	var ue *ports.UpstreamError
	if errors.As(err, &ue) {
		t.Fatalf("malformed body must not be a business failure: %v", err)
	}
}

func TestForward_RelaysStatusAndBody(t *testing.T) {
	client := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/employees" || r.URL.Query().Get("page") != "2" {
			t.Fatalf("unexpected request: %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	res, err := client.Forward(context.Background(), http.MethodGet, "/employees",
		map[string][]string{"page": {"2"}}, nil)
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	if res.Status != http.StatusOK || res.ContentType != "application/json" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
