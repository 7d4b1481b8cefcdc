package file

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

func newStore(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newStore(t)
	if _, err := store.Load(context.Background()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	in := &domain.Session{
		Token: "tok123",
		User:  &domain.User{ID: "u1", Email: "jane@spc.io", Role: domain.RoleHR},
	}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out.Token != "tok123" || out.User == nil || out.User.Email != "jane@spc.io" {
		t.Fatalf("unexpected session: %+v", out)
	}
}

func TestFileStore_SaveUserKeepsToken(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Session{Token: "tok123", User: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	if err := store.SaveUser(ctx, &domain.User{ID: "u1", Role: domain.RoleCompanyAdmin}); err != nil {
		t.Fatalf("save user failed: %v", err)
	}

	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out.Token != "tok123" {
		t.Fatalf("token lost: %q", out.Token)
	}
	if out.User.Role != domain.RoleCompanyAdmin {
		t.Fatalf("user not replaced: %+v", out.User)
	}
}

func TestFileStore_ClearPreservesTheme(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Session{Token: "tok123", User: &domain.User{ID: "u1"}})
	_ = store.SaveTheme(ctx, "dark")

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, err := store.Load(ctx); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected cleared session, got %v", err)
	}
	// The theme entry outlives the session, like the original client's
	// separate preference key.
	raw, err := store.read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if raw.Theme != "dark" {
		t.Fatalf("theme lost on clear: %q", raw.Theme)
	}
}

func TestFileStore_ClearWithoutThemeRemovesFile(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Session{Token: "tok123"})
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	// Clearing an already-clean store must stay a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}
