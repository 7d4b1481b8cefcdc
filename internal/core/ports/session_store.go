package ports

import (
	"context"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// SessionStore persists the single session across process restarts. Backends
// store the token, the serialized user, and the theme preference under fixed
// names. Clear removes token and user but leaves the theme in place, so the
// preference survives logout.
type SessionStore interface {
	// Load returns the stored session, or domain.ErrSessionNotFound when no
	// token is stored.
	Load(ctx context.Context) (*domain.Session, error)
	// Save replaces token and user together.
	Save(ctx context.Context, session *domain.Session) error
	// SaveUser replaces only the stored user, keeping the token.
	SaveUser(ctx context.Context, user *domain.User) error
	// SaveTheme replaces only the stored theme preference.
	SaveTheme(ctx context.Context, theme string) error
	// Clear removes token and user.
	Clear(ctx context.Context) error
}
