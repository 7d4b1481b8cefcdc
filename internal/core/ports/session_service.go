package ports

import (
	"context"
	"time"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// AuthOutcome is the result value of every authentication operation. Auth
// operations never surface transport or business failures as errors; both
// reduce to Success=false with a displayable message.
type AuthOutcome struct {
	Success bool
	Message string
}

// SessionStatus is a read-only snapshot of the session for API consumers.
// TokenExpiresAt is best effort: it is decoded from the opaque token without
// signature verification and is nil when the token does not carry an expiry.
type SessionStatus struct {
	Authenticated  bool         `json:"authenticated"`
	Loading        bool         `json:"loading"`
	User           *domain.User `json:"user,omitempty"`
	Theme          string       `json:"theme,omitempty"`
	TokenExpiresAt *time.Time   `json:"tokenExpiresAt,omitempty"`
}

// SessionService is the single source of truth for "who is logged in".
type SessionService interface {
	// Initialize restores a persisted session, normalizing the stored user's
	// role and re-persisting it when corrected. Loading reports true until
	// Initialize has finished. No upstream call is made.
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password, companyID string) AuthOutcome
	Register(ctx context.Context, in RegisterInput) AuthOutcome
	GoogleLogin(ctx context.Context, credential string) AuthOutcome
	// Logout clears memory and store synchronously; no upstream call.
	Logout(ctx context.Context)
	// UpdateUser replaces the in-memory and persisted user atomically.
	UpdateUser(ctx context.Context, user *domain.User) error
	SetTheme(ctx context.Context, theme string) error

	CurrentUser() *domain.User
	Loading() bool
	IsAuthenticated() bool
	Token() string
	Status() SessionStatus
}
