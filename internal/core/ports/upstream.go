package ports

import (
	"context"
	"fmt"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// UpstreamError is a business failure reported by the HRMS backend: the
// envelope arrived with success=false. Transport failures are returned as
// plain errors instead.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed (status %d)", e.StatusCode)
}

// Credentials is a password-login request.
type Credentials struct {
	Email     string
	Password  string
	CompanyID string
}

// RegisterInput carries a company sign-up request.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CompanyName string
	Role        string
}

// AuthResult is what the backend returns on a successful authentication.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthAPI is the authentication surface of the HRMS backend.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	GoogleLogin(ctx context.Context, credential string) (*AuthResult, error)
}

// Inbox is the backend's view of the current user's notifications.
type Inbox struct {
	Notifications []domain.Notification
	UnreadCount   int
}

// NotificationAPI is the notification surface of the HRMS backend.
type NotificationAPI interface {
	FetchNotifications(ctx context.Context) (*Inbox, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}
