package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

const unreachableMessage = "unable to reach the server, please try again"

// SessionService owns the single session of the gateway process: restore at
// startup, login/register/logout, and durable persistence through a
// SessionStore. It is safe for concurrent use; the mutex guards memory
// safety only — back-to-back operations interleave last-write-wins, the same
// contract the original client had.
type SessionService struct {
	store ports.SessionStore
	api   ports.AuthAPI
	log   zerolog.Logger

	mu      sync.RWMutex
	loading bool
	token   string
	user    *domain.User
	theme   string

	subMu       sync.Mutex
	subscribers []func(*domain.User)
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(store ports.SessionStore, api ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		api:     api,
		log:     log,
		loading: true,
	}
}

// OnChange registers a callback invoked with the new user after every session
// transition: non-nil on login/restore, nil on logout. Used to tie the
// notification poller to the session lifetime.
func (s *SessionService) OnChange(fn func(*domain.User)) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

// Initialize restores the persisted session. Both token and user must be
// present; a lone token is ignored. The stored user's role is normalized and,
// when the value actually changed, written back so the fix is durable.
// Staleness is accepted: no upstream call validates the token here.
func (s *SessionService) Initialize(ctx context.Context) {
	defer s.finishLoading()

	sess, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Msg("session restore failed")
		}
		return
	}
	if sess.Token == "" || sess.User == nil {
		return
	}

	user, changed := domain.NormalizeRole(*sess.User)
	if changed {
		if err := s.store.SaveUser(ctx, &user); err != nil {
			s.log.Warn().Err(err).Msg("could not persist corrected role")
		} else {
			s.log.Info().
				Str("email", user.Email).
				Str("role", user.Role).
				Msg("legacy role corrected on restore")
		}
	}

	s.mu.Lock()
	s.token = sess.Token
	s.user = &user
	s.theme = sess.Theme
	s.mu.Unlock()

	s.notify(&user)
}

// Login authenticates against the backend. The returned user's role is
// normalized before it is persisted or exposed. Failures of any kind reduce
// to a result value; Login never returns an error to its caller.
func (s *SessionService) Login(ctx context.Context, email, password, companyID string) ports.AuthOutcome {
	res, err := s.api.Login(ctx, ports.Credentials{Email: email, Password: password, CompanyID: companyID})
	if err != nil {
		return failureOutcome(err)
	}

	user, _ := domain.NormalizeRole(*res.User)
	s.adopt(ctx, res.Token, &user)
	return ports.AuthOutcome{Success: true}
}

// Register creates an account and adopts the returned session verbatim. The
// response user is intentionally not normalized; see DESIGN.md.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) ports.AuthOutcome {
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return failureOutcome(err)
	}

	s.adopt(ctx, res.Token, res.User)
	return ports.AuthOutcome{Success: true}
}

// GoogleLogin is the federated variant of Login. Like Register, the response
// user is adopted verbatim without role normalization.
func (s *SessionService) GoogleLogin(ctx context.Context, credential string) ports.AuthOutcome {
	res, err := s.api.GoogleLogin(ctx, credential)
	if err != nil {
		return failureOutcome(err)
	}

	s.adopt(ctx, res.Token, res.User)
	return ports.AuthOutcome{Success: true}
}

// Logout clears the persisted and in-memory session synchronously. No
// upstream call is made; the token simply stops being used.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("could not clear persisted session")
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.notify(nil)
}

// UpdateUser replaces the in-memory and persisted user together. Other
// screens use this to reflect profile edits without a re-login.
func (s *SessionService) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return domain.ErrNotAuthenticated
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return err
	}
	s.user = user
	return nil
}

func (s *SessionService) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveTheme(ctx, theme); err != nil {
		return err
	}
	s.theme = theme
	return nil
}

func (s *SessionService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated holds exactly when a token is present.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionService) Status() ports.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := ports.SessionStatus{
		Authenticated: s.token != "",
		Loading:       s.loading,
		Theme:         s.theme,
	}
	if s.user != nil {
		clone := *s.user
		status.User = &clone
	}
	if s.token != "" {
		status.TokenExpiresAt = tokenExpiry(s.token)
	}
	return status
}

// adopt installs a fresh session after a successful authentication: persist
// token and user, pick up the stored theme preference, and fan out the
// change. A persistence failure is logged but does not fail the login — the
// in-memory session is still valid for this process lifetime.
func (s *SessionService) adopt(ctx context.Context, token string, user *domain.User) {
	if err := s.store.Save(ctx, &domain.Session{Token: token, User: user}); err != nil {
		s.log.Warn().Err(err).Msg("session not persisted")
	}

	theme := ""
	if stored, err := s.store.Load(ctx); err == nil {
		theme = stored.Theme
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.theme = theme
	s.mu.Unlock()

	s.notify(user)
}

func (s *SessionService) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionService) notify(user *domain.User) {
	s.subMu.Lock()
	subs := make([]func(*domain.User), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// failureOutcome folds both failure classes into a displayable result:
// backend-reported failures keep their message, transport failures get a
// generic one.
func failureOutcome(err error) ports.AuthOutcome {
	var ue *ports.UpstreamError
	if errors.As(err, &ue) {
		return ports.AuthOutcome{Success: false, Message: ue.Message}
	}
	return ports.AuthOutcome{Success: false, Message: unreachableMessage}
}

// tokenExpiry decodes the exp claim without verifying the signature. The
// token stays opaque as far as trust goes; this is display metadata only.
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
