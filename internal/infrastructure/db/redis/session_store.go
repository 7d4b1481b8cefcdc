package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// Fixed key names for the persisted session. Clear removes token and user
// only; the theme key deliberately survives logout.
const (
	tokenKey = "hrms:auth:token"
	userKey  = "hrms:auth:user"
	themeKey = "hrms:auth:theme"
)

// SessionStore persists the single gateway session in Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}

	sess := &domain.Session{Token: token}

	raw, err := s.client.Get(ctx, userKey).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// token without user: transient, the caller decides what to do
	case err != nil:
		return nil, fmt.Errorf("load user: %w", err)
	default:
		var user domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("decode stored user: %w", err)
		}
		sess.User = &user
	}

	theme, err := s.client.Get(ctx, themeKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	sess.Theme = theme

	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey, session.Token, 0)
	pipe.Set(ctx, userKey, raw, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) SaveUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.client.Set(ctx, userKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *SessionStore) SaveTheme(ctx context.Context, theme string) error {
	if err := s.client.Set(ctx, themeKey, theme, 0).Err(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey, userKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
