package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/config"
	redisclient "github.com/caterstock/caterstock-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	AccessSessionKey(accessID string) string
}

// Manager registers live access sessions in Redis so tokens can be revoked
// before their JWT expiry. There is no refresh rotation; a fresh LINE login
// replaces the session.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// AccessSessionChecker exposes the read-only surface needed by middleware.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.JWTConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.AccessTokenTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive")
	}

	return &Manager{
		store: client,
		keyer: client,
		ttl:   ttl,
	}, nil
}

// NewAccessID returns a fresh session identifier for use as the JWT jti.
func NewAccessID() string {
	return uuid.NewString()
}

// Register stores a session marker for the given access ID, valid for the token TTL.
func (m *Manager) Register(ctx context.Context, accessID string, userID uuid.UUID) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	return m.store.Set(ctx, m.keyer.AccessSessionKey(accessID), userID.String(), m.ttl)
}

// HasSession reports whether the access ID still maps to a live session.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, nil
	}
	_, err := m.store.Get(ctx, m.keyer.AccessSessionKey(accessID))
	if err != nil {
		if redisclient.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke drops the session for the given access ID.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.AccessSessionKey(accessID))
}
