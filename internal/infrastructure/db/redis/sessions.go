// Package redis backs the session store. Redis is not a cache here: it is
// the source of truth for which sessions are alive, and its key TTLs are what
// expire idle sessions.
package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/listkeep/todo-system/internal/core/domain"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
	connectTimeout    = 5 * time.Second
)

// Config selects the Redis instance holding session state.
type Config struct {
	Addr string
	DB   int
}

// Connect opens the client the session store runs on and pings it, so a
// misconfigured session backend fails at startup rather than on the first
// login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session store ping: %w", err)
	}

	return client, nil
}

// SessionStore holds authenticated sessions in Redis.
// Key format: session:<id> → user id, expiring after the configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create opens a session for userID and returns the new session id.
func (s *SessionStore) Create(ctx context.Context, userID int64) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+id, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// GetUserID resolves a session id to the owning user.
// Unknown and expired ids both yield domain.ErrNoSession.
func (s *SessionStore) GetUserID(ctx context.Context, sid string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrNoSession
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session value: %w", err)
	}
	return userID, nil
}

// Delete revokes a session. Deleting an unknown id is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sid).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
