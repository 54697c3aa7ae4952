package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/core/domain"
	"storefront/internal/port"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository persists session records as JSON with a TTL. The
// record holds public user fields only; expiry doubles as logout for
// abandoned sessions.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisSessionRepository) Save(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.Token), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Load(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
