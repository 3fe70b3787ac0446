package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "roastery/internal/errors"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL. Unlike the read cache this
// does not swallow errors: a session write that silently fails would log
// the user straight back out.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	key := sessionKeyPrefix + token
	if err := s.client.Set(ctx, key, uint64(userID), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (uint, error) {
	key := sessionKeyPrefix + token
	val, err := s.client.Get(ctx, key).Uint64()
	if err == redis.Nil {
		return 0, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	return uint(val), nil
}

func (s *RedisStore) Invalidate(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}
