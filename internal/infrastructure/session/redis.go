package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"profolio/internal/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// payload is what lives behind a session key. Kept as a struct so the
// stored value stays extensible without breaking existing sessions.
type payload struct {
	UserID int64 `json:"user_id"`
}

// RedisStore is the production Store. Unlike a cache, the session store is
// authoritative: connectivity failures surface as errors instead of being
// bypassed.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session store: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, sid string) (int64, error) {
	// GETEX re-arms the inactivity expiry on every read.
	b, err := s.client.GetEx(ctx, keyPrefix+sid, s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, err
	}

	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return 0, err
	}
	return p.UserID, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, userID int64) error {
	b, err := json.Marshal(payload{UserID: userID})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sid, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}
