// Package ratelimit backs the login-attempt tracker with Redis so that
// lockout state survives process restarts and is shared across instances.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"havenstay/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "login_attempts:"

type RedisStore struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func NewRedisStore(client *redis.Client, cfg config.AuthConfig) *RedisStore {
	return &RedisStore{
		client:      client,
		maxAttempts: cfg.MaxLoginAttempts,
		window:      cfg.LockoutWindow,
	}
}

// RecordAttempt increments the failure counter for the key and returns the
// new count. The window starts at the first failure; later failures do not
// extend it.
func (s *RedisStore) RecordAttempt(ctx context.Context, key string) (int, error) {
	redisKey := attemptKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record login attempt: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.window).Err(); err != nil {
			return int(count), fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return int(count), nil
}

func (s *RedisStore) IsLockedOut(ctx context.Context, key string) (bool, error) {
	count, err := s.attempts(ctx, key)
	if err != nil {
		return false, err
	}
	return count >= s.maxAttempts, nil
}

func (s *RedisStore) RemainingAttempts(ctx context.Context, key string) (int, error) {
	count, err := s.attempts(ctx, key)
	if err != nil {
		return 0, err
	}
	remaining := s.maxAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, attemptKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func (s *RedisStore) attempts(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, attemptKeyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return count, nil
}
