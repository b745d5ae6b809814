package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gym-portal/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisUsersListKey holds the JSON-encoded GET /api/users payload.
	RedisUsersListKey = "users:list"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// UserCache is a cache-aside store for the user list. A miss is reported as
// (nil, false, nil).
type UserCache interface {
	GetUsers(ctx context.Context) ([]dto.UserResponse, bool, error)
	SetUsers(ctx context.Context, users []dto.UserResponse) error
	Invalidate(ctx context.Context) error
}

type redisUserCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisUserCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) UserCache {
	return &redisUserCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisUserCache) GetUsers(ctx context.Context) ([]dto.UserResponse, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, RedisUsersListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get users cache: %w", err)
	}

	var users []dto.UserResponse
	if err := json.Unmarshal(raw, &users); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.log.Warnf("Failed to decode users cache, dropping it: %+v", err)
		c.redisClient.Del(ctx, RedisUsersListKey)
		return nil, false, nil
	}
	return users, true, nil
}

func (c *redisUserCache) SetUsers(ctx context.Context, users []dto.UserResponse) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, RedisUsersListKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set users cache: %w", err)
	}
	c.log.Debugf("Cached %d users for %v", len(users), c.ttl)
	return nil
}

func (c *redisUserCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, RedisUsersListKey).Err(); err != nil {
		return fmt.Errorf("invalidate users cache: %w", err)
	}
	return nil
}

// NoopUserCache always misses. Used when no Redis is available.
type NoopUserCache struct{}

func (NoopUserCache) GetUsers(context.Context) ([]dto.UserResponse, bool, error) {
	return nil, false, nil
}

func (NoopUserCache) SetUsers(context.Context, []dto.UserResponse) error { return nil }

func (NoopUserCache) Invalidate(context.Context) error { return nil }
