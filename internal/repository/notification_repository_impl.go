package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gym-portal/internal/domain/entity"
	domainRepo "gym-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	RedisNotificationsKey       = "dashboard:notifications"
	RedisNotificationsSeededKey = "dashboard:notifications:seeded"
)

type notificationRepository struct {
	redisClient *redis.Client
}

func NewNotificationRepository(redisClient *redis.Client) domainRepo.NotificationRepository {
	return &notificationRepository{redisClient: redisClient}
}

// seedNotificationsScript sets the seeded flag and writes every notification
// in one atomic step, so a failed seed never leaves the flag behind.
// ARGV holds field/value pairs for the notifications hash.
var seedNotificationsScript = redis.NewScript(`
	if redis.call('SETNX', KEYS[1], 1) == 0 then
		return 0
	end
	for i = 1, #ARGV, 2 do
		redis.call('HSET', KEYS[2], ARGV[i], ARGV[i + 1])
	end
	return 1
`)

// Seed writes the notifications only the first time it is called against a
// Redis instance, so deletions survive restarts.
func (r *notificationRepository) Seed(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(notifications)*2)
	for _, n := range notifications {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("encode notification %d: %w", n.ID, err)
		}
		args = append(args, strconv.Itoa(n.ID), string(payload))
	}

	keys := []string{RedisNotificationsSeededKey, RedisNotificationsKey}
	if err := seedNotificationsScript.Run(ctx, r.redisClient, keys, args...).Err(); err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}
	return nil
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	values, err := r.redisClient.HGetAll(ctx, RedisNotificationsKey).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(values))
	for field, raw := range values {
		var n entity.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("decode notification %s: %w", field, err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int) (bool, error) {
	removed, err := r.redisClient.HDel(ctx, RedisNotificationsKey, strconv.Itoa(id)).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
