package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"gym-portal/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// failScriptsHook fails EVAL and EVALSHA while enabled.
type failScriptsHook struct {
	enabled bool
}

func (h *failScriptsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *failScriptsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if h.enabled && (cmd.Name() == "eval" || cmd.Name() == "evalsha") {
			err := errors.New("script failed")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (h *failScriptsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func sampleNotifications() []entity.Notification {
	return []entity.Notification{
		{ID: 1, Type: entity.NotificationTypeInfo, Message: "Renewal soon", Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: entity.NotificationTypeAlert, Message: "New class", Date: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Type: entity.NotificationTypeSuccess, Message: "Update profile", Date: time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)},
	}
}

func findAllByID(t *testing.T, repo interface {
	FindAll(context.Context) ([]entity.Notification, error)
}) []entity.Notification {
	t.Helper()
	found, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

func TestNotificationSeedDecodesStoredValues(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewNotificationRepository(client)

	require.NoError(t, repo.Seed(context.Background(), sampleNotifications()))

	found := findAllByID(t, repo)
	require.Len(t, found, 3)
	for i, want := range sampleNotifications() {
		assert.Equal(t, want.ID, found[i].ID)
		assert.Equal(t, want.Type, found[i].Type)
		assert.Equal(t, want.Message, found[i].Message)
		assert.True(t, want.Date.Equal(found[i].Date))
	}
}

func TestNotificationSeedRunsOnce(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewNotificationRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, sampleNotifications()))
	removed, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	require.NoError(t, repo.Seed(ctx, sampleNotifications()))

	found := findAllByID(t, repo)
	require.Len(t, found, 2)
	assert.Equal(t, 1, found[0].ID)
	assert.Equal(t, 3, found[1].ID)
	assert.True(t, mr.Exists(RedisNotificationsSeededKey))
}

func TestNotificationSeedFailureLeavesNothingBehind(t *testing.T) {
	mr, client := newTestRedis(t)
	hook := &failScriptsHook{enabled: true}
	client.AddHook(hook)
	repo := NewNotificationRepository(client)
	ctx := context.Background()

	err := repo.Seed(ctx, sampleNotifications())
	assert.ErrorContains(t, err, "seed notifications")
	assert.False(t, mr.Exists(RedisNotificationsSeededKey))
	assert.False(t, mr.Exists(RedisNotificationsKey))

	hook.enabled = false
	require.NoError(t, repo.Seed(ctx, sampleNotifications()))
	assert.Len(t, findAllByID(t, repo), 3)
}

func TestNotificationSeedWithNothingToWrite(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewNotificationRepository(client)

	require.NoError(t, repo.Seed(context.Background(), nil))
	assert.False(t, mr.Exists(RedisNotificationsSeededKey))
}

func TestNotificationDeleteMissing(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewNotificationRepository(client)
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, sampleNotifications()))

	removed, err := repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, findAllByID(t, repo), 3)
}

func TestNotificationFindAllRejectsCorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewNotificationRepository(client)

	mr.HSet(RedisNotificationsKey, "9", "{not json")

	_, err := repo.FindAll(context.Background())
	assert.ErrorContains(t, err, "decode notification 9")
}

func TestNotificationFindAllEmpty(t *testing.T) {
	_, client := newTestRedis(t)

	found, err := NewNotificationRepository(client).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, found)
}
