package locker

import (
	"context"
	"testing"
	"time"

	redisRepository "clinic-booking-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLockService(t *testing.T) (*miniredis.Miniredis, *lockService) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	service := NewLockService(redisRepository.NewRedisRepository(client), zap.NewNop()).(*lockService)
	return mr, service
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second TryLock fails while held", func(t *testing.T) {
		_, service := newTestLockService(t)

		acquired, value, err := service.TryLock(ctx, "lock:payment:1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		acquired, value, err = service.TryLock(ctx, "lock:payment:1", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Unlock by owner frees the key", func(t *testing.T) {
		mr, service := newTestLockService(t)

		_, value, err := service.TryLock(ctx, "lock:payment:2", time.Minute)
		require.NoError(t, err)

		require.NoError(t, service.Unlock(ctx, "lock:payment:2", value))
		assert.False(t, mr.Exists("lock:payment:2"))

		acquired, _, err := service.TryLock(ctx, "lock:payment:2", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Unlock with foreign value keeps the lock", func(t *testing.T) {
		mr, service := newTestLockService(t)

		_, _, err := service.TryLock(ctx, "lock:payment:3", time.Minute)
		require.NoError(t, err)

		err = service.Unlock(ctx, "lock:payment:3", "someone-else")
		assert.Error(t, err)
		assert.True(t, mr.Exists("lock:payment:3"))
	})

	t.Run("Lock expires", func(t *testing.T) {
		mr, service := newTestLockService(t)

		_, _, err := service.TryLock(ctx, "lock:payment:4", time.Second)
		require.NoError(t, err)
		mr.FastForward(2 * time.Second)

		acquired, _, err := service.TryLock(ctx, "lock:payment:4", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Unlock of missing key is a no-op", func(t *testing.T) {
		_, service := newTestLockService(t)
		assert.NoError(t, service.Unlock(ctx, "lock:payment:none", "v"))
	})
}
