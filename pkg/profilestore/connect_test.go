package profilestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pageit/pageit-forms/pkg/profilestore"
)

func TestConnectRedis(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed url", func(t *testing.T) {
		t.Parallel()
		_, err := profilestore.ConnectRedis(context.Background(), profilestore.RedisConfig{
			URL:            "not-a-redis-url",
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, profilestore.ErrInvalidRedisURL)
	})

	t.Run("gives up when the server is unreachable", func(t *testing.T) {
		t.Parallel()
		_, err := profilestore.ConnectRedis(context.Background(), profilestore.RedisConfig{
			URL:            "redis://127.0.0.1:1/0",
			RetryAttempts:  1,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, profilestore.ErrRedisNotReady)
	})
}
