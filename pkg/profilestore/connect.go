package profilestore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidRedisURL indicates the connection URL could not be parsed.
	ErrInvalidRedisURL = errors.New("profilestore.errors.invalid_redis_url")
	// ErrRedisNotReady indicates the server did not answer within the
	// configured retry budget.
	ErrRedisNotReady = errors.New("profilestore.errors.redis_not_ready")
)

// RedisConfig configures the Redis-backed store used by shared kiosk
// deployments, where several terminals prefill from one profile set.
type RedisConfig struct {
	URL            string        `env:"PROFILE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix      string        `env:"PROFILE_REDIS_KEY_PREFIX"`
	RetryAttempts  int           `env:"PROFILE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"PROFILE_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"PROFILE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// ConnectRedis dials the configured server, retrying until the attempt
// budget or the connect timeout runs out, and returns a ready store.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for range attempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisStore(client, cfg.KeyPrefix), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrRedisNotReady
}
