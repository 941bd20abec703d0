package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyReferrer = "pageit:intake:referrer"
	redisKeyPayout   = "pageit:intake:payout"
)

// RedisStore keeps both slots in Redis, for shared-terminal deployments
// (store-front kiosks) where several intake clients share one remembered
// referrer. Keys are written without expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed Store. The optional prefix namespaces
// the keys when several installations share one Redis.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) LoadReferrer(ctx context.Context) (*ReferrerProfile, error) {
	var p ReferrerProfile
	ok, err := s.load(ctx, redisKeyReferrer, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *RedisStore) SaveReferrer(ctx context.Context, p ReferrerProfile) error {
	return s.save(ctx, redisKeyReferrer, p)
}

func (s *RedisStore) LoadPayout(ctx context.Context) (*PayoutAccount, error) {
	var a PayoutAccount
	ok, err := s.load(ctx, redisKeyPayout, &a)
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

func (s *RedisStore) SavePayout(ctx context.Context, a PayoutAccount) error {
	return s.save(ctx, redisKeyPayout, a)
}

// load fetches key into v. A missing key or corrupt payload reads as absent;
// only transport errors propagate.
func (s *RedisStore) load(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("profilestore: redis get: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("profilestore: marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("profilestore: redis set: %w", err)
	}
	return nil
}
