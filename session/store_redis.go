package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists the credential / identity slot pair in Redis, keyed
// by console session ID. Both slots share a TTL so an abandoned session
// ages out with its credential.
type RedisStore struct {
	rdb *redis.Client
	sid string
	ttl time.Duration
}

// NewRedisStore creates a store bound to one console session.
func NewRedisStore(rdb *redis.Client, sessionID string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		sid: sessionID,
		ttl: ttl,
	}
}

func (s *RedisStore) tokenKey() string    { return "console:" + s.sid + ":token" }
func (s *RedisStore) identityKey() string { return "console:" + s.sid + ":identity" }

func (s *RedisStore) Save(ctx context.Context, credential string, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "[RedisStore.Save] marshal identity")
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.tokenKey(), credential, s.ttl)
	pipe.Set(ctx, s.identityKey(), raw, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "[RedisStore.Save] pipeline exec")
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.rdb.Get(ctx, s.tokenKey()).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "[RedisStore.Load] get token")
	}
	return token, nil
}

func (s *RedisStore) LoadIdentity(ctx context.Context) (Identity, error) {
	raw, err := s.rdb.Get(ctx, s.identityKey()).Bytes()
	if err == redis.Nil {
		return Identity{}, nil
	}
	if err != nil {
		return Identity{}, errors.Wrap(err, "[RedisStore.LoadIdentity] get identity")
	}

	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		// Malformed identity JSON is treated as absent.
		return Identity{}, nil
	}
	return identity, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.tokenKey(), s.identityKey()).Err(); err != nil {
		return errors.Wrap(err, "[RedisStore.Clear] del")
	}
	return nil
}
