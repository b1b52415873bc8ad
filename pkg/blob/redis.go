package blob

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/dukaan/config"
)

// redisStore keeps each blob in a Redis string value. Blobs have no TTL:
// the storefront's collections live until explicitly replaced.
type redisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func redisKey(key string) string { return "dukaan:blob:" + key }

func newRedisStore() *redisStore {
	return &redisStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		}),
		ctx: context.Background(),
	}
}

func (s *redisStore) Get(key string) ([]byte, error) {
	val, err := s.rdb.Get(s.ctx, redisKey(key)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("blob/redis: get %s: %w", key, err)
	}
	return val, nil
}

func (s *redisStore) Put(key string, value []byte) error {
	if err := s.rdb.Set(s.ctx, redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("blob/redis: put %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Exists(key string) bool {
	n, err := s.rdb.Exists(s.ctx, redisKey(key)).Result()
	return err == nil && n > 0
}

func (s *redisStore) Delete(key string) error {
	if err := s.rdb.Del(s.ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("blob/redis: delete %s: %w", key, err)
	}
	return nil
}
