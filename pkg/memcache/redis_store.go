package mem

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "wildsafari:planner:"

// RedisSessions stores sessions in redis, which expires keys on its own.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func (s *RedisSessions) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

func (s *RedisSessions) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *RedisSessions) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisSessions) PurgeExpired(context.Context) (int, error) {
	return 0, nil
}
