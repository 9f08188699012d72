package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище поверх Redis
// SetIfAbsent - SETNX, списки - RPUSH/LREM/LRANGE.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище поверх готового клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrExecQuery, key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - key=%s: %v", ErrExecQuery, key, err)
	}
	return ok, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *RedisStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: MGet - %d keys: %v", ErrExecQuery, len(keys), err)
	}

	result := make([][]byte, len(values))
	for i, v := range values {
		if str, ok := v.(string); ok {
			result[i] = []byte(str)
		}
	}
	return result, nil
}

func (s *RedisStore) Append(ctx context.Context, listKey, member string) error {
	if err := s.client.RPush(ctx, listKey, member).Err(); err != nil {
		return fmt.Errorf("%w: Append - list=%s: %v", ErrExecQuery, listKey, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, listKey, member string) error {
	if err := s.client.LRem(ctx, listKey, 0, member).Err(); err != nil {
		return fmt.Errorf("%w: Remove - list=%s: %v", ErrExecQuery, listKey, err)
	}
	return nil
}

func (s *RedisStore) Members(ctx context.Context, listKey string) ([]string, error) {
	members, err := s.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Members - list=%s: %v", ErrExecQuery, listKey, err)
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
