package storage

import (
	"context"
	"errors"

	redisv9 "github.com/redis/go-redis/v9"
)

// RedisStore keeps one string per session under "{key}:{sessionID}".
type RedisStore struct {
	client *redisv9.Client
	key    string
}

func NewRedisStore(client *redisv9.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) storeKey(sessionID string) string {
	return s.key + ":" + sessionID
}

func (s *RedisStore) Save(ctx context.Context, sessionID, location string) error {
	return s.client.Set(ctx, s.storeKey(sessionID), location, 0).Err()
}

func (s *RedisStore) LoadLast(ctx context.Context, sessionID string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.storeKey(sessionID)).Result()
	if errors.Is(err, redisv9.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, val != "", nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
