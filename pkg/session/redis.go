package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session payloads in redis as JSON with a TTL
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg utils.SessionConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func redisKey(id string) string {
	return "superpetzjp:session:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*utils.Identity, error) {
	raw, err := s.client.Get(ctx, redisKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get %s: %w", id, err)
	}

	var identity utils.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, fmt.Errorf("session decode %s: %w", id, err)
	}

	return &identity, nil
}

func (s *RedisStore) Set(ctx context.Context, id string, identity *utils.Identity, ttl time.Duration) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", id, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("session delete %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
