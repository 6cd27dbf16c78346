package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "stocktake:session:"

// RedisSessionStore persists one counting session per operator as a JSON
// blob. ActualQuantity travels inside the same blob and is never rewritten
// outside a full session save, so a reload can never corrupt it.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(operatorID string) string {
	return sessionKeyPrefix + operatorID
}

func (s *RedisSessionStore) Load(ctx context.Context, operatorID string) (*model.InventorySession, error) {
	data, err := s.client.Get(ctx, sessionKey(operatorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session model.InventorySession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode stored session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, operatorID string, session *model.InventorySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(operatorID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, operatorID string) error {
	if err := s.client.Del(ctx, sessionKey(operatorID)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
