package callsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "callsession:"

// RedisStore keeps sessions in Redis so they survive restarts. Every write
// refreshes the TTL, which bounds the lifetime of sessions whose disconnect event
// never arrived. Writes are plain overwrites: events of one call are serialized
// only by the in-process Locks, so every event of a call must reach the same
// instance.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(callID string) string {
	return keyPrefix + callID
}

func (r *RedisStore) Get(ctx context.Context, callID string) (CallSession, bool, error) {
	raw, err := r.client.Get(ctx, key(callID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CallSession{}, false, nil
	}
	if err != nil {
		return CallSession{}, false, fmt.Errorf("failed to get call session: %w", err)
	}

	var s CallSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return CallSession{}, false, fmt.Errorf("failed to decode call session: %w", err)
	}
	return s, true, nil
}

func (r *RedisStore) GetOrCreate(ctx context.Context, callID string) (CallSession, error) {
	if callID == "" {
		return CallSession{}, ErrEmptyCallID
	}
	fresh := newSession(callID)
	raw, err := json.Marshal(fresh)
	if err != nil {
		return CallSession{}, fmt.Errorf("failed to encode call session: %w", err)
	}

	created, err := r.client.SetNX(ctx, key(callID), raw, r.ttl).Result()
	if err != nil {
		return CallSession{}, fmt.Errorf("failed to create call session: %w", err)
	}
	if created {
		return fresh, nil
	}

	s, ok, err := r.Get(ctx, callID)
	if err != nil {
		return CallSession{}, err
	}
	if !ok {
		// expired between SETNX and GET
		return fresh, r.Save(ctx, fresh)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, session CallSession) error {
	if session.CallConnectionID == "" {
		return ErrEmptyCallID
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode call session: %w", err)
	}
	if err := r.client.Set(ctx, key(session.CallConnectionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save call session: %w", err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, callID string) error {
	if err := r.client.Del(ctx, key(callID)).Err(); err != nil {
		return fmt.Errorf("failed to remove call session: %w", err)
	}
	return nil
}
