package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"namebot/internal/domain"
)

const redisKeyPrefix = "namebot:session:"

// Redis stores sessions as JSON values so several bot instances can share them.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedis creates a Redis store. A zero ttl keeps sessions until cleared.
func NewRedis(client redis.Cmdable, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, errors.New("session: redis client must not be nil")
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (r *Redis) Get(ctx context.Context, sessionID string) (domain.ConversationState, error) {
	raw, err := r.client.Get(ctx, redisKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ConversationState{Phase: domain.PhaseIdle}, nil
	}
	if err != nil {
		return domain.ConversationState{}, fmt.Errorf("session: redis get: %w", err)
	}
	var st domain.ConversationState
	if err := json.Unmarshal(raw, &st); err != nil {
		return domain.ConversationState{}, fmt.Errorf("session: decode state: %w", err)
	}
	return st, nil
}

func (r *Redis) Save(ctx context.Context, sessionID string, st domain.ConversationState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}
