package service

import (
	"Clipstream/internal/pkg/redis"
	"context"
)

// Publisher pushes realtime payloads onto per-topic channels. Delivery is
// best-effort: the triggering write is never rolled back on publish
// failure, and clients reconcile through the notifications query.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

type redisPublisher struct{}

func NewRedisPublisher() Publisher {
	return redisPublisher{}
}

func (redisPublisher) Publish(ctx context.Context, channel string, payload interface{}) error {
	return redis.Publish(ctx, channel, payload)
}
