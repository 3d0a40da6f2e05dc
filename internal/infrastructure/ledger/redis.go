package ledger

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"recruitbot/internal/ports/output"
)

var _ output.Ledger = (*RedisLedger)(nil)

// RedisLedger keeps notified event IDs in a single Redis set.
type RedisLedger struct {
	client *redis.Client
	setKey string
}

func NewRedisLedger(client *redis.Client, setKey string) *RedisLedger {
	return &RedisLedger{client: client, setKey: setKey}
}

func (l *RedisLedger) HasNotified(ctx context.Context, eventID string) (bool, error) {
	ok, err := l.client.SIsMember(ctx, l.setKey, eventID).Result()
	if err != nil {
		return false, fmt.Errorf("sismember %s %s: %w", l.setKey, eventID, err)
	}
	return ok, nil
}

func (l *RedisLedger) MarkNotified(ctx context.Context, eventID string) error {
	if err := l.client.SAdd(ctx, l.setKey, eventID).Err(); err != nil {
		return fmt.Errorf("sadd %s %s: %w", l.setKey, eventID, err)
	}
	return nil
}

func (l *RedisLedger) Close() error {
	return l.client.Close()
}
