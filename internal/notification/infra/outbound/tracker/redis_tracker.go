package tracker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/davicafu/bizreg/internal/notification/domain"
)

// RedisTracker records processed businessIds with SET NX, so concurrent
// consumers agree on who saw an id first. Entries expire after the TTL;
// a redelivery later than that is treated as new, which only risks an
// extra email, never a lost one.
type RedisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// Verificación estática
var _ domain.ProcessedTracker = (*RedisTracker)(nil)

func NewRedisTracker(client *redis.Client, ttl time.Duration) *RedisTracker {
	return &RedisTracker{client: client, ttl: ttl}
}

func (t *RedisTracker) MarkProcessed(ctx context.Context, businessID string) (bool, error) {
	created, err := t.client.SetNX(ctx, processedKey(businessID), 1, t.ttl).Result()
	if err != nil {
		return false, err
	}
	return !created, nil
}

func processedKey(businessID string) string {
	return "notification:processed:" + businessID
}
