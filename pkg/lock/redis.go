// Package lock provides a Redis-backed mutual exclusion guard for
// long-running bulk operations. Two concurrent seed runs would interleave
// at the store level, so the service takes a short-lived lock around them.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/traceright/dataset-service/pkg/logger"
)

// RedisLock guards a named operation with SET NX and a TTL so a crashed
// holder cannot wedge the lock forever.
type RedisLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisLock creates a lock for the given operation name.
func NewRedisLock(client *redis.Client, name string, ttl time.Duration) *RedisLock {
	return &RedisLock{
		client: client,
		key:    fmt.Sprintf("lock:%s", name),
		ttl:    ttl,
	}
}

// TryLock attempts to take the lock without blocking. On success it returns
// a release func and ok=true; when another holder owns the lock it returns
// ok=false with no error.
func (l *RedisLock) TryLock(ctx context.Context) (release func(), ok bool, err error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release = func() {
		// Delete only if we still hold it; a TTL expiry may have handed
		// the lock to someone else.
		const unlock = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		if err := l.client.Eval(context.Background(), unlock, []string{l.key}, token).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("key", l.key).Msg("Failed to release lock")
		}
	}
	return release, true, nil
}
