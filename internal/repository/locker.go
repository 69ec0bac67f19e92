package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errors.New("lock is held by another request")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	DBCache    *redis.Client
	TTL        time.Duration
	Attempts   int
	RetryDelay time.Duration
}

func NewRedisLocker(dbCache *redis.Client) *RedisLocker {
	return &RedisLocker{
		DBCache:    dbCache,
		TTL:        30 * time.Second,
		Attempts:   5,
		RetryDelay: 100 * time.Millisecond,
	}
}

// Acquire takes the lock stored at key. The returned release func only deletes
// the key while it still holds this caller's token.
func (locker *RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	token := uuid.NewString()

	for attempt := 0; attempt < locker.Attempts; attempt++ {
		ok, err := locker.DBCache.SetNX(ctx, key, token, locker.TTL).Result()
		if err != nil {
			return nil, err
		}

		if ok {
			release := func(ctx context.Context) error {
				return releaseScript.Run(ctx, locker.DBCache, []string{key}, token).Err()
			}
			return release, nil
		}

		if attempt == locker.Attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(locker.RetryDelay):
		}
	}

	return nil, ErrLockNotAcquired
}
