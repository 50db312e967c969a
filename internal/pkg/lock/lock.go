package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired is returned when another holder owns the key.
var ErrNotAcquired = errors.New("lock is held by another request")

// ReleaseFunc gives the lock back. It is safe to call after the TTL expired.
type ReleaseFunc func(ctx context.Context) error

type Locker interface {
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}

// releaseScript deletes the key only while it still holds our token, so a
// request that outlived its TTL cannot free a lock taken by someone else.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

type RedisLocker struct {
	client   redis.Cmdable
	ttl      time.Duration
	prefix   string
	NewToken func() string
}

func NewRedisLocker(client redis.Cmdable, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:   client,
		ttl:      ttl,
		prefix:   "lock:",
		NewToken: func() string { return uuid.NewString() },
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	fullKey := l.prefix + key
	token := l.NewToken()

	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", fullKey, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{fullKey}, token).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", fullKey, err)
		}
		return nil
	}, nil
}

// Noop grants every request; the storage unique constraint remains the guard.
type Noop struct{}

func (Noop) Acquire(context.Context, string) (ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}

// NewRedisClient connects and pings, mirroring the startup check done for
// PostgreSQL.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
