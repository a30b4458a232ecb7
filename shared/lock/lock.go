package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"cyclebook/infras/otel"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	otelScopeName       = "lock"
	otelLockKeyAttibute = "lock.key"
	keyPrefix           = "lock:cycle"
)

var ErrNotAcquired = errors.New("lock is held by another request")

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker serialises booking creation per (place, cycle).
type Locker interface {
	Acquire(ctx context.Context, place, cycle string, ttl time.Duration) (token string, err error)
	Release(ctx context.Context, place, cycle, token string) error
}

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisLocker(client *redis.Client, ot otel.Otel) Locker {
	return &redisLocker{client: client, otel: ot}
}

func Key(place, cycle string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, place, cycle)
}

// Acquire returns ErrNotAcquired when another holder owns the lock.
func (l *redisLocker) Acquire(ctx context.Context, place, cycle string, ttl time.Duration) (token string, err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".Acquire")
	defer scope.End()

	key := Key(place, cycle)
	scope.SetAttribute(otelLockKeyAttibute, key)

	token = uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !ok {
		return "", ErrNotAcquired
	}

	return token, nil
}

func (l *redisLocker) Release(ctx context.Context, place, cycle, token string) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := Key(place, cycle)
	scope.SetAttribute(otelLockKeyAttibute, key)

	if err = releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}

	return nil
}
