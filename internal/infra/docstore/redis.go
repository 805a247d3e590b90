package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockTTL   = 10 * time.Second
	redisLockRetry = 50 * time.Millisecond
)

var ErrLockTimeout = errors.New("timed out waiting for the write lock")

// Deletes the lock only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Extends the lease only if this holder still owns it.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// RedisBackend stores each document as one string key under prefix.
type RedisBackend struct {
	client  *redis.Client
	prefix  string
	lockTTL time.Duration
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix, lockTTL: redisLockTTL}
}

// WithLockTTL sets how long the write lease lives between renewals.
func (r *RedisBackend) WithLockTTL(ttl time.Duration) *RedisBackend {
	r.lockTTL = ttl
	return r
}

func (r *RedisBackend) Name() string { return "redis" }

func (r *RedisBackend) key(name string) string {
	return r.prefix + name
}

func (r *RedisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentMissing
	}
	return data, err
}

func (r *RedisBackend) Write(ctx context.Context, name string, data []byte) error {
	return r.client.Set(ctx, r.key(name), data, 0).Err()
}

// InTx holds a SET NX lease for the duration of fn so writers in other processes wait.
// The lease is renewed every third of its TTL until fn returns.
func (r *RedisBackend) InTx(ctx context.Context, fn func(ctx context.Context, tx Backend) error) error {
	lockKey := r.key("lock")
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, r.lockTTL).Result()
		if err != nil {
			return err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(ErrLockTimeout, ctx.Err())
		case <-time.After(redisLockRetry):
		}
	}

	renewCtx, stopRenew := context.WithCancel(context.WithoutCancel(ctx))
	renewed := make(chan struct{})
	go func() {
		defer close(renewed)
		r.keepLease(renewCtx, lockKey, token)
	}()

	defer func() {
		stopRenew()
		<-renewed
		// Release with a fresh context so a cancelled request still frees the lease.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, r.client, []string{lockKey}, token).Err()
	}()

	return fn(ctx, r)
}

func (r *RedisBackend) keepLease(ctx context.Context, lockKey, token string) {
	ticker := time.NewTicker(r.lockTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			held, err := renewScript.Run(ctx, r.client, []string{lockKey}, token, r.lockTTL.Milliseconds()).Int()
			if err != nil || held == 0 {
				return
			}
		}
	}
}
