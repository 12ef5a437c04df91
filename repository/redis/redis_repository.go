package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	AllowRequest(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository backed by client. A nil client
// turns every call into a no-op so the service can run without Redis.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// Get retrieves a value by key. A missing key yields an empty string and no error.
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", nil
	}
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// SetNX stores the value only when key is absent and reports whether it did.
func (r *redis) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	return r.client.SetNX(ctx, key, value, ttl).Result()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, goredis.Nil
	}
	return r.client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

// slidingWindowScript trims entries older than the window, then admits the
// request if fewer than ARGV[4] remain. Returns -1 when the limit is reached.
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowSec = tonumber(ARGV[3])
local limit = tonumber(ARGV[4])
local member = ARGV[5]

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)
local count = redis.call('ZCARD', key)
if count < limit then
  redis.call('ZADD', key, now, member)
  redis.call('EXPIRE', key, windowSec)
  return count + 1
end
return -1
`

// AllowRequest records one hit for key and reports whether it fits in the window.
func (r *redis) AllowRequest(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	now := time.Now()
	windowSec := int64(window.Seconds())
	if windowSec < 1 {
		windowSec = 1
	}
	nowMs := now.UnixMilli()
	windowStart := nowMs - windowSec*1000
	member := fmt.Sprintf("%d-%d", nowMs, now.UnixNano())

	res, err := r.client.Eval(ctx, slidingWindowScript, []string{key},
		nowMs, windowStart, windowSec, limit, member).Int()
	if err != nil {
		return false, err
	}
	return res >= 0, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
