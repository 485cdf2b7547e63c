package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bhargav59/cloudengineered-cache/secret"
)

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	// Addr is the host:port of the Redis server. Supports ${ENV} and
	// secretref values when resolved via Resolve.
	Addr string

	// Password authenticates the connection. Empty means no auth.
	Password string

	// DB selects the Redis logical database.
	DB int
}

// Resolve expands environment references and secret refs in the string
// fields and returns the resolved config. Credentials never need to live in
// plain configuration files.
func (c RedisConfig) Resolve(ctx context.Context, r *secret.Resolver) (RedisConfig, error) {
	addr, err := r.ResolveValue(ctx, c.Addr)
	if err != nil {
		return RedisConfig{}, err
	}
	password, err := r.ResolveValue(ctx, c.Password)
	if err != nil {
		return RedisConfig{}, err
	}

	c.Addr = addr
	c.Password = password
	return c, nil
}

// Redis is a Redis-backed cache backend. It implements pattern deletion via
// SCAN, so it can serve namespaces that rely on coarse invalidation.
type Redis struct {
	rdb *redis.Client
}

// NewRedis dials a Redis server from cfg.
func NewRedis(cfg RedisConfig) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{rdb: rdb}
}

// NewRedisWithClient wraps an existing client. Useful in tests.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{rdb: client}
}

// Get retrieves a value by key. A redis.Nil reply is a miss, not an error.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a value under key with the given TTL. A non-positive TTL stores
// the entry without expiration.
func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes a value by key. Idempotent.
func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// DeletePattern removes every key containing pattern as a substring, walking
// the keyspace with SCAN so the server is never blocked by a KEYS call.
func (c *Redis) DeletePattern(ctx context.Context, pattern string) error {
	match := "*" + pattern + "*"

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks the Redis connection.
func (c *Redis) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (c *Redis) Close() error {
	return c.rdb.Close()
}

// Ensure Redis implements Backend, PatternDeleter, and Pinger
var (
	_ Backend        = (*Redis)(nil)
	_ PatternDeleter = (*Redis)(nil)
	_ Pinger         = (*Redis)(nil)
)
