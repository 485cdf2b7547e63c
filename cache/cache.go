package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for cache configuration and operations.
var (
	ErrNilBackend       = errors.New("cache: backend is nil")
	ErrNoDefaultBackend = errors.New("cache: no default backend configured")
	ErrUnknownBackend   = errors.New("cache: unknown backend")
	ErrNilProducer      = errors.New("cache: producer is nil")
)

// Backend is the contract every cache store must satisfy.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods should honor cancellation/deadlines where applicable.
// - Errors: a miss is (nil, false, nil); errors are reserved for store
//   failures and are absorbed by the Manager, never surfaced to callers.
type Backend interface {
	// Get retrieves a value by key. The boolean indicates a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key with the given TTL. A non-positive TTL
	// stores the entry without automatic expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value. Idempotent - deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// PatternDeleter is an optional Backend capability: removal of every key
// containing a substring. Against a backend without it, InvalidatePattern is
// a logged no-op.
type PatternDeleter interface {
	// DeletePattern removes all keys containing pattern as a substring.
	DeletePattern(ctx context.Context, pattern string) error
}

// Pinger is an optional Backend capability used by health checks.
type Pinger interface {
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
