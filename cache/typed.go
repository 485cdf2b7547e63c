package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// jsonNull is the serialized form of a nil result; nil results are not
// cached.
var jsonNull = []byte("null")

// Lookup reads k and unmarshals the entry into T. Entries that fail to
// decode are treated as misses; a stale encoding never surfaces as an error.
func Lookup[T any](ctx context.Context, m *Manager, k Key) (T, bool) {
	var out T

	data, ok := m.Get(ctx, k)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// Store marshals v and writes it under k. A non-positive ttl uses the
// namespace default. Nil values are not stored.
func Store[T any](ctx context.Context, m *Manager, k Key, v T, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil || bytes.Equal(data, jsonNull) {
		return
	}
	m.Set(ctx, k, data, ttl)
}

// Fetch is the typed read-through path: return the cached T for k, or run
// fn, cache its non-nil result, and return it. fn errors propagate to the
// caller unchanged. Like Manager.GetOrSet, Fetch has no single-flight
// guarantee.
func Fetch[T any](ctx context.Context, m *Manager, k Key, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if v, ok := Lookup[T](ctx, m, k); ok {
		return v, nil
	}

	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	Store(ctx, m, k, v, ttl)
	return v, nil
}
