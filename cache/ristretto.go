package cache

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Ristretto is an in-process backend backed by ristretto. Eviction is
// delegated to the library. Ristretto cannot enumerate its keys, so this
// backend deliberately does not implement PatternDeleter; pattern
// invalidation against it degrades to a logged no-op.
type Ristretto struct {
	rc *ristretto.Cache[string, []byte]
}

// NewRistretto creates a ristretto-backed cache holding up to maxEntries
// values (each entry has a cost of 1).
func NewRistretto(maxEntries int64) (*Ristretto, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{rc: rc}, nil
}

// Get retrieves a value by key.
func (c *Ristretto) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.rc.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores a value under key with the given TTL. Wait makes the write
// visible to an immediately following Get.
func (c *Ristretto) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.rc.SetWithTTL(key, bytes.Clone(value), 1, ttl)
	c.rc.Wait()
	return nil
}

// Delete removes a value by key.
func (c *Ristretto) Delete(_ context.Context, key string) error {
	c.rc.Del(key)
	c.rc.Wait()
	return nil
}

// Close releases the underlying ristretto resources.
func (c *Ristretto) Close() {
	c.rc.Close()
}

// Ensure Ristretto implements Backend
var _ Backend = (*Ristretto)(nil)
