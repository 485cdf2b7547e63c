package sitecache

import (
	"context"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// probePart is the single throwaway key the health check round-trips
// through. Full key: health:cache_health_check.
const probePart = "cache_health_check"

// ProbeCache owns the health namespace: one short-lived probe entry written,
// read back, and deleted by the cache health check. Nothing else lives here.
type ProbeCache struct {
	mgr *cache.Manager
}

// NewProbeCache creates a ProbeCache on mgr.
func NewProbeCache(mgr *cache.Manager) *ProbeCache {
	return &ProbeCache{mgr: mgr}
}

// Set writes the probe value.
func (c *ProbeCache) Set(ctx context.Context, value string) {
	c.mgr.Set(ctx, c.key(), []byte(value), 0)
}

// Get reads the probe value back.
func (c *ProbeCache) Get(ctx context.Context) (string, bool) {
	data, ok := c.mgr.Get(ctx, c.key())
	if !ok {
		return "", false
	}
	return string(data), true
}

// Delete removes the probe entry.
func (c *ProbeCache) Delete(ctx context.Context) {
	c.mgr.Delete(ctx, c.key())
}

func (c *ProbeCache) key() cache.Key {
	return cache.NewKey(NamespaceHealth, probePart)
}
