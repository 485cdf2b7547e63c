package sitecache

import (
	"context"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// SearchCache caches search results keyed by the literal query string plus a
// digest of the filter set. Freshness matters more than compute savings
// here, so the namespace TTL is short. Key shape:
//
//	search_results:query:<query>            (no filters)
//	search_results:query:<query>:<digest>   (filters canonicalized and hashed)
type SearchCache struct {
	mgr *cache.Manager
}

// NewSearchCache creates a SearchCache on mgr.
func NewSearchCache(mgr *cache.Manager) *SearchCache {
	return &SearchCache{mgr: mgr}
}

// Results returns the cached results for a query and filter set.
func (c *SearchCache) Results(ctx context.Context, query string, filters map[string]any) (SearchResults, bool) {
	return cache.Lookup[SearchResults](ctx, c.mgr, c.key(query, filters))
}

// SetResults caches the results for a query and filter set.
func (c *SearchCache) SetResults(ctx context.Context, query string, filters map[string]any, results SearchResults) {
	cache.Store(ctx, c.mgr, c.key(query, filters), results, 0)
}

// Invalidate removes the cached results for one query and filter set.
func (c *SearchCache) Invalidate(ctx context.Context, query string, filters map[string]any) {
	c.mgr.Delete(ctx, c.key(query, filters))
}

func (c *SearchCache) key(query string, filters map[string]any) cache.Key {
	if len(filters) == 0 {
		return cache.NewKey(NamespaceSearch, "query", query)
	}
	return cache.NewKey(NamespaceSearch, "query", query, filters)
}
