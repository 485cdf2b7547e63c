package sitecache

import (
	"context"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// Key parts within the tools namespace.
const (
	toolDetailPart     = "detail"
	toolFeaturedPart   = "featured"
	toolByCategoryPart = "by_category"
)

// ToolCache caches tool listings and details. Key shapes:
//
//	tools:detail:<slug>
//	tools:featured
//	tools:by_category:<category-slug>
type ToolCache struct {
	mgr *cache.Manager
}

// NewToolCache creates a ToolCache on mgr.
func NewToolCache(mgr *cache.Manager) *ToolCache {
	return &ToolCache{mgr: mgr}
}

// ByCategory returns the cached tool list for a category slug.
func (c *ToolCache) ByCategory(ctx context.Context, categorySlug string) ([]Tool, bool) {
	return cache.Lookup[[]Tool](ctx, c.mgr, c.byCategoryKey(categorySlug))
}

// SetByCategory caches the tool list for a category slug.
func (c *ToolCache) SetByCategory(ctx context.Context, categorySlug string, tools []Tool) {
	cache.Store(ctx, c.mgr, c.byCategoryKey(categorySlug), tools, 0)
}

// Featured returns the cached featured-tools list.
func (c *ToolCache) Featured(ctx context.Context) ([]Tool, bool) {
	return cache.Lookup[[]Tool](ctx, c.mgr, c.featuredKey())
}

// SetFeatured caches the featured-tools list.
func (c *ToolCache) SetFeatured(ctx context.Context, tools []Tool) {
	cache.Store(ctx, c.mgr, c.featuredKey(), tools, 0)
}

// Detail returns the cached detail for one tool.
func (c *ToolCache) Detail(ctx context.Context, slug string) (Tool, bool) {
	return cache.Lookup[Tool](ctx, c.mgr, c.detailKey(slug))
}

// SetDetail caches the detail for one tool.
func (c *ToolCache) SetDetail(ctx context.Context, tool Tool) {
	cache.Store(ctx, c.mgr, c.detailKey(tool.Slug), tool, 0)
}

// Invalidate removes everything a single tool's mutation can make stale: its
// detail entry, the featured list, and every per-category list. Category
// lists are cleared wholesale because the tool's category membership is not
// known here; clearing them all is cheaper than being wrong.
func (c *ToolCache) Invalidate(ctx context.Context, slug string) {
	c.mgr.Delete(ctx, c.detailKey(slug))
	c.mgr.Delete(ctx, c.featuredKey())
	c.mgr.InvalidatePattern(ctx, NamespaceTools, toolByCategoryPart)
}

// InvalidateCategoryLists removes every per-category tool list and the
// featured list. Fired when categories themselves change, since that can
// reshuffle any tool's grouping.
func (c *ToolCache) InvalidateCategoryLists(ctx context.Context) {
	c.mgr.InvalidatePattern(ctx, NamespaceTools, toolByCategoryPart)
	c.mgr.Delete(ctx, c.featuredKey())
}

func (c *ToolCache) detailKey(slug string) cache.Key {
	return cache.NewKey(NamespaceTools, toolDetailPart, slug)
}

func (c *ToolCache) featuredKey() cache.Key {
	return cache.NewKey(NamespaceTools, toolFeaturedPart)
}

func (c *ToolCache) byCategoryKey(categorySlug string) cache.Key {
	return cache.NewKey(NamespaceTools, toolByCategoryPart, categorySlug)
}
