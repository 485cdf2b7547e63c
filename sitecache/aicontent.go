package sitecache

import (
	"context"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// Key parts within the AI namespaces.
const (
	aiTemplatesPart  = "templates"
	aiModelsPart     = "models"
	aiGenerationPart = "generation"
)

// AICache caches AI content: the template and model lists (long TTL, they
// change rarely) and individual generation payloads by id. Key shapes:
//
//	ai_templates:templates
//	ai_templates:models
//	ai_generations:generation:<id>
type AICache struct {
	mgr *cache.Manager
}

// NewAICache creates an AICache on mgr.
func NewAICache(mgr *cache.Manager) *AICache {
	return &AICache{mgr: mgr}
}

// Templates returns the cached content-template list.
func (c *AICache) Templates(ctx context.Context) ([]Template, bool) {
	return cache.Lookup[[]Template](ctx, c.mgr, c.templatesKey())
}

// SetTemplates caches the content-template list.
func (c *AICache) SetTemplates(ctx context.Context, templates []Template) {
	cache.Store(ctx, c.mgr, c.templatesKey(), templates, 0)
}

// Models returns the cached AI-model list.
func (c *AICache) Models(ctx context.Context) ([]Model, bool) {
	return cache.Lookup[[]Model](ctx, c.mgr, c.modelsKey())
}

// SetModels caches the AI-model list.
func (c *AICache) SetModels(ctx context.Context, models []Model) {
	cache.Store(ctx, c.mgr, c.modelsKey(), models, 0)
}

// Generation returns the cached payload for one generation.
func (c *AICache) Generation(ctx context.Context, id int64) (Generation, bool) {
	return cache.Lookup[Generation](ctx, c.mgr, c.generationKey(id))
}

// SetGeneration caches the payload for one generation.
func (c *AICache) SetGeneration(ctx context.Context, gen Generation) {
	cache.Store(ctx, c.mgr, c.generationKey(gen.ID), gen, 0)
}

// InvalidateGeneration removes one generation's cached payload.
func (c *AICache) InvalidateGeneration(ctx context.Context, id int64) {
	c.mgr.Delete(ctx, c.generationKey(id))
}

// InvalidateTemplates clears the template and model lists, forcing the next
// read to recompute them.
func (c *AICache) InvalidateTemplates(ctx context.Context) {
	c.mgr.Delete(ctx, c.templatesKey())
	c.mgr.Delete(ctx, c.modelsKey())
}

func (c *AICache) templatesKey() cache.Key {
	return cache.NewKey(NamespaceTemplates, aiTemplatesPart)
}

func (c *AICache) modelsKey() cache.Key {
	return cache.NewKey(NamespaceTemplates, aiModelsPart)
}

func (c *AICache) generationKey(id int64) cache.Key {
	return cache.NewKey(NamespaceGenerations, aiGenerationPart, id)
}
