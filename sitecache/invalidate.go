package sitecache

import (
	"context"

	"github.com/bhargav59/cloudengineered-cache/events"
	"github.com/bhargav59/cloudengineered-cache/observe"
)

// Invalidator translates entity mutations into cache invalidations. Every
// trigger is idempotent: firing on a record that was never cached is a safe
// no-op.
type Invalidator struct {
	tools *ToolCache
	ai    *AICache
	log   observe.Logger
}

// NewInvalidator creates an Invalidator over the given facades.
func NewInvalidator(tools *ToolCache, ai *AICache, log observe.Logger) *Invalidator {
	return &Invalidator{
		tools: tools,
		ai:    ai,
		log:   log,
	}
}

// Bind subscribes the invalidation triggers to bus.
func (iv *Invalidator) Bind(bus *events.Bus) {
	bus.Subscribe(events.EntityTool, iv.onTool)
	bus.Subscribe(events.EntityCategory, iv.onCategory)
	bus.Subscribe(events.EntityTemplate, iv.onTemplate)
	bus.Subscribe(events.EntityGeneration, iv.onGeneration)
}

// onTool clears everything a single tool's change can make stale.
func (iv *Invalidator) onTool(ctx context.Context, m events.Mutation) {
	iv.tools.Invalidate(ctx, m.Slug)
	iv.log.Debug(ctx, "invalidated tool caches",
		observe.F("slug", m.Slug),
		observe.F("action", string(m.Action)),
	)
}

// onCategory clears all per-category lists and the featured list; a category
// change can reshuffle any tool's visible grouping.
func (iv *Invalidator) onCategory(ctx context.Context, m events.Mutation) {
	iv.tools.InvalidateCategoryLists(ctx)
	iv.log.Debug(ctx, "invalidated category caches",
		observe.F("slug", m.Slug),
		observe.F("action", string(m.Action)),
	)
}

// onTemplate clears the cached template and model lists.
func (iv *Invalidator) onTemplate(ctx context.Context, m events.Mutation) {
	iv.ai.InvalidateTemplates(ctx)
	iv.log.Debug(ctx, "invalidated template caches",
		observe.F("template_id", m.ID),
		observe.F("action", string(m.Action)),
	)
}

// onGeneration clears one generation's cached payload. Creation cannot leave
// a stale entry behind, so only updates and deletes act.
func (iv *Invalidator) onGeneration(ctx context.Context, m events.Mutation) {
	if m.Action == events.ActionCreate {
		return
	}
	iv.ai.InvalidateGeneration(ctx, m.ID)
	iv.log.Debug(ctx, "invalidated generation cache",
		observe.F("generation_id", m.ID),
		observe.F("action", string(m.Action)),
	)
}
