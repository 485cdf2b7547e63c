// Package events carries entity-mutation notifications from the persistence
// layer to subscribers. The cache invalidation triggers subscribe here, so
// the caching layer never depends on a specific persistence framework.
package events

import (
	"context"
	"sync"
)

// Entity identifies the kind of record that changed.
type Entity string

const (
	EntityTool       Entity = "tool"
	EntityCategory   Entity = "category"
	EntityTemplate   Entity = "ai_template"
	EntityGeneration Entity = "ai_generation"
)

// Action identifies what happened to the record.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Mutation describes one entity change.
type Mutation struct {
	Entity Entity
	Action Action
	ID     int64
	Slug   string
}

// Handler receives mutations. Handlers must be idempotent: a mutation may
// describe a record that was never cached.
type Handler func(ctx context.Context, m Mutation)

// Bus is a synchronous in-process publish/subscribe channel.
//
// Contract:
// - Concurrency: safe for concurrent Subscribe and Publish.
// - Ordering: handlers for one Publish run sequentially in subscription
//   order; no ordering is guaranteed across concurrent publishes.
// - Errors: handlers have no error return; failures are theirs to absorb.
type Bus struct {
	mu   sync.RWMutex
	subs map[Entity][]Handler
	all  []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Entity][]Handler),
	}
}

// Subscribe registers a handler for mutations of one entity kind.
func (b *Bus) Subscribe(entity Entity, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.subs[entity] = append(b.subs[entity], h)
	b.mu.Unlock()
}

// SubscribeAll registers a handler for every mutation.
func (b *Bus) SubscribeAll(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.all = append(b.all, h)
	b.mu.Unlock()
}

// Publish delivers m to all matching handlers synchronously. Publishing a
// mutation nobody subscribed to is a no-op.
func (b *Bus) Publish(ctx context.Context, m Mutation) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[m.Entity])+len(b.all))
	handlers = append(handlers, b.subs[m.Entity]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, m)
	}
}
