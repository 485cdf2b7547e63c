package cache

import (
	"context"
	"time"

	"github.com/bhargav59/cloudengineered-cache/observe"
)

// Manager routes cache operations to named backends. It owns key encoding,
// per-namespace TTL defaults, and backend selection; callers never address a
// backend directly.
//
// Contract:
//   - Concurrency: safe for concurrent use; the Manager itself is stateless
//     beyond its configuration.
//   - Errors: backend failures are logged and degrade to a miss (reads) or a
//     no-op (writes). Only producer errors from GetOrSet reach the caller.
//   - GetOrSet has no single-flight protection: concurrent callers missing on
//     the same key may each run the producer. Redundant recomputation is
//     accepted; results are never incorrect.
type Manager struct {
	backends   map[string]Backend
	namespaces map[string]NamespaceConfig
	defaultTTL time.Duration
	inst       *observe.Instrumenter
	log        observe.Logger
}

// New constructs a Manager from cfg. The configuration is validated up
// front so that an unknown or nil backend fails fast.
func New(cfg Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	obs := cfg.Observer
	if obs == nil {
		obs = observe.NewNoopObserver()
	}
	inst, err := observe.InstrumenterFromObserver(obs)
	if err != nil {
		return nil, err
	}

	backends := make(map[string]Backend, len(cfg.Backends))
	for name, be := range cfg.Backends {
		backends[name] = be
	}
	namespaces := make(map[string]NamespaceConfig, len(cfg.Namespaces))
	for ns, nc := range cfg.Namespaces {
		namespaces[ns] = nc
	}

	defaultTTL := cfg.DefaultTTL
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Manager{
		backends:   backends,
		namespaces: namespaces,
		defaultTTL: defaultTTL,
		inst:       inst,
		log:        obs.Logger(),
	}, nil
}

// TTL returns the effective default TTL for a namespace.
func (m *Manager) TTL(namespace string) time.Duration {
	if nc, ok := m.namespaces[namespace]; ok && nc.TTL > 0 {
		return nc.TTL
	}
	return m.defaultTTL
}

// route resolves the backend a namespace lives on.
func (m *Manager) route(namespace string) (Backend, string) {
	name := DefaultBackend
	if nc, ok := m.namespaces[namespace]; ok && nc.Backend != "" {
		name = nc.Backend
	}
	return m.backends[name], name
}

// Get reads the entry identified by k. It returns (nil, false) on a miss and
// on any backend failure.
func (m *Manager) Get(ctx context.Context, k Key) ([]byte, bool) {
	be, name := m.route(k.Namespace)
	full := k.String()

	var val []byte
	var hit bool
	m.inst.Do(ctx, observe.OpMeta{Op: "get", Namespace: k.Namespace, Backend: name}, func(ctx context.Context) (bool, error) {
		v, ok, err := be.Get(ctx, full)
		if err != nil {
			return false, err
		}
		val, hit = v, ok
		return ok, nil
	})

	return val, hit
}

// Set stores val under k. A non-positive ttl uses the namespace default.
// Failures are logged and otherwise silent.
func (m *Manager) Set(ctx context.Context, k Key, val []byte, ttl time.Duration) {
	be, name := m.route(k.Namespace)
	full := k.String()
	if ttl <= 0 {
		ttl = m.TTL(k.Namespace)
	}

	m.inst.Do(ctx, observe.OpMeta{Op: "set", Namespace: k.Namespace, Backend: name}, func(ctx context.Context) (bool, error) {
		return false, be.Set(ctx, full, val, ttl)
	})
}

// Delete removes the entry identified by k. Best-effort: failures are logged,
// never raised.
func (m *Manager) Delete(ctx context.Context, k Key) {
	be, name := m.route(k.Namespace)
	full := k.String()

	m.inst.Do(ctx, observe.OpMeta{Op: "delete", Namespace: k.Namespace, Backend: name}, func(ctx context.Context) (bool, error) {
		return false, be.Delete(ctx, full)
	})
}

// InvalidatePattern removes every entry on the namespace's backend whose key
// contains pattern as a substring. The operation is capability-gated: against
// a backend that cannot delete by pattern it is a logged no-op. Coarse by
// design; callers use it when the exact key set is unknown.
func (m *Manager) InvalidatePattern(ctx context.Context, namespace, pattern string) {
	be, name := m.route(namespace)

	pd, ok := be.(PatternDeleter)
	if !ok {
		m.log.Warn(ctx, "cache backend does not support pattern deletion",
			observe.F("namespace", namespace),
			observe.F("backend", name),
			observe.F("pattern", pattern),
		)
		return
	}

	m.inst.Do(ctx, observe.OpMeta{Op: "invalidate_pattern", Namespace: namespace, Backend: name}, func(ctx context.Context) (bool, error) {
		return false, pd.DeletePattern(ctx, pattern)
	})
}

// GetOrSet reads k, and on a miss invokes producer synchronously, stores a
// non-nil result under the resolved TTL, and returns it. A producer error
// propagates to the caller unchanged; the cache layer cannot fabricate a
// value. Concurrent misses on the same key may each invoke producer.
func (m *Manager) GetOrSet(ctx context.Context, k Key, ttl time.Duration, producer func(context.Context) ([]byte, error)) ([]byte, error) {
	if producer == nil {
		return nil, ErrNilProducer
	}

	if val, ok := m.Get(ctx, k); ok {
		return val, nil
	}

	val, err := producer(ctx)
	if err != nil {
		return nil, err
	}

	if val != nil {
		m.Set(ctx, k, val, ttl)
	}
	return val, nil
}

// PingBackends pings every backend that supports it and returns failures by
// backend name. Backends without Ping are skipped.
func (m *Manager) PingBackends(ctx context.Context) map[string]error {
	results := make(map[string]error)
	for name, be := range m.backends {
		p, ok := be.(Pinger)
		if !ok {
			continue
		}
		results[name] = p.Ping(ctx)
	}
	return results
}

// BackendNames returns the names of all configured backends.
func (m *Manager) BackendNames() []string {
	names := make([]string, 0, len(m.backends))
	for name := range m.backends {
		names = append(names, name)
	}
	return names
}
