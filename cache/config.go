package cache

import (
	"fmt"
	"time"

	"github.com/bhargav59/cloudengineered-cache/observe"
)

// DefaultBackend is the backend name used when a namespace has no explicit
// routing.
const DefaultBackend = "default"

// DefaultTTL is the global fallback TTL for namespaces without a configured
// default.
const DefaultTTL = 300 * time.Second

// NamespaceConfig fixes the TTL default and backend routing for one
// namespace.
type NamespaceConfig struct {
	// TTL is the default time-to-live for entries in this namespace.
	// Zero falls back to the global default.
	TTL time.Duration

	// Backend names the backend entries in this namespace live on.
	// Empty routes to DefaultBackend.
	Backend string
}

// Config configures a Manager. It is constructed once at process start and
// handed to every component that needs cache access; there is no package
// level shared instance.
type Config struct {
	// Backends maps backend names to handles. A "default" entry is required.
	Backends map[string]Backend

	// Namespaces maps namespace names to their TTL and routing defaults.
	// Unlisted namespaces use DefaultBackend and the global default TTL.
	Namespaces map[string]NamespaceConfig

	// DefaultTTL overrides the global fallback TTL when positive.
	DefaultTTL time.Duration

	// Observer supplies tracing, metrics, and logging. Nil disables
	// telemetry.
	Observer observe.Observer
}

// Validate checks that the backend registry is usable: a default backend
// exists, no handle is nil, and every namespace routes to a registered
// backend. Unknown names fail here rather than at call time.
func (c Config) Validate() error {
	def, ok := c.Backends[DefaultBackend]
	if !ok {
		return ErrNoDefaultBackend
	}
	if def == nil {
		return fmt.Errorf("%w: %q", ErrNilBackend, DefaultBackend)
	}

	for name, be := range c.Backends {
		if be == nil {
			return fmt.Errorf("%w: %q", ErrNilBackend, name)
		}
	}

	for ns, nc := range c.Namespaces {
		if nc.Backend == "" {
			continue
		}
		if _, ok := c.Backends[nc.Backend]; !ok {
			return fmt.Errorf("%w: namespace %q routes to %q", ErrUnknownBackend, ns, nc.Backend)
		}
	}

	return nil
}
