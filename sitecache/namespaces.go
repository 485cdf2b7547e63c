package sitecache

import (
	"time"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// Cache namespaces owned by this package.
const (
	NamespaceTools       = "tools"
	NamespaceTemplates   = "ai_templates"
	NamespaceGenerations = "ai_generations"
	NamespaceSearch      = "search_results"
	NamespaceHealth      = "health"
)

// Namespace TTL defaults. Template and model lists change rarely; search
// results go stale quickly.
const (
	ToolsTTL       = 300 * time.Second
	TemplatesTTL   = 7200 * time.Second
	GenerationsTTL = 3600 * time.Second
	SearchTTL      = 600 * time.Second
	HealthTTL      = 60 * time.Second
)

// Namespaces returns the namespace configuration for all facades in this
// package, routed to the default backend. Callers may reroute individual
// namespaces before handing the map to cache.Config.
func Namespaces() map[string]cache.NamespaceConfig {
	return map[string]cache.NamespaceConfig{
		NamespaceTools:       {TTL: ToolsTTL},
		NamespaceTemplates:   {TTL: TemplatesTTL},
		NamespaceGenerations: {TTL: GenerationsTTL},
		NamespaceSearch:      {TTL: SearchTTL},
		NamespaceHealth:      {TTL: HealthTTL},
	}
}
