package sitecache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bhargav59/cloudengineered-cache/observe"
	"github.com/bhargav59/cloudengineered-cache/resilience"
)

// Source loads the hot data the warmer pre-populates. Implemented by the
// persistence layer; the warmer never talks to storage directly.
type Source interface {
	// FeaturedTools returns the top featured tools, most prominent first.
	FeaturedTools(ctx context.Context, limit int) ([]Tool, error)

	// FeaturedCategories returns the categories worth pre-warming.
	FeaturedCategories(ctx context.Context) ([]Category, error)

	// ToolsByCategory returns the first published tools of one category.
	ToolsByCategory(ctx context.Context, categorySlug string, limit int) ([]Tool, error)

	// ActiveTemplates returns all active content templates.
	ActiveTemplates(ctx context.Context) ([]Template, error)

	// ActiveModels returns all active AI models.
	ActiveModels(ctx context.Context) ([]Model, error)
}

// WarmerConfig tunes the warming pass.
type WarmerConfig struct {
	// FeaturedLimit is how many featured tools to warm. Default: 10
	FeaturedLimit int

	// CategoryLimit is how many tools to warm per category. Default: 20
	CategoryLimit int

	// CategoryConcurrency bounds parallel category loads. Default: 4
	CategoryConcurrency int

	// StepTimeout bounds each warming step. Default: 10 seconds
	StepTimeout time.Duration
}

// WarmSummary reports what one warming pass accomplished. Steps that failed
// are recorded, not raised.
type WarmSummary struct {
	FeaturedTools int
	CategoryLists int
	Templates     int
	Models        int
	Failures      []string
}

// Total returns the number of items warmed across all steps.
func (s WarmSummary) Total() int {
	return s.FeaturedTools + s.CategoryLists + s.Templates + s.Models
}

// Warmer pre-populates the hottest namespaces: the featured-tools list,
// per-category tool lists, and the active template and model lists. Invoked
// on a schedule or on demand.
type Warmer struct {
	source Source
	tools  *ToolCache
	ai     *AICache
	cfg    WarmerConfig
	log    observe.Logger
}

// NewWarmer creates a Warmer. Zero config fields take defaults.
func NewWarmer(source Source, tools *ToolCache, ai *AICache, cfg WarmerConfig, log observe.Logger) *Warmer {
	if cfg.FeaturedLimit <= 0 {
		cfg.FeaturedLimit = 10
	}
	if cfg.CategoryLimit <= 0 {
		cfg.CategoryLimit = 20
	}
	if cfg.CategoryConcurrency <= 0 {
		cfg.CategoryConcurrency = 4
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 10 * time.Second
	}

	return &Warmer{
		source: source,
		tools:  tools,
		ai:     ai,
		cfg:    cfg,
		log:    log,
	}
}

// Warm runs one warming pass. Each step is independently bounded and
// isolated: a failing step is recorded in the summary and the remaining
// steps still run. Warm never returns an error.
func (w *Warmer) Warm(ctx context.Context) WarmSummary {
	var summary WarmSummary

	w.warmFeatured(ctx, &summary)
	w.warmCategories(ctx, &summary)
	w.warmAIContent(ctx, &summary)

	w.log.Info(ctx, "cache warming pass finished",
		observe.F("items", summary.Total()),
		observe.F("failures", len(summary.Failures)),
	)
	return summary
}

func (w *Warmer) warmFeatured(ctx context.Context, summary *WarmSummary) {
	err := resilience.ExecuteWithTimeout(ctx, w.cfg.StepTimeout, func(ctx context.Context) error {
		tools, err := w.source.FeaturedTools(ctx, w.cfg.FeaturedLimit)
		if err != nil {
			return err
		}
		w.tools.SetFeatured(ctx, tools)
		summary.FeaturedTools = len(tools)
		return nil
	})
	if err != nil {
		w.fail(ctx, summary, "featured tools", err)
	}
}

func (w *Warmer) warmCategories(ctx context.Context, summary *WarmSummary) {
	var categories []Category
	err := resilience.ExecuteWithTimeout(ctx, w.cfg.StepTimeout, func(ctx context.Context) error {
		var err error
		categories, err = w.source.FeaturedCategories(ctx)
		return err
	})
	if err != nil {
		w.fail(ctx, summary, "featured categories", err)
		return
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(w.cfg.CategoryConcurrency)

	for _, cat := range categories {
		g.Go(func() error {
			loadErr := resilience.ExecuteWithTimeout(ctx, w.cfg.StepTimeout, func(ctx context.Context) error {
				tools, err := w.source.ToolsByCategory(ctx, cat.Slug, w.cfg.CategoryLimit)
				if err != nil {
					return err
				}
				w.tools.SetByCategory(ctx, cat.Slug, tools)
				return nil
			})

			mu.Lock()
			defer mu.Unlock()
			if loadErr != nil {
				w.fail(ctx, summary, "category "+cat.Slug, loadErr)
				return nil // one category failing must not stop the rest
			}
			summary.CategoryLists++
			return nil
		})
	}
	_ = g.Wait()
}

func (w *Warmer) warmAIContent(ctx context.Context, summary *WarmSummary) {
	err := resilience.ExecuteWithTimeout(ctx, w.cfg.StepTimeout, func(ctx context.Context) error {
		templates, err := w.source.ActiveTemplates(ctx)
		if err != nil {
			return err
		}
		w.ai.SetTemplates(ctx, templates)
		summary.Templates = len(templates)
		return nil
	})
	if err != nil {
		w.fail(ctx, summary, "active templates", err)
	}

	err = resilience.ExecuteWithTimeout(ctx, w.cfg.StepTimeout, func(ctx context.Context) error {
		models, err := w.source.ActiveModels(ctx)
		if err != nil {
			return err
		}
		w.ai.SetModels(ctx, models)
		summary.Models = len(models)
		return nil
	})
	if err != nil {
		w.fail(ctx, summary, "active models", err)
	}
}

func (w *Warmer) fail(ctx context.Context, summary *WarmSummary, step string, err error) {
	summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", step, err))
	w.log.Warn(ctx, "cache warming step failed",
		observe.F("step", step),
		observe.F("error", err.Error()),
	)
}
