package health

import (
	"context"
	"fmt"

	"github.com/bhargav59/cloudengineered-cache/cache"
)

// PingChecker reports reachability of a single backend that supports Ping.
type PingChecker struct {
	name   string
	pinger cache.Pinger
}

// NewPingChecker creates a PingChecker for the named backend.
func NewPingChecker(name string, pinger cache.Pinger) *PingChecker {
	return &PingChecker{name: name, pinger: pinger}
}

// Name returns the name of this checker.
func (c *PingChecker) Name() string {
	return "backend:" + c.name
}

// Check pings the backend.
func (c *PingChecker) Check(ctx context.Context) Result {
	if err := c.pinger.Ping(ctx); err != nil {
		return Unhealthy(fmt.Sprintf("backend %q unreachable", c.name), err)
	}
	return Healthy(fmt.Sprintf("backend %q reachable", c.name))
}

// BackendsChecker pings every pingable backend behind a manager. Backends
// without Ping support are not reported.
type BackendsChecker struct {
	mgr *cache.Manager
}

// NewBackendsChecker creates a BackendsChecker over mgr.
func NewBackendsChecker(mgr *cache.Manager) *BackendsChecker {
	return &BackendsChecker{mgr: mgr}
}

// Name returns the name of this checker.
func (c *BackendsChecker) Name() string {
	return "backends"
}

// Check pings all backends and reports the failures by name.
func (c *BackendsChecker) Check(ctx context.Context) Result {
	results := c.mgr.PingBackends(ctx)

	details := make(map[string]any, len(results))
	failed := 0
	for name, err := range results {
		if err != nil {
			details[name] = err.Error()
			failed++
		} else {
			details[name] = "ok"
		}
	}

	switch {
	case len(results) == 0:
		return Healthy("no pingable backends configured")
	case failed == 0:
		return Healthy("all backends reachable").WithDetails(details)
	case failed < len(results):
		return Degraded(fmt.Sprintf("%d of %d backends unreachable", failed, len(results))).WithDetails(details)
	default:
		return Unhealthy("all backends unreachable", ErrCheckFailed).WithDetails(details)
	}
}
