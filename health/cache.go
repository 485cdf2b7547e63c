package health

import (
	"context"
	"fmt"
	"time"

	"github.com/bhargav59/cloudengineered-cache/sitecache"
)

// RoundTripChecker verifies the cache path end to end: it writes a probe
// value through the probe cache, reads it back, compares, and deletes it so
// no residue is left behind. The manager absorbs backend failures as misses,
// so an unreachable backend shows up here as a failed read.
type RoundTripChecker struct {
	probe *sitecache.ProbeCache
}

// NewRoundTripChecker creates a RoundTripChecker over probe.
func NewRoundTripChecker(probe *sitecache.ProbeCache) *RoundTripChecker {
	return &RoundTripChecker{probe: probe}
}

// Name returns the name of this checker.
func (c *RoundTripChecker) Name() string {
	return "cache"
}

// Check performs one set/get/delete round-trip. An unexpected panic inside
// the cache path is reported as a status of "error", never re-raised.
func (c *RoundTripChecker) Check(ctx context.Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Errored("cache health check panicked", fmt.Errorf("%v", r))
		}
	}()

	token := fmt.Sprintf("ok-%d", time.Now().UnixNano())

	c.probe.Set(ctx, token)
	got, ok := c.probe.Get(ctx)
	c.probe.Delete(ctx)

	if !ok {
		return Unhealthy("cache read returned no value", ErrCheckFailed)
	}
	if got != token {
		return Unhealthy(
			fmt.Sprintf("cache round-trip mismatch: wrote %q, read %q", token, got),
			ErrCheckFailed,
		)
	}

	return Healthy("cache round-trip succeeded")
}

// CheckCache is the convenience form of RoundTripChecker for callers that
// want a one-shot result.
func CheckCache(ctx context.Context, probe *sitecache.ProbeCache) Result {
	return NewRoundTripChecker(probe).Check(ctx)
}
