// Package health reports on the caching layer: a set/get/delete round-trip
// through the probe cache, per-backend reachability pings, an aggregator
// combining checks, and thin HTTP handlers for the ops surface.
package health
