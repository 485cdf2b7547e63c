// Package cache provides the application caching layer: deterministic key
// derivation, a multi-backend manager with per-namespace TTL and routing
// rules, and typed read-through helpers.
//
// All manager operations degrade to a cache miss or a silent no-op when a
// backend fails; only producer errors from GetOrSet reach the caller.
package cache
