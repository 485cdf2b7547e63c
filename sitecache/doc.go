// Package sitecache provides the domain-specific cache facades for the
// platform: tool listings, AI content, search results, and the health probe.
// Each facade fixes its namespace and key shapes; encoding, TTL defaults,
// and backend routing stay with the cache manager.
package sitecache
