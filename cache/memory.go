package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Memory is a locked-map in-memory backend. It supports pattern deletion,
// which makes it the reference backend in tests and the fallback when no
// external store is configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiration
}

// NewMemory creates a new in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*memoryEntry),
	}
}

// Get retrieves a value. Returns (nil, false, nil) on miss or expiry.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		// Expired - clean up lazily
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	return entry.value, true, nil
}

// Set stores a value with the given TTL. A non-positive TTL stores the entry
// without expiration.
func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := &memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return nil
}

// Delete removes a value. Idempotent - no error on miss.
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// DeletePattern removes every key containing pattern as a substring.
func (c *Memory) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, including any not yet lazily
// expired.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure Memory implements Backend and PatternDeleter
var (
	_ Backend        = (*Memory)(nil)
	_ PatternDeleter = (*Memory)(nil)
)
