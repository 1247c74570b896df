package core

import (
	"context"
	"sync"

	"github.com/NSBTW/courier/internal/contract"
)

// LookupCache fronts a fallible, possibly-expensive Lookup collaborator with
// an in-memory memoization table. Entries are created on the first successful
// resolution and are never evicted or updated.
//
// A found-but-empty value is a valid cached state distinct from "not found":
// map membership carries the found flag, so a stored nil slice is a hit.
// Unresolved keys are never stored; a later Get retries the collaborator.
type LookupCache struct {
	mu      sync.RWMutex // Protects entries
	lookup  contract.Lookup
	entries map[string][]byte
}

// NewLookupCache returns a cache backed by the given lookup collaborator.
func NewLookupCache(lookup contract.Lookup) *LookupCache {
	return &LookupCache{
		lookup:  lookup,
		entries: make(map[string][]byte),
	}
}

// Get returns the value for key and whether it was found.
//
// The backing lookup is invoked outside the lock, so concurrent misses on the
// same key may each hit the collaborator once. The first stored value wins;
// later duplicates are discarded so cached values stay idempotent.
func (c *LookupCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return value, true
	}

	value, found := c.lookup.TryRead(ctx, key)
	if !found {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prior, ok := c.entries[key]; ok {
		return prior, true
	}
	c.entries[key] = value
	return value, true
}

// Len returns the number of memoized entries.
func (c *LookupCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
