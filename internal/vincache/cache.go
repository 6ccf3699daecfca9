// Package vincache tracks random VINs that were already shown to users,
// so repeat lookups can be skipped while memory stays bounded.
package vincache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ShownVins is a bounded set of VINs already presented by the random-VIN
// flow. One instance is shared by every chat; the underlying LRU cache
// serializes access internally, so membership tests, inserts and clears
// never race each other. When the bound is exceeded the oldest entries
// are evicted first.
type ShownVins struct {
	entries *lru.Cache[string, struct{}]
}

// DefaultSize bounds the cache when no explicit size is configured.
const DefaultSize = 100

// New creates a cache holding at most size VINs. A non-positive size
// falls back to DefaultSize.
func New(size int) (*ShownVins, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &ShownVins{entries: entries}, nil
}

// Contains reports whether the VIN was already shown.
func (c *ShownVins) Contains(vin string) bool {
	return c.entries.Contains(vin)
}

// Add marks the VIN as shown, evicting the oldest entry if the cache
// is at capacity.
func (c *ShownVins) Add(vin string) {
	c.entries.Add(vin, struct{}{})
}

// Len returns the number of VINs currently tracked.
func (c *ShownVins) Len() int {
	return c.entries.Len()
}

// Clear empties the cache and returns how many VINs were dropped.
func (c *ShownVins) Clear() int {
	prior := c.entries.Len()
	c.entries.Purge()
	return prior
}
