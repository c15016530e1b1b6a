package ecs

import "fmt"

// SimpleCache is a fixed-capacity, append-only index from string keys to
// items of type T. World uses one to back System lookups by name for the
// debug-stats path (Config.Debug dumps); it is kept as a standalone
// generic type since nothing about it is ECS-specific.
type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

// newSimpleCache creates a cache that can hold at most cap items.
func newSimpleCache[T any](capacity int) *SimpleCache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: capacity,
	}
}

// GetIndex returns key's slot index, if registered.
func (c *SimpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

// GetItem returns a pointer to the item at index.
func (c *SimpleCache[T]) GetItem(index int) *T {
	return &c.items[index]
}

// Register adds item under key and returns its slot index. Returns an
// error if the cache is already at capacity.
func (c *SimpleCache[T]) Register(key string, item T) (int, error) {
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, fmt.Errorf("cache at maximum capacity (%d)", c.maxCapacity)
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

// Len returns the number of registered items.
func (c *SimpleCache[T]) Len() int {
	return len(c.items)
}
