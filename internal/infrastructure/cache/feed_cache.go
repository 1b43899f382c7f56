package cache

import "sync"

// FeedCache holds the last list served for one view, loosely synced with the
// authoritative store: Replace on fresh load, Append on next-page load and
// Patch for optimistic single-item mutations that run ahead of the remote
// write. Patch hands back a rollback closure; callers invoke it when the
// remote write fails so the view reverts instead of drifting.
type FeedCache[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
	idOf  func(T) string
}

func NewFeedCache[T any](idOf func(T) string) *FeedCache[T] {
	return &FeedCache[T]{
		index: make(map[string]int),
		idOf:  idOf,
	}
}

// Replace swaps the whole list, as on a fresh load or pull-to-refresh.
func (c *FeedCache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
	c.reindex()
}

// Append adds the next page. Items already present keep their position and
// are refreshed in place, so a retried page does not duplicate entries.
func (c *FeedCache[T]) Append(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range items {
		if pos, exists := c.index[c.idOf(item)]; exists {
			c.items[pos] = item
			continue
		}
		c.index[c.idOf(item)] = len(c.items)
		c.items = append(c.items, item)
	}
}

// Patch mutates one item in place and returns a rollback closure restoring
// the previous value, plus whether the item was present.
func (c *FeedCache[T]) Patch(id string, mutate func(T) T) (rollback func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, exists := c.index[id]
	if !exists {
		return func() {}, false
	}

	previous := c.items[pos]
	c.items[pos] = mutate(previous)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if pos, exists := c.index[id]; exists {
			c.items[pos] = previous
		}
	}, true
}

// Remove drops one item by identifier.
func (c *FeedCache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, exists := c.index[id]
	if !exists {
		return
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	c.reindex()
}

// Get returns the cached item with the given identifier.
func (c *FeedCache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	pos, exists := c.index[id]
	if !exists {
		return zero, false
	}
	return c.items[pos], true
}

// Items returns a copy of the current list.
func (c *FeedCache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of cached items.
func (c *FeedCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *FeedCache[T]) reindex() {
	c.index = make(map[string]int, len(c.items))
	for pos, item := range c.items {
		c.index[c.idOf(item)] = pos
	}
}
