// Package store holds the in-memory state of TripMate: one flat store per
// record kind, keyed by id, preserving insertion order.
//
// Stores never validate and never fail. Update and delete on an unknown id
// are silent no-ops reported only through a false return. Every successful
// mutation is published to subscribers after the store lock is released.
package store

import (
	"container/list"
	"sync"

	"github.com/google/uuid"
)

// collection is an insertion-ordered map. The index gives O(1) lookup,
// replacement and removal by id; the list keeps the order records were added.
type collection[T any] struct {
	mu    sync.RWMutex
	key   func(T) uuid.UUID
	index map[uuid.UUID]*list.Element
	order *list.List
}

func newCollection[T any](key func(T) uuid.UUID) *collection[T] {
	return &collection[T]{
		key:   key,
		index: make(map[uuid.UUID]*list.Element),
		order: list.New(),
	}
}

func (c *collection[T]) add(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index[c.key(v)] = c.order.PushBack(v)
}

// replace swaps the record with v's id in place. Reports false when absent.
func (c *collection[T]) replace(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[c.key(v)]
	if !ok {
		return false
	}
	el.Value = v
	return true
}

// remove deletes the record with id if match accepts it.
func (c *collection[T]) remove(id uuid.UUID, match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	el, ok := c.index[id]
	if !ok {
		return zero, false
	}
	v := el.Value.(T)
	if match != nil && !match(v) {
		return zero, false
	}
	c.order.Remove(el)
	delete(c.index, id)
	return v, true
}

// removeWhere deletes every record drop accepts and returns them in order.
func (c *collection[T]) removeWhere(drop func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []T
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if v := el.Value.(T); drop(v) {
			c.order.Remove(el)
			delete(c.index, c.key(v))
			out = append(out, v)
		}
		el = next
	}
	return out
}

func (c *collection[T]) get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	el, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return el.Value.(T), true
}

// all returns a snapshot in insertion order, filtered by keep when non-nil.
// The result is never nil.
func (c *collection[T]) all(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		v := el.Value.(T)
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}
