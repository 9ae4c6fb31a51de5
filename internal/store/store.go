// Package store holds the authoritative in-memory collections backing the
// dashboard. There is deliberately no database: every record lives for the
// process lifetime and every mutation is a whole-record replacement inside a
// single collection, keyed by id.
package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no record carries the requested id
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when inserting a record whose id is taken
	ErrDuplicate = errors.New("record already exists")
)

// Collection is an ordered, mutex-guarded set of records keyed by id.
// Records are stored and returned by value; callers must build new nested
// slices (batches, line items) instead of mutating returned ones in place.
type Collection[T any] struct {
	mu    sync.RWMutex
	keyOf func(T) string
	order []string
	items map[string]T
}

// NewCollection creates an empty collection using keyOf to derive record ids
func NewCollection[T any](keyOf func(T) string) *Collection[T] {
	return &Collection[T]{
		keyOf: keyOf,
		items: make(map[string]T),
	}
}

// Insert appends a record; fails if the id is already present
func (c *Collection[T]) Insert(v T) error {
	id := c.keyOf(v)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return ErrDuplicate
	}
	c.items[id] = v
	c.order = append(c.order, id)
	return nil
}

// Get returns the record with the given id
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Replace swaps the whole record under an existing id
func (c *Collection[T]) Replace(id string, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	c.items[id] = v
	return nil
}

// Update applies fn to the current record and stores the result atomically,
// returning the updated value.
func (c *Collection[T]) Update(id string, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	v = fn(v)
	c.items[id] = v
	return v, nil
}

// Delete removes the record with the given id
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a snapshot of all records in insertion order
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Filter returns the records matching pred, in insertion order
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the first record matching pred
func (c *Collection[T]) Find(pred func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
