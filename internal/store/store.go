// Package store holds the canonical in-memory collections backing every
// admin resource screen. One Collection owns one entity type for the
// lifetime of the process; insertion order is preserved.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("entity not found")

// Entity is implemented by every model kept in a Collection.
type Entity interface {
	EntityID() uuid.UUID
	AssignID(uuid.UUID)
}

type Collection[T Entity] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{}
}

// List returns the collection in insertion order. The returned slice is a
// copy; callers may filter or reorder it freely.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id uuid.UUID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.EntityID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Find returns the first entity matching the predicate, or false.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns a fresh identifier and appends the entity at the end of
// the collection.
func (c *Collection[T]) Create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	item.AssignID(uuid.New())
	c.items = append(c.items, item)
	return item
}

// Update applies a merge function to the entity with the given id and
// returns the updated entity. Fields the merge function does not touch keep
// their previous values; identity is never reassigned.
func (c *Collection[T]) Update(id uuid.UUID, merge func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.EntityID() == id {
			merge(item)
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Remove deletes the entity with the given id. Removing an id that is
// already gone reports ErrNotFound and leaves the collection unchanged, so
// a repeated remove ends in the same state as a single one.
func (c *Collection[T]) Remove(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
