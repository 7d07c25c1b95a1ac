// Package collection implements Collection, an ordered in-memory sequence of
// records that saves and loads itself as a whole to a named blob.
package collection

import (
	"slices"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// Collection holds records of one type in insertion order. Duplicates are
// permitted. The in-memory sequence and the durable copy are synchronized
// only by Save and Load.
type Collection[T types.Record[T]] struct {
	items []T
}

// New returns an empty collection.
func New[T types.Record[T]]() *Collection[T] {
	return &Collection[T]{}
}

// Add appends item to the end of the sequence.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Remove deletes the first element equal to item and reports whether one was
// found. A miss leaves the sequence unchanged.
func (c *Collection[T]) Remove(item T) bool {
	i := slices.IndexFunc(c.items, item.Equal)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at index i.
func (c *Collection[T]) RemoveAt(i int) {
	c.items = slices.Delete(c.items, i, i+1)
}

// All returns a snapshot of the items in insertion order.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the item at index i.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// Set replaces the item at index i.
func (c *Collection[T]) Set(i int, item T) {
	c.items[i] = item
}

// Index returns the index of the first item for which match is true, or -1.
func (c *Collection[T]) Index(match func(T) bool) int {
	return slices.IndexFunc(c.items, match)
}

// Find returns the first item for which match is true.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	i := c.Index(match)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i], true
}
