package inventory

import (
	"iter"
	"slices"
)

// Cloner is implemented by values that can produce an independent deep copy
// of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Collection is an ordered list of owned children. Items keep their
// insertion order and are never deduplicated. The zero value is an empty
// collection ready to use.
type Collection[T Cloner[T]] struct {
	items []T
}

// Add appends item and returns the collection for chaining
func (c *Collection[T]) Add(item T) *Collection[T] {
	c.items = append(c.items, item)
	return c
}

// Find returns the first item, in insertion order, for which match reports
// true. The boolean is false when nothing matches.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of items
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// All iterates over the items in insertion order
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return slices.All(c.items)
}

// Items returns a copy of the item slice. The elements themselves are the
// live owned values.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Clone returns a collection with a new backing slice in which every item is
// replaced by its own Clone.
func (c *Collection[T]) Clone() Collection[T] {
	if c.items == nil {
		return Collection[T]{}
	}
	items := make([]T, len(c.items))
	for i, item := range c.items {
		items[i] = item.Clone()
	}
	return Collection[T]{items: items}
}
