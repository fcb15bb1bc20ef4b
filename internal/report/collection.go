package report

import "slices"

// Collection is an ordered, position-addressed list of report entries. All
// mutation goes through Append, RemoveAt, ReplaceAll, and Clear; entries are
// never edited in place (remove and re-add is the only update path).
// Positions always refer to the current order at the moment of the call.
type Collection[T any] struct {
	items []T
	cmp   func(a, b T) int // non-nil keeps the collection sorted after every mutation that adds entries
}

// NewCollection creates an insertion-ordered collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// NewSortedCollection creates a collection that re-sorts by cmp after every
// Append and ReplaceAll. The sort is stable, so equal entries keep their
// insertion order.
func NewSortedCollection[T any](cmp func(a, b T) int) *Collection[T] {
	return &Collection[T]{cmp: cmp}
}

// Append inserts item at the end, then re-sorts when an ordering rule is set.
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
	c.resort()
}

// RemoveAt deletes the entry at position i, shifting subsequent positions
// down by one. Out-of-range positions are a no-op.
func (c *Collection[T]) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// ReplaceAll discards the current contents and loads items in order. Used
// for bulk loads (sample import, draft files).
func (c *Collection[T]) ReplaceAll(items []T) {
	c.items = slices.Clone(items)
	c.resort()
}

// Clear empties the collection.
func (c *Collection[T]) Clear() {
	c.items = nil
}

// Items returns a copy of the current contents in order.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Len returns the number of entries.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

func (c *Collection[T]) resort() {
	if c.cmp != nil {
		slices.SortStableFunc(c.items, c.cmp)
	}
}
