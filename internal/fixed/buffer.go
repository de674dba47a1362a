// Package fixed provides a bounded sequence container.
//
// A Buffer allocates its storage once, at construction, and never grows past
// that capacity. Appending to a full buffer fails with errs.ErrOverflow.
package fixed

import "github.com/arloliu/dollcode/errs"

// Buffer is an append-only sequence with a fixed maximum element count.
//
// The zero value has capacity 0 and rejects every Push.
type Buffer[T any] struct {
	items []T
}

// New creates an empty Buffer able to hold up to capacity elements.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}

	return Buffer[T]{items: make([]T, 0, capacity)}
}

// Push appends v, failing with errs.ErrOverflow when the buffer is full.
func (b *Buffer[T]) Push(v T) error {
	if len(b.items) == cap(b.items) {
		return errs.ErrOverflow
	}
	b.items = append(b.items, v)

	return nil
}

// Len returns the number of stored elements.
func (b Buffer[T]) Len() int {
	return len(b.items)
}

// IsEmpty reports whether no element is stored.
func (b Buffer[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// Items returns a view of the valid prefix.
// The view is capacity-clipped, so appending to it never writes into the buffer.
func (b Buffer[T]) Items() []T {
	return b.items[:len(b.items):len(b.items)]
}

// Reverse reverses the stored elements in place.
func (b *Buffer[T]) Reverse() {
	for i, j := 0, len(b.items)-1; i < j; i, j = i+1, j-1 {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	}
}
