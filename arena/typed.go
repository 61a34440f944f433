package arena

import "github.com/rotisserie/eris"

// Typed is a fixed-capacity bump arena for values of one type. The backing
// slice is allocated once at construction and never reallocates, so pointers
// returned by Alloc stay valid until Reset.
type Typed[T any] struct {
	items []T
}

// NewTyped constructs an arena that can hold capacity values.
func NewTyped[T any](capacity int) *Typed[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Typed[T]{items: make([]T, 0, capacity)}
}

// Alloc places value in the arena and returns a stable pointer to it. Once
// the arena is full every further Alloc fails with ErrArenaFull, leaving
// earlier allocations untouched.
func (a *Typed[T]) Alloc(value T) (*T, error) {
	if len(a.items) == cap(a.items) {
		return nil, eris.Wrap(ErrArenaFull, "typed alloc")
	}
	a.items = append(a.items, value)
	return &a.items[len(a.items)-1], nil
}

// At returns a pointer to the i-th allocation in allocation order.
func (a *Typed[T]) At(i int) (*T, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return &a.items[i], true
}

// Iterate visits every allocation in allocation order until fn returns
// false.
func (a *Typed[T]) Iterate(fn func(*T) bool) {
	for i := range a.items {
		if !fn(&a.items[i]) {
			return
		}
	}
}

// Len returns the number of allocations.
func (a *Typed[T]) Len() int {
	return len(a.items)
}

// Cap returns the fixed capacity.
func (a *Typed[T]) Cap() int {
	return cap(a.items)
}

// Reset zeroes the contents and rewinds the cursor. Pointers handed out
// before the reset must not be used afterwards.
func (a *Typed[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}
