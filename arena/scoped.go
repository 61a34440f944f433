package arena

import "github.com/rotisserie/eris"

// finalizer records a cleanup registered at allocation time, keyed to the
// allocation's slot.
type finalizer[T any] struct {
	index int
	fn    func(*T)
}

// Scoped is a fixed-capacity arena whose allocations are released in bulk by
// Clear. Alloc returns an epoch-checked Handle instead of a bare pointer:
// after a Clear, handles issued earlier report invalid rather than exposing
// recycled memory.
//
// Finalizers registered at allocation time run during Clear in insertion
// order, matching the allocation order. Callers that need reverse teardown
// must register a single finalizer that owns the ordering.
type Scoped[T any] struct {
	items []T
	fins  []finalizer[T]
	epoch uint32
}

// NewScoped constructs an arena that can hold capacity values per epoch.
func NewScoped[T any](capacity int) *Scoped[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Scoped[T]{items: make([]T, 0, capacity)}
}

// Handle addresses one allocation within a single epoch of a scoped arena.
// The zero Handle is invalid.
type Handle[T any] struct {
	arena *Scoped[T]
	index uint32
	epoch uint32
}

// Get returns the allocated value, or (nil, false) once the arena has been
// cleared since the handle was issued.
func (h Handle[T]) Get() (*T, bool) {
	if h.arena == nil || h.epoch != h.arena.epoch {
		return nil, false
	}
	return &h.arena.items[h.index], true
}

// Valid reports whether the handle still addresses live memory.
func (h Handle[T]) Valid() bool {
	return h.arena != nil && h.epoch == h.arena.epoch
}

// Alloc places value in the arena and returns a handle to it. A full arena
// fails with ErrArenaFull before writing anything.
func (a *Scoped[T]) Alloc(value T) (Handle[T], error) {
	return a.alloc(value, nil)
}

// AllocWithFinalizer places value in the arena and registers fn to run
// against it during the next Clear.
func (a *Scoped[T]) AllocWithFinalizer(value T, fn func(*T)) (Handle[T], error) {
	return a.alloc(value, fn)
}

func (a *Scoped[T]) alloc(value T, fn func(*T)) (Handle[T], error) {
	if len(a.items) == cap(a.items) {
		return Handle[T]{}, eris.Wrap(ErrArenaFull, "scoped alloc")
	}
	index := len(a.items)
	a.items = append(a.items, value)
	if fn != nil {
		a.fins = append(a.fins, finalizer[T]{index: index, fn: fn})
	}
	return Handle[T]{arena: a, index: uint32(index), epoch: a.epoch}, nil
}

// Clear runs every registered finalizer exactly once, in insertion order,
// then rewinds the cursor and advances the epoch so all previously issued
// handles report invalid.
func (a *Scoped[T]) Clear() {
	for _, fin := range a.fins {
		fin.fn(&a.items[fin.index])
	}
	a.fins = a.fins[:0]
	clear(a.items)
	a.items = a.items[:0]
	a.epoch++
}

// Len returns the number of allocations in the current epoch.
func (a *Scoped[T]) Len() int {
	return len(a.items)
}

// Cap returns the fixed per-epoch capacity.
func (a *Scoped[T]) Cap() int {
	return cap(a.items)
}

// Epoch returns the current epoch counter.
func (a *Scoped[T]) Epoch() uint32 {
	return a.epoch
}
