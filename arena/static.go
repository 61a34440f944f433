package arena

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// immortalPageSize is the number of values per page. Pages are appended as
// needed up to the arena's capacity; each page's backing array is allocated
// at full page capacity so a value's address never changes once allocated.
const immortalPageSize = 1 << 12

// Immortal is a paged, process-lifetime typed arena: allocations are never
// individually freed and there is no clear. Capacity is fixed at
// construction, but page storage is committed lazily, so a large capacity
// costs nothing until used.
type Immortal[T any] struct {
	pages    [][]T
	capacity int
	count    int
}

// NewImmortal constructs an arena that can hold capacity values over the
// life of the process.
func NewImmortal[T any](capacity int) *Immortal[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Immortal[T]{capacity: capacity}
}

// Alloc places value in the arena and returns a stable pointer to it.
func (a *Immortal[T]) Alloc(value T) (*T, error) {
	if a.count >= a.capacity {
		return nil, eris.Wrap(ErrArenaFull, "immortal alloc")
	}

	last := len(a.pages) - 1
	if last < 0 || len(a.pages[last]) == cap(a.pages[last]) {
		pageCap := min(immortalPageSize, a.capacity-a.count)
		a.pages = append(a.pages, make([]T, 0, pageCap))
		last++
	}

	page := append(a.pages[last], value)
	a.pages[last] = page
	a.count++
	return &page[len(page)-1], nil
}

// Len returns the number of allocations.
func (a *Immortal[T]) Len() int {
	return a.count
}

// Cap returns the fixed capacity.
func (a *Immortal[T]) Cap() int {
	return a.capacity
}

// statics holds one process-lifetime arena per type, created by InitStatic.
// Like the arenas themselves, the registry assumes single-owner access.
var statics = make(map[reflect.Type]any)

// InitStatic creates the process-lifetime arena for T. It must run exactly
// once before the first StaticAlloc for that type: a second call fails with
// ErrArenaInitialized and the already-initialized arena is untouched.
func InitStatic[T any](capacity int) error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := statics[typ]; ok {
		return eris.Wrap(ErrArenaInitialized, typ.String())
	}
	statics[typ] = NewImmortal[T](capacity)
	return nil
}

// StaticAlloc places value in the process-lifetime arena for T. Calling it
// before InitStatic for that type fails with ErrArenaUninitialized.
func StaticAlloc[T any](value T) (*T, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	stored, ok := statics[typ]
	if !ok {
		return nil, eris.Wrap(ErrArenaUninitialized, typ.String())
	}
	return stored.(*Immortal[T]).Alloc(value)
}

// StaticLen reports how many values the process-lifetime arena for T holds,
// or zero when none was initialized.
func StaticLen[T any]() int {
	stored, ok := statics[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return 0
	}
	return stored.(*Immortal[T]).Len()
}
