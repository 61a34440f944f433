package genstore

import "reflect"

// column is the type-erased face of a per-type SparseSet, wide enough for
// the table's cross-type bookkeeping.
type column[K any] interface {
	removeKey(Key[K]) bool
	containsKey(Key[K]) bool
	reset()
	length() int
}

func (s *SparseSet[K, V]) removeKey(k Key[K]) bool {
	_, ok := s.Remove(k)
	return ok
}

func (s *SparseSet[K, V]) containsKey(k Key[K]) bool {
	return s.Contains(k)
}

func (s *SparseSet[K, V]) reset() {
	s.Reset()
}

func (s *SparseSet[K, V]) length() int {
	return s.Len()
}

// Table maps runtime type identity to an independent per-type SparseSet,
// giving heterogeneous component storage keyed by one key space. Columns are
// created lazily on first Put, so no type pre-declaration is required; a key
// may hold zero or one value per type.
//
// Go methods cannot introduce type parameters, so the typed operations are
// the package-level functions Put, Get, GetMut, Has, and Remove.
type Table[K any] struct {
	columns map[reflect.Type]column[K]
	typed   map[reflect.Type]any
}

// NewTable constructs an empty table.
func NewTable[K any]() *Table[K] {
	return &Table[K]{
		columns: make(map[reflect.Type]column[K]),
		typed:   make(map[reflect.Type]any),
	}
}

// RemoveAll strips every stored value for k across all columns, returning
// how many values were removed.
func (t *Table[K]) RemoveAll(k Key[K]) int {
	removed := 0
	for _, col := range t.columns {
		if col.removeKey(k) {
			removed++
		}
	}
	return removed
}

// ComponentCount returns how many columns currently store a value for k.
func (t *Table[K]) ComponentCount(k Key[K]) int {
	n := 0
	for _, col := range t.columns {
		if col.containsKey(k) {
			n++
		}
	}
	return n
}

// Types lists the component types that have been stored at least once.
func (t *Table[K]) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(t.columns))
	for typ := range t.columns {
		types = append(types, typ)
	}
	return types
}

// Counts reports the number of stored values per component type name.
func (t *Table[K]) Counts() map[string]int {
	counts := make(map[string]int, len(t.columns))
	for typ, col := range t.columns {
		counts[typ.String()] = col.length()
	}
	return counts
}

// Len returns the total number of stored values across all columns.
func (t *Table[K]) Len() int {
	total := 0
	for _, col := range t.columns {
		total += col.length()
	}
	return total
}

// Reset clears every column. Column registrations survive so the next Put
// for a known type reuses its storage.
func (t *Table[K]) Reset() {
	for _, col := range t.columns {
		col.reset()
	}
}

// Put stores value for k in the column for T, creating the column on first
// use. Upsert semantics match SparseSet.Insert.
func Put[T any, K any](t *Table[K], k Key[K], value T) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	stored, ok := t.typed[typ]
	if !ok {
		set := NewSparseSet[K, T]()
		t.typed[typ] = set
		t.columns[typ] = set
		stored = set
	}
	stored.(*SparseSet[K, T]).Insert(k, value)
}

// Get returns the T stored for k. A type never stored for any key yields the
// zero value and false, not a panic.
func Get[T any, K any](t *Table[K], k Key[K]) (T, bool) {
	if set, ok := lookupColumn[T](t); ok {
		return set.Get(k)
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the T stored for k, valid until the column is
// next mutated.
func GetMut[T any, K any](t *Table[K], k Key[K]) (*T, bool) {
	if set, ok := lookupColumn[T](t); ok {
		return set.GetMut(k)
	}
	return nil, false
}

// Has reports whether a T is stored for k.
func Has[T any, K any](t *Table[K], k Key[K]) bool {
	if set, ok := lookupColumn[T](t); ok {
		return set.Contains(k)
	}
	return false
}

// Remove deletes and returns the T stored for k.
func Remove[T any, K any](t *Table[K], k Key[K]) (T, bool) {
	if set, ok := lookupColumn[T](t); ok {
		return set.Remove(k)
	}
	var zero T
	return zero, false
}

// ColumnOf exposes the dense column backing T, for callers that want packed
// iteration over one component type.
func ColumnOf[T any, K any](t *Table[K]) (*SparseSet[K, T], bool) {
	return lookupColumn[T](t)
}

func lookupColumn[T any, K any](t *Table[K]) (*SparseSet[K, T], bool) {
	stored, ok := t.typed[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return stored.(*SparseSet[K, T]), true
}
