package genstore

// noIndex marks a sparse slot that has no dense position.
const noIndex = -1

// SparseSet stores one value per key with O(1) keyed lookup and densely
// packed values for cache-friendly iteration. Removal swaps the last dense
// entry into the vacated position, so dense order is not stable across
// removals; only "the value for key k, if present, is reachable in O(1)"
// holds.
//
// The set maintains three parallel structures: data (packed values),
// entities (the key owning each dense position), and a sparse index per key
// index. The invariant entities[sparse[k.Index()]] == k holds for every
// present key, and data and entities always have equal length.
type SparseSet[K, V any] struct {
	sparse   []int
	entities []Key[K]
	data     []V
}

// NewSparseSet constructs an empty set.
func NewSparseSet[K, V any]() *SparseSet[K, V] {
	return &SparseSet[K, V]{}
}

// NewSparseSetWithCapacity preallocates dense storage for the expected
// value count.
func NewSparseSetWithCapacity[K, V any](capacity int) *SparseSet[K, V] {
	return &SparseSet[K, V]{
		entities: make([]Key[K], 0, capacity),
		data:     make([]V, 0, capacity),
	}
}

// Insert stores value for k, overwriting in place when k's index is already
// present. The index slot is rebound to k, so inserting through a newer key
// displaces values left behind by a stale one. Amortized O(1); the sparse
// array grows as needed to cover k's index.
func (s *SparseSet[K, V]) Insert(k Key[K], value V) {
	index := int(k.Index())
	s.growSparse(index)

	if pos := s.sparse[index]; pos != noIndex {
		s.entities[pos] = k
		s.data[pos] = value
		return
	}

	s.sparse[index] = len(s.data)
	s.entities = append(s.entities, k)
	s.data = append(s.data, value)
}

// Get returns the value stored for k.
func (s *SparseSet[K, V]) Get(k Key[K]) (V, bool) {
	if pos := s.position(k); pos != noIndex {
		return s.data[pos], true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for k, valid until the next
// removal or reset.
func (s *SparseSet[K, V]) GetMut(k Key[K]) (*V, bool) {
	if pos := s.position(k); pos != noIndex {
		return &s.data[pos], true
	}
	return nil, false
}

// Contains reports whether a value is stored for k.
func (s *SparseSet[K, V]) Contains(k Key[K]) bool {
	return s.position(k) != noIndex
}

// Remove deletes and returns the value stored for k. The last dense entry is
// swapped into the vacated position and its sparse slot rewritten, keeping
// both dense arrays compact. Removing an absent or stale key is a no-op.
func (s *SparseSet[K, V]) Remove(k Key[K]) (V, bool) {
	var zero V
	pos := s.position(k)
	if pos == noIndex {
		return zero, false
	}

	last := len(s.data) - 1
	removed := s.data[pos]
	moved := s.entities[last]

	s.data[pos] = s.data[last]
	s.entities[pos] = moved
	s.sparse[moved.Index()] = pos
	// When pos == last the moved entity is k itself; clearing k's sparse
	// slot afterwards leaves the right final state either way.
	s.sparse[k.Index()] = noIndex

	s.data[last] = zero
	s.data = s.data[:last]
	s.entities = s.entities[:last]
	return removed, true
}

// Len returns the number of stored values.
func (s *SparseSet[K, V]) Len() int {
	return len(s.data)
}

// IsEmpty reports whether the set holds no values.
func (s *SparseSet[K, V]) IsEmpty() bool {
	return len(s.data) == 0
}

// Iterate visits every (key, value) pair in current dense order until fn
// returns false. A fresh call restarts from the beginning.
func (s *SparseSet[K, V]) Iterate(fn func(Key[K], V) bool) {
	for i, k := range s.entities {
		if !fn(k, s.data[i]) {
			return
		}
	}
}

// IterateMut visits every pair with a pointer to the stored value, allowing
// in-place mutation. The pointer is only valid for the duration of the call.
func (s *SparseSet[K, V]) IterateMut(fn func(Key[K], *V) bool) {
	for i, k := range s.entities {
		if !fn(k, &s.data[i]) {
			return
		}
	}
}

// Entities returns the packed key list in dense order. The slice is backing
// storage, not a copy; callers must not hold it across mutations.
func (s *SparseSet[K, V]) Entities() []Key[K] {
	return s.entities
}

// Values returns the packed value list in dense order. The slice is backing
// storage, not a copy; callers must not hold it across mutations.
func (s *SparseSet[K, V]) Values() []V {
	return s.data
}

// Reset clears dense and sparse state together, never partially.
func (s *SparseSet[K, V]) Reset() {
	clear(s.data)
	s.data = s.data[:0]
	s.entities = s.entities[:0]
	s.sparse = s.sparse[:0]
}

// position returns k's dense position, or noIndex when k is absent or stale.
func (s *SparseSet[K, V]) position(k Key[K]) int {
	index := int(k.Index())
	if index >= len(s.sparse) {
		return noIndex
	}
	pos := s.sparse[index]
	if pos == noIndex || s.entities[pos] != k {
		return noIndex
	}
	return pos
}

func (s *SparseSet[K, V]) growSparse(index int) {
	for len(s.sparse) <= index {
		s.sparse = append(s.sparse, noIndex)
	}
}
