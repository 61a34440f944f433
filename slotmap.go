package genstore

import (
	"math"

	"github.com/rotisserie/eris"
)

// slot stores one value together with its version. Version parity encodes
// occupancy: even versions are occupied, odd versions vacant. While vacant,
// nextFree threads the slot into an implicit free list.
type slot[V any] struct {
	version  uint32
	nextFree uint32
	value    V
}

func (s *slot[V]) isOccupied() bool {
	return s.version%2 == 0
}

// SlotMap is a keyed container that mints its own generational keys on
// insert. Removal through a stale key is a no-op: it never panics and never
// touches the slot's current occupant.
//
// Like the other containers in this package it assumes a single owner and
// performs no internal locking.
type SlotMap[K, V any] struct {
	slots []slot[V]
	next  uint32
	count uint32
	limit uint32
}

type slotMapOptions struct {
	slotLimit uint32
	capacity  int
}

// SlotMapOption configures a SlotMap during construction.
type SlotMapOption func(*slotMapOptions)

// WithSlotLimit caps how many values the map may hold at once. The default
// is the full 32-bit index space.
func WithSlotLimit(limit uint32) SlotMapOption {
	return func(o *slotMapOptions) {
		o.slotLimit = limit
	}
}

// WithSlotCapacity preallocates slot storage.
func WithSlotCapacity(capacity int) SlotMapOption {
	return func(o *slotMapOptions) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// NewSlotMap constructs an empty slot map.
func NewSlotMap[K, V any](opts ...SlotMapOption) *SlotMap[K, V] {
	o := slotMapOptions{slotLimit: math.MaxUint32}
	for _, opt := range opts {
		opt(&o)
	}
	return &SlotMap[K, V]{
		slots: make([]slot[V], 0, o.capacity),
		limit: o.slotLimit,
	}
}

// Insert stores value and returns the key addressing it. It fails with
// ErrCapacityExhausted when the slot limit is reached; earlier entries are
// left untouched by a failed insert.
func (m *SlotMap[K, V]) Insert(value V) (Key[K], error) {
	if m.count >= m.limit {
		return 0, eris.Wrap(ErrCapacityExhausted, "slot map insert")
	}

	if int(m.next) < len(m.slots) {
		s := &m.slots[m.next]
		if s.isOccupied() {
			panic("genstore: slot map free list references an occupied slot")
		}
		index := m.next
		m.next = s.nextFree
		s.version++ // odd -> even
		s.value = value
		m.count++
		return NewKey[K](index, s.version), nil
	}

	index := uint32(len(m.slots))
	m.slots = append(m.slots, slot[V]{value: value})
	m.next = index + 1
	m.count++
	return NewKey[K](index, 0), nil
}

// Get returns the value addressed by k.
func (m *SlotMap[K, V]) Get(k Key[K]) (V, bool) {
	if s := m.lookup(k); s != nil {
		return s.value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value addressed by k, valid until the
// value is removed or the map is cleared.
func (m *SlotMap[K, V]) GetMut(k Key[K]) (*V, bool) {
	if s := m.lookup(k); s != nil {
		return &s.value, true
	}
	return nil, false
}

// Replace swaps in a new value and returns the previous one. The key stays
// valid; a stale key leaves the map untouched.
func (m *SlotMap[K, V]) Replace(k Key[K], value V) (V, bool) {
	if s := m.lookup(k); s != nil {
		prev := s.value
		s.value = value
		return prev, true
	}
	var zero V
	return zero, false
}

// Remove deletes and returns the value addressed by k, recycling its slot.
func (m *SlotMap[K, V]) Remove(k Key[K]) (V, bool) {
	var zero V
	s := m.lookup(k)
	if s == nil {
		return zero, false
	}
	removed := s.value
	s.value = zero
	s.version++ // even -> odd
	s.nextFree = m.next
	m.next = k.Index()
	m.count--
	return removed, true
}

// Contains reports whether k addresses a live value.
func (m *SlotMap[K, V]) Contains(k Key[K]) bool {
	return m.lookup(k) != nil
}

// Len returns the number of stored values.
func (m *SlotMap[K, V]) Len() int {
	return int(m.count)
}

// IsEmpty reports whether the map holds no values.
func (m *SlotMap[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear discards every slot, invalidating all outstanding keys.
func (m *SlotMap[K, V]) Clear() {
	m.slots = m.slots[:0]
	m.next = 0
	m.count = 0
}

// Iterate visits every live (key, value) pair in slot order until fn
// returns false.
func (m *SlotMap[K, V]) Iterate(fn func(Key[K], V) bool) {
	for i := range m.slots {
		s := &m.slots[i]
		if !s.isOccupied() {
			continue
		}
		if !fn(NewKey[K](uint32(i), s.version), s.value) {
			return
		}
	}
}

func (m *SlotMap[K, V]) lookup(k Key[K]) *slot[V] {
	index := k.Index()
	if int(index) >= len(m.slots) {
		return nil
	}
	s := &m.slots[index]
	if !s.isOccupied() || s.version != k.Version() {
		return nil
	}
	return s
}
