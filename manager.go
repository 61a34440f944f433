package genstore

import (
	"math"

	"github.com/rotisserie/eris"
)

// managerSlot tracks the current version of one index and whether a live key
// references it. The version advances on every destroy, so keys minted before
// the destroy fail the liveness check even after the index is recycled.
type managerSlot struct {
	version  uint32
	occupied bool
}

// Manager allocates and recycles keys for one key space. Indices released by
// Destroy are reused in LIFO order; stale keys are detected by version
// comparison at access time rather than by blocking reuse.
//
// A Manager assumes a single owner: it performs no internal locking. Callers
// sharing one across goroutines must serialize whole operations externally.
type Manager[K any] struct {
	slots []managerSlot
	free  []uint32
	limit uint32
	count int
}

type managerOptions struct {
	keyLimit uint32
	capacity int
}

// ManagerOption configures a Manager during construction.
type ManagerOption func(*managerOptions)

// WithKeyLimit caps how many slot indices the manager may ever mint. The
// default is the full 32-bit index space.
func WithKeyLimit(limit uint32) ManagerOption {
	return func(o *managerOptions) {
		o.keyLimit = limit
	}
}

// WithKeyCapacity preallocates slot storage for the expected key count.
func WithKeyCapacity(capacity int) ManagerOption {
	return func(o *managerOptions) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// NewManager constructs an empty manager.
func NewManager[K any](opts ...ManagerOption) *Manager[K] {
	o := managerOptions{keyLimit: math.MaxUint32}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[K]{
		slots: make([]managerSlot, 0, o.capacity),
		limit: o.keyLimit,
	}
}

// Create issues a new key, recycling a freed index when one exists. It fails
// with ErrKeySpaceExhausted once the index space is used up; it never wraps
// the index or version fields silently.
func (m *Manager[K]) Create() (Key[K], error) {
	if n := len(m.free); n > 0 {
		index := m.free[n-1]
		m.free = m.free[:n-1]
		slot := &m.slots[index]
		if slot.occupied {
			// Free-list bookkeeping is broken; continuing would hand two
			// live keys the same slot.
			panic("genstore: free list references an occupied slot")
		}
		slot.occupied = true
		m.count++
		return NewKey[K](index, slot.version), nil
	}

	if uint64(len(m.slots)) >= uint64(m.limit) {
		return 0, eris.Wrap(ErrKeySpaceExhausted, "create key")
	}
	index := uint32(len(m.slots))
	m.slots = append(m.slots, managerSlot{occupied: true})
	m.count++
	return NewKey[K](index, 0), nil
}

// Destroy releases the key's index for reuse and advances its version.
// Destroying a stale or out-of-range key is a silent no-op returning false;
// deferred-drop patterns routinely destroy the same handle twice.
func (m *Manager[K]) Destroy(k Key[K]) bool {
	index := k.Index()
	if int(index) >= len(m.slots) {
		return false
	}
	slot := &m.slots[index]
	if !slot.occupied || slot.version != k.Version() {
		return false
	}
	slot.version++
	slot.occupied = false
	m.free = append(m.free, index)
	m.count--
	return true
}

// IsAlive reports whether the key still references its slot's live version.
func (m *Manager[K]) IsAlive(k Key[K]) bool {
	index := k.Index()
	if int(index) >= len(m.slots) {
		return false
	}
	slot := m.slots[index]
	return slot.occupied && slot.version == k.Version()
}

// Len returns the number of live keys.
func (m *Manager[K]) Len() int {
	return m.count
}

// IsEmpty reports whether no keys are live.
func (m *Manager[K]) IsEmpty() bool {
	return m.count == 0
}

// Keys collects every live key. Order is the slot order, which is
// unspecified from the caller's point of view.
func (m *Manager[K]) Keys() []Key[K] {
	keys := make([]Key[K], 0, m.count)
	for i, slot := range m.slots {
		if slot.occupied {
			keys = append(keys, NewKey[K](uint32(i), slot.version))
		}
	}
	return keys
}

// Iterate visits every live key until fn returns false.
func (m *Manager[K]) Iterate(fn func(Key[K]) bool) {
	for i, slot := range m.slots {
		if !slot.occupied {
			continue
		}
		if !fn(NewKey[K](uint32(i), slot.version)) {
			return
		}
	}
}

// Reset discards all slot and free-list state, invalidating every
// outstanding key.
func (m *Manager[K]) Reset() {
	m.slots = m.slots[:0]
	m.free = m.free[:0]
	m.count = 0
}
