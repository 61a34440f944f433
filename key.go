// Package genstore provides generational entity/slot storage: versioned keys,
// slot maps and sparse sets with stale-handle detection, a type-erased
// component table, and arena allocators for high-churn staging data.
package genstore

import "fmt"

// Key identifies a logical object within one key space. It packs a slot index
// into the low 32 bits and a version counter into the high 32 bits, so a key
// obtained before its slot was recycled no longer matches the live slot.
//
// The type parameter K is a marker only; it never holds data. Declaring
// distinct markers gives logically distinct key spaces that cannot be mixed
// at compile time:
//
//	type nodeKind struct{}
//	type effectKind struct{}
//	type NodeKey = genstore.Key[nodeKind]
//	type EffectKey = genstore.Key[effectKind]
type Key[K any] uint64

// NewKey constructs a key from raw parts. Managers mint keys internally;
// callers normally only need this for decoding persisted or foreign indices.
func NewKey[K any](index, version uint32) Key[K] {
	return Key[K](uint64(version)<<32 | uint64(index))
}

// Index returns the slot index encoded in the key.
func (k Key[K]) Index() uint32 {
	return uint32(k)
}

// Version returns the generation counter encoded in the key.
func (k Key[K]) Version() uint32 {
	return uint32(k >> 32)
}

// Raw returns the packed representation. Equality, ordering, and map hashing
// all operate on this single integer.
func (k Key[K]) Raw() uint64 {
	return uint64(k)
}

// String renders the key for debugging purposes.
func (k Key[K]) String() string {
	return fmt.Sprintf("Key(%d:%d)", k.Index(), k.Version())
}
