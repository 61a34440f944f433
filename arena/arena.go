// Package arena provides fixed-capacity allocators for high-churn,
// short-lived values: a typed bump arena, a scoped arena with epoch-checked
// handles and bulk finalization, a byte-oriented staging arena, and a paged
// process-lifetime arena with a once-initialized static registry.
//
// All arenas assume a single owner and perform no internal locking.
package arena

import "github.com/rotisserie/eris"

var (
	// ErrArenaFull indicates an allocation exceeded the arena's fixed
	// capacity. The arena's existing contents are unaffected.
	ErrArenaFull = eris.New("arena: capacity exhausted")
	// ErrBadAlign indicates an alignment that is not a power of two.
	ErrBadAlign = eris.New("arena: alignment must be a power of two")
	// ErrBadSize indicates a negative or zero allocation size.
	ErrBadSize = eris.New("arena: allocation size must be positive")
	// ErrArenaInitialized indicates a second initialization of a static
	// arena; the second request is discarded safely.
	ErrArenaInitialized = eris.New("arena: static arena already initialized")
	// ErrArenaUninitialized indicates use of a static arena before Init.
	ErrArenaUninitialized = eris.New("arena: static arena not initialized")
)
