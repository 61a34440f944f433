package genstore

import "github.com/rotisserie/eris"

var (
	// ErrKeySpaceExhausted indicates a manager ran out of slot indices.
	ErrKeySpaceExhausted = eris.New("genstore: key space exhausted")
	// ErrCapacityExhausted indicates a slot map reached its slot limit.
	ErrCapacityExhausted = eris.New("genstore: capacity exhausted")
)
