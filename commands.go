package genstore

// Command represents a deferred mutation applied outside the caller's
// traversal, so storage is never reshaped under an active iteration.
type Command[K any] interface {
	Apply(world *World[K]) error
}

// NewCreateCommand enqueues a key creation. If target is non-nil it receives
// the allocated key when the command applies.
func NewCreateCommand[K any](target *Key[K]) Command[K] {
	return createCommand[K]{target: target}
}

// NewDestroyCommand enqueues a key destruction. Destroying a key that went
// stale while the command was queued is a silent no-op; deferred destroys
// routinely race each other that way.
func NewDestroyCommand[K any](k Key[K]) Command[K] {
	return destroyCommand[K]{key: k}
}

// NewPutCommand enqueues storing value for k in the world's table.
func NewPutCommand[T any, K any](k Key[K], value T) Command[K] {
	return putCommand[T, K]{key: k, value: value}
}

// NewRemoveCommand enqueues removing the T stored for k.
func NewRemoveCommand[T any, K any](k Key[K]) Command[K] {
	return removeCommand[T, K]{key: k}
}

type createCommand[K any] struct {
	target *Key[K]
}

func (c createCommand[K]) Apply(world *World[K]) error {
	k, err := world.Create()
	if err != nil {
		return err
	}
	if c.target != nil {
		*c.target = k
	}
	return nil
}

type destroyCommand[K any] struct {
	key Key[K]
}

func (c destroyCommand[K]) Apply(world *World[K]) error {
	world.Destroy(c.key)
	return nil
}

type putCommand[T any, K any] struct {
	key   Key[K]
	value T
}

func (c putCommand[T, K]) Apply(world *World[K]) error {
	// A key destroyed while the command sat in a buffer is absorbed, same
	// as any other stale-handle access.
	if !world.IsAlive(c.key) {
		return nil
	}
	Put(world.Table(), c.key, c.value)
	return nil
}

type removeCommand[T any, K any] struct {
	key Key[K]
}

func (c removeCommand[T, K]) Apply(world *World[K]) error {
	Remove[T](world.Table(), c.key)
	return nil
}
