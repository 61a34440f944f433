package genstore

import "sync"

// CommandBuffer accumulates deferred commands for later application through
// World.ApplyCommands.
type CommandBuffer[K any] struct {
	commands []Command[K]
}

// NewCommandBuffer creates an empty buffer.
func NewCommandBuffer[K any]() *CommandBuffer[K] {
	return &CommandBuffer[K]{}
}

// Len reports how many commands are queued.
func (b *CommandBuffer[K]) Len() int {
	return len(b.commands)
}

// Push appends a command to the buffer.
func (b *CommandBuffer[K]) Push(cmd Command[K]) {
	if cmd == nil {
		return
	}
	b.commands = append(b.commands, cmd)
}

// Drain returns queued commands and resets the buffer.
func (b *CommandBuffer[K]) Drain() []Command[K] {
	drained := b.commands
	b.commands = nil
	return drained
}

// Snapshot returns the current command count so callers can restore later.
func (b *CommandBuffer[K]) Snapshot() int {
	return len(b.commands)
}

// Restore truncates the command buffer back to the provided snapshot.
func (b *CommandBuffer[K]) Restore(snapshot int) {
	if snapshot < 0 {
		snapshot = 0
	}
	if snapshot >= len(b.commands) {
		return
	}
	b.commands = b.commands[:snapshot]
}

// CommandBufferPool reuses buffers to reduce allocations.
type CommandBufferPool[K any] struct {
	pool sync.Pool
}

// NewCommandBufferPool constructs a pool that returns fresh buffers.
func NewCommandBufferPool[K any]() *CommandBufferPool[K] {
	p := &CommandBufferPool[K]{}
	p.pool.New = func() any { return NewCommandBuffer[K]() }
	return p
}

// Get retrieves a buffer from the pool.
func (p *CommandBufferPool[K]) Get() *CommandBuffer[K] {
	return p.pool.Get().(*CommandBuffer[K])
}

// Put returns a buffer to the pool after clearing it.
func (p *CommandBufferPool[K]) Put(buf *CommandBuffer[K]) {
	if buf == nil {
		return
	}
	buf.Drain()
	p.pool.Put(buf)
}
