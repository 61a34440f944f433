package genstore

import "github.com/rs/zerolog"

// World bundles a key manager with a component table so callers get
// lifecycle plus storage through one handle. Destroying a key cascades into
// the table, stripping every component stored for it.
type World[K any] struct {
	manager *Manager[K]
	table   *Table[K]
	logger  zerolog.Logger
}

// WorldOption configures a world during construction.
type WorldOption[K any] func(*World[K])

// WithManager overrides the default key manager.
func WithManager[K any](m *Manager[K]) WorldOption[K] {
	return func(w *World[K]) {
		if m != nil {
			w.manager = m
		}
	}
}

// WithTable overrides the default component table.
func WithTable[K any](t *Table[K]) WorldOption[K] {
	return func(w *World[K]) {
		if t != nil {
			w.table = t
		}
	}
}

// WithLogger attaches a structured logger for lifecycle events. The default
// logger discards everything.
func WithLogger[K any](logger zerolog.Logger) WorldOption[K] {
	return func(w *World[K]) {
		w.logger = logger
	}
}

// NewWorld constructs a world with a fresh manager and table.
func NewWorld[K any](opts ...WorldOption[K]) *World[K] {
	w := &World[K]{
		manager: NewManager[K](),
		table:   NewTable[K](),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Manager exposes the backing key manager.
func (w *World[K]) Manager() *Manager[K] {
	return w.manager
}

// Table exposes the backing component table.
func (w *World[K]) Table() *Table[K] {
	return w.table
}

// Create issues a new key.
func (w *World[K]) Create() (Key[K], error) {
	k, err := w.manager.Create()
	if err != nil {
		return 0, err
	}
	w.logger.Debug().
		Uint32("index", k.Index()).
		Uint32("version", k.Version()).
		Msg("key created")
	return k, nil
}

// Destroy releases k and removes every component stored for it. A stale key
// is a no-op returning false, and the table is left untouched.
func (w *World[K]) Destroy(k Key[K]) bool {
	if !w.manager.Destroy(k) {
		return false
	}
	removed := w.table.RemoveAll(k)
	w.logger.Debug().
		Uint32("index", k.Index()).
		Uint32("version", k.Version()).
		Int("components_removed", removed).
		Msg("key destroyed")
	return true
}

// IsAlive reports whether k is still live.
func (w *World[K]) IsAlive(k Key[K]) bool {
	return w.manager.IsAlive(k)
}

// Len returns the number of live keys.
func (w *World[K]) Len() int {
	return w.manager.Len()
}

// Reset clears the manager and the table together, invalidating every
// outstanding key.
func (w *World[K]) Reset() {
	w.manager.Reset()
	w.table.Reset()
	w.logger.Debug().Msg("world reset")
}

// ApplyCommands executes deferred commands in order, stopping at the first
// failure.
func (w *World[K]) ApplyCommands(commands []Command[K]) error {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := cmd.Apply(w); err != nil {
			return err
		}
	}
	return nil
}
