package arena

import "github.com/rotisserie/eris"

// Bytes is a fixed-capacity bump allocator over one contiguous byte block,
// for staging regions where per-object heap allocation would dominate. An
// allocation that would overflow fails before any write; the block is never
// grown or partially written.
type Bytes struct {
	buf []byte
	off int
}

// NewBytes constructs an arena backed by a block of size bytes.
func NewBytes(size int) *Bytes {
	if size < 0 {
		size = 0
	}
	return &Bytes{buf: make([]byte, size)}
}

// Alloc reserves size bytes at the given alignment and returns the slice
// addressing them. align must be a power of two. The returned slice has its
// capacity clipped so appends cannot spill into later allocations.
func (a *Bytes) Alloc(size, align int) ([]byte, error) {
	if size <= 0 {
		return nil, eris.Wrap(ErrBadSize, "bytes alloc")
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, eris.Wrap(ErrBadAlign, "bytes alloc")
	}
	start := (a.off + align - 1) &^ (align - 1)
	if start+size > len(a.buf) {
		return nil, eris.Wrap(ErrArenaFull, "bytes alloc")
	}
	a.off = start + size
	return a.buf[start:a.off:a.off], nil
}

// Copy allocates byte-aligned space for src and copies it in.
func (a *Bytes) Copy(src []byte) ([]byte, error) {
	dst, err := a.Alloc(len(src), 1)
	if err != nil {
		return nil, err
	}
	copy(dst, src)
	return dst, nil
}

// Used returns how many bytes the cursor has consumed, padding included.
func (a *Bytes) Used() int {
	return a.off
}

// Remaining returns how many bytes are left before the block is full.
func (a *Bytes) Remaining() int {
	return len(a.buf) - a.off
}

// Size returns the fixed block size.
func (a *Bytes) Size() int {
	return len(a.buf)
}

// Reset rewinds the cursor to the start of the block. Slices handed out
// before the reset must not be used afterwards.
func (a *Bytes) Reset() {
	clear(a.buf[:a.off])
	a.off = 0
}
