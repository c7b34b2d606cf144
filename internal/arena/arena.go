// Package arena provides the fixed-size byte buffer that backs a pool.
//
// An Arena is passive storage: it never grows, never shrinks, and has no
// knowledge of the queues placed inside it. It is either heap-backed or
// mapped read-write from a file so the raw bytes can be shared with or
// inspected by other processes. A mapped arena is NOT a persistence
// mechanism: queue bookkeeping lives in the owning process only.
package arena

import "fmt"

// Arena is a fixed-capacity byte buffer.
type Arena struct {
	data    []byte
	mapped  bool
	cleanup func() error
}

// New returns a heap-backed arena of exactly size bytes, zero-filled.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}
	return &Arena{data: make([]byte, size)}, nil
}

// Bytes returns the backing buffer. The slice aliases the arena; callers
// must not retain it across Close.
func (a *Arena) Bytes() []byte { return a.data }

// Cap returns the fixed capacity in bytes.
func (a *Arena) Cap() int { return len(a.data) }

// Mapped reports whether the arena is backed by a memory-mapped file.
func (a *Arena) Mapped() bool { return a.mapped }

// Close releases the mapping (if any). The arena must not be used afterwards.
func (a *Arena) Close() error {
	if a.cleanup == nil {
		a.data = nil
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	a.data = nil
	return err
}

// Zero clears n bytes starting at off.
func (a *Arena) Zero(off, n int) {
	region := a.data[off : off+n]
	for i := range region {
		region[i] = 0
	}
}

// Relocate moves n bytes from src to dst (memmove semantics) and zeroes the
// part of the source range not covered by the destination, so vacated space
// never leaks stale queue contents. A same-address move is a no-op.
func (a *Arena) Relocate(src, dst, n int) {
	if src == dst || n == 0 {
		return
	}
	copy(a.data[dst:dst+n], a.data[src:src+n])

	// Zero only the non-overlapping remainder of the source range. Zeroing
	// the whole range would corrupt the destination when the ranges overlap.
	zs, ze := src, src+n
	if dst < src {
		if dst+n > zs {
			zs = dst + n
		}
	} else {
		if dst < ze {
			ze = dst
		}
	}
	if zs < ze {
		a.Zero(zs, ze-zs)
	}
}
