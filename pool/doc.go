// Package pool implements a fixed-capacity memory pool that hosts a bounded
// number of independently growable FIFO byte queues inside one contiguous
// arena, without ever calling a general-purpose heap allocator for queue
// storage.
//
// # Overview
//
// A Pool owns two pieces of state: the arena (a single fixed byte buffer)
// and a fixed-size slot table of queue descriptors. Creating a queue claims
// a slot and places one growth unit of capacity somewhere in the arena;
// enqueueing past the reserved capacity grows the queue by whole growth
// units, relocating it when the space ahead is taken; dequeueing shrinks it
// again one unit at a time. When placement fails, the pool compacts: all
// live regions are packed left in address order, eliminating fragmentation,
// and the search runs once more before the operation reports ErrNoSpace.
//
// # Handles
//
// Queues are addressed through generation-tagged handles, never through
// arena addresses: growth and compaction move a queue's bytes, but its
// Handle stays valid until DestroyQueue. Operations on a destroyed (or
// zero) handle fail with ErrBadHandle even if the slot has been reused.
//
// # Geometry
//
// The arena capacity, slot count, and growth unit are fixed at construction
// via Config. The defaults (2048-byte arena, 64 slots, 32-byte unit) let a
// full table of fresh queues fit exactly.
//
// # Errors
//
// All failures are reported as sentinel errors (ErrNoSpace, ErrNoFreeSlot,
// ErrEmptyQueue, ErrBadHandle) rather than terminating the process. Hosts
// that want abort-on-failure semantics, as fixed-resource embedded systems
// commonly do, can layer that in a thin adapter; see cmd/poolctl.
//
// # Usage Example
//
//	p, err := pool.New(nil)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	q, err := p.CreateQueue()
//	if err != nil {
//	    return err
//	}
//	_ = p.Enqueue(q, 42)
//	b, err := p.Dequeue(q) // b == 42
//
// # Mapped arenas
//
// Create builds a pool whose arena is mapped read-write from a file so the
// raw bytes can be inspected or shared. This is not persistence: the slot
// table never leaves the process, and reopening the file yields an empty
// pool. The dirty subpackage can flush mutated ranges of a mapped arena.
//
// # Thread Safety
//
// Pool is not thread-safe and has no internal atomicity: placement and
// compaction mutate several slots and the arena together. Embedders must
// serialize all public operations under a single external mutex.
package pool
