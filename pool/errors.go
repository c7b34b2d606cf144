package pool

import "errors"

var (
	// ErrNoSpace indicates that no placement exists for the requested
	// capacity, even after one compaction pass.
	ErrNoSpace = errors.New("pool: no space left in arena")

	// ErrNoFreeSlot indicates that every queue slot is already active.
	ErrNoFreeSlot = errors.New("pool: all queue slots in use")

	// ErrEmptyQueue indicates a dequeue from a queue holding no bytes.
	ErrEmptyQueue = errors.New("pool: dequeue from empty queue")

	// ErrBadHandle indicates a zero, stale, or out-of-range queue handle.
	// A handle goes stale when its queue is destroyed and the slot reused.
	ErrBadHandle = errors.New("pool: invalid or stale queue handle")

	// ErrClosed indicates an operation on a closed pool.
	ErrClosed = errors.New("pool: pool is closed")
)
