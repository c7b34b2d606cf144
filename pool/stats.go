package pool

// Stats holds cumulative operation counters for instrumentation and tests.
type Stats struct {
	CreateCalls  int // CreateQueue calls that reached placement
	DestroyCalls int // successful DestroyQueue calls
	EnqueueCalls int // successful Enqueue calls
	DequeueCalls int // successful Dequeue calls

	GrowInPlace   int // capacity grew without moving bytes
	GrowRelocated int // capacity grew via relocation to the tail
	ShrinkCount   int // capacity reductions after dequeue

	CompactCalls int   // compaction passes, including no-op passes
	CompactMoves int   // slots relocated by compaction
	BytesMoved   int64 // live bytes copied by growth and compaction
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats { return p.stats }
