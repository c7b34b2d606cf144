// Package dirty tracks the arena byte ranges a pool mutates and flushes
// them for memory-mapped arenas.
//
// The tracker collects raw ranges as the pool reports them, coalesces them
// into page-aligned, non-overlapping ranges at flush time, and msyncs each
// one using platform-specific system calls. For heap-backed arenas Flush is
// a cheap no-op that just drops the accumulated ranges.
package dirty

import (
	"context"
	"sort"

	"github.com/fixedmem/poolkit/pool"
)

const (
	// defaultRangeCapacity is pre-allocated so steady-state tracking does
	// not allocate.
	defaultRangeCapacity = 64

	// standardPageSize is the typical OS page size (4KB).
	standardPageSize = 4096
)

// Range is a mutated byte range in arena coordinates.
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges for one pool.
//
// NOT thread-safe; it inherits the pool's single-owner model.
type Tracker struct {
	p        *pool.Pool
	ranges   []Range
	pageSize int64
}

// NewTracker creates a tracker for p and installs it as the pool's dirty
// tracker.
func NewTracker(p *pool.Pool) *Tracker {
	t := &Tracker{
		p:        p,
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: standardPageSize,
	}
	p.SetDirtyTracker(t)
	return t
}

// Add records a mutated range. Very cheap: one slice append.
func (t *Tracker) Add(off, length int) {
	t.ranges = append(t.ranges, Range{Off: int64(off), Len: int64(length)})
}

// Pending returns the number of recorded, not-yet-flushed ranges.
func (t *Tracker) Pending() int { return len(t.ranges) }

// Reset drops all recorded ranges without flushing.
func (t *Tracker) Reset() { t.ranges = t.ranges[:0] }

// Flush writes all recorded dirty ranges of a mapped arena out via msync
// and clears the tracker. For a heap-backed arena it only clears. The
// context can cancel between ranges; on cancellation some ranges may have
// been flushed and the rest remain recorded.
func (t *Tracker) Flush(ctx context.Context) error {
	if len(t.ranges) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !t.p.ArenaMapped() {
		t.Reset()
		return nil
	}

	data := t.p.ArenaBytes()
	coalesced := t.coalesce(int64(len(data)))
	if err := flushRanges(ctx, data, coalesced); err != nil {
		return err
	}
	t.Reset()
	return nil
}

// coalesce returns the recorded ranges page-aligned, clamped to the arena,
// sorted, and merged so no two returned ranges overlap or touch.
func (t *Tracker) coalesce(limit int64) []Range {
	aligned := make([]Range, 0, len(t.ranges))
	for _, r := range t.ranges {
		if r.Len <= 0 {
			continue
		}
		start := (r.Off / t.pageSize) * t.pageSize
		end := ((r.Off + r.Len + t.pageSize - 1) / t.pageSize) * t.pageSize
		if end > limit {
			end = limit
		}
		if start >= end {
			continue
		}
		aligned = append(aligned, Range{Off: start, Len: end - start})
	}

	sort.Slice(aligned, func(i, j int) bool { return aligned[i].Off < aligned[j].Off })

	merged := aligned[:0]
	for _, r := range aligned {
		if n := len(merged); n > 0 && r.Off <= merged[n-1].Off+merged[n-1].Len {
			if end := r.Off + r.Len; end > merged[n-1].Off+merged[n-1].Len {
				merged[n-1].Len = end - merged[n-1].Off
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
