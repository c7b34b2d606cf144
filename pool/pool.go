package pool

import (
	"github.com/fixedmem/poolkit/internal/arena"
)

// DirtyTracker receives the byte ranges the pool mutates. Implementations
// can use them to flush a mapped arena incrementally (see the dirty
// subpackage). May be nil.
type DirtyTracker interface {
	// Add records a mutated range [off, off+length) in arena coordinates.
	Add(off, length int)
}

// Pool hosts up to Config.MaxQueues independent FIFO byte queues inside one
// fixed arena. All placement, growth, and compaction bookkeeping is manual;
// no operation touches a general-purpose heap allocator for queue storage.
//
// A Pool is NOT safe for concurrent use. Placement and compaction read and
// mutate multiple slots plus the arena together, so a multi-threaded host
// must serialize every public operation under one external mutex.
type Pool struct {
	cfg    Config
	arena  *arena.Arena
	slots  []slot
	dt     DirtyTracker
	stats  Stats
	closed bool
}

// New builds a heap-backed pool. A nil cfg selects DefaultConfig.
func New(cfg *Config) (*Pool, error) {
	c := DefaultConfig
	if cfg != nil {
		c = *cfg
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	a, err := arena.New(c.ArenaSize)
	if err != nil {
		return nil, err
	}
	return newPool(c, a), nil
}

// Create builds a pool whose arena is mapped read-write from the file at
// path (heap-backed with write-back where mmap is unavailable). The file
// only carries the raw arena bytes; queue bookkeeping is process-local, so
// reopening the file yields an empty pool. A nil cfg selects DefaultConfig.
func Create(path string, cfg *Config) (*Pool, error) {
	c := DefaultConfig
	if cfg != nil {
		c = *cfg
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	a, err := arena.Create(path, c.ArenaSize)
	if err != nil {
		return nil, err
	}
	return newPool(c, a), nil
}

func newPool(c Config, a *arena.Arena) *Pool {
	p := &Pool{
		cfg:   c,
		arena: a,
		slots: make([]slot, c.MaxQueues),
	}
	for i := range p.slots {
		p.slots[i].address = addressNone
	}
	return p
}

// Config returns the fixed pool geometry.
func (p *Pool) Config() Config { return p.cfg }

// ArenaBytes returns the backing buffer for inspection. The slice aliases
// live queue storage; callers must not write through it.
func (p *Pool) ArenaBytes() []byte { return p.arena.Bytes() }

// ArenaMapped reports whether the arena is backed by a memory-mapped file.
func (p *Pool) ArenaMapped() bool { return p.arena.Mapped() }

// SetDirtyTracker installs dt as the receiver of mutated byte ranges.
// Pass nil to detach.
func (p *Pool) SetDirtyTracker(dt DirtyTracker) { p.dt = dt }

// Close releases the arena. Every handle becomes invalid.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.arena.Close()
}

func (p *Pool) markDirty(off, n int32) {
	if p.dt != nil && n > 0 {
		p.dt.Add(int(off), int(n))
	}
}

// relocate moves n live bytes from src to dst, zeroes the vacated part of
// the source range, and records both ranges as dirty.
func (p *Pool) relocate(src, dst, n int32) {
	if src == dst || n == 0 {
		return
	}
	p.arena.Relocate(int(src), int(dst), int(n))
	p.stats.BytesMoved += int64(n)
	p.markDirty(src, n)
	p.markDirty(dst, n)
}
