package pool

import "sort"

// addressNone marks the address of an inactive slot.
const addressNone = int32(-1)

// slot is one fixed descriptor entry in the slot table.
//
// Field discipline (checked by Validate):
//   - inactive: allocated == 0, size == 0, address == addressNone
//   - active:   0 <= size <= allocated, allocated is a multiple of the
//     growth unit, [address, address+allocated) lies within the arena
type slot struct {
	active    bool
	gen       uint32 // bumped on release; stale handles are detected via this
	address   int32
	allocated int32
	size      int32
}

// Handle identifies a queue independent of its current arena address.
// It stays valid across relocation and compaction. The zero Handle is
// never valid.
type Handle struct {
	index int
	gen   uint32
}

// resolve maps a handle to its slot, rejecting zero, out-of-range, stale,
// and inactive handles.
func (p *Pool) resolve(h Handle) (*slot, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if h.index < 0 || h.index >= len(p.slots) {
		return nil, ErrBadHandle
	}
	s := &p.slots[h.index]
	if !s.active || s.gen != h.gen {
		return nil, ErrBadHandle
	}
	return s, nil
}

// claimSlot marks the first inactive slot active at the given address and
// returns its handle. The caller has already found a placement.
func (p *Pool) claimSlot(addr, allocated int32) (Handle, error) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.active {
			continue
		}
		s.active = true
		s.gen++
		s.address = addr
		s.allocated = allocated
		s.size = 0
		return Handle{index: i, gen: s.gen}, nil
	}
	return Handle{}, ErrNoFreeSlot
}

// releaseSlot marks a slot inactive, optionally zeroing its region first.
func (p *Pool) releaseSlot(s *slot, zero bool) {
	if zero && s.allocated > 0 {
		p.arena.Zero(int(s.address), int(s.allocated))
		p.markDirty(s.address, s.allocated)
	}
	s.active = false
	s.address = addressNone
	s.allocated = 0
	s.size = 0
}

// activeByAddress returns the indices of all active slots ordered by current
// address, ascending. This is the canonical ordering for gap scanning and
// compaction; it is recomputed on every call because addresses move.
//
// Equal addresses only occur when a drained queue has shrunk to zero
// capacity and a later placement claimed the same address. The zero-width
// slot must sort first: the co-located slot's region extends past the shared
// address, so a growth scan that saw the zero-width slot after it would
// mistake that region for a free gap.
func (p *Pool) activeByAddress() []int {
	order := make([]int, 0, len(p.slots))
	for i := range p.slots {
		if p.slots[i].active {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		sa, sb := &p.slots[order[a]], &p.slots[order[b]]
		if sa.address != sb.address {
			return sa.address < sb.address
		}
		if sa.allocated != sb.allocated {
			return sa.allocated < sb.allocated
		}
		return order[a] < order[b]
	})
	return order
}

// firstActive returns the active slot with the lowest address, or nil.
func (p *Pool) firstActive() *slot {
	order := p.activeByAddress()
	if len(order) == 0 {
		return nil
	}
	return &p.slots[order[0]]
}

// lastActive returns the active slot with the highest address, or nil.
func (p *Pool) lastActive() *slot {
	order := p.activeByAddress()
	if len(order) == 0 {
		return nil
	}
	return &p.slots[order[len(order)-1]]
}

// nextActiveAfter returns the active slot immediately following s in address
// order, or nil when s is last. Address order is used here deliberately, the
// same ordering the gap scan and the compactor use.
func (p *Pool) nextActiveAfter(s *slot) *slot {
	order := p.activeByAddress()
	for i, idx := range order {
		if &p.slots[idx] == s {
			if i+1 < len(order) {
				return &p.slots[order[i+1]]
			}
			return nil
		}
	}
	return nil
}
