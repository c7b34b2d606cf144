package pool

import "fmt"

// Validate checks the slot table invariants:
//
//   - inactive slots are fully zeroed (no address, no capacity, no size)
//   - active capacities are multiples of the growth unit and cover size
//   - every active region lies within the arena bounds
//   - no two active regions overlap
//
// It is cheap enough to run after every operation in tests and stress
// drivers, and returns the first violation found.
func (p *Pool) Validate() error {
	if p.closed {
		return ErrClosed
	}

	for i := range p.slots {
		s := &p.slots[i]
		if !s.active {
			if s.allocated != 0 || s.size != 0 || s.address != addressNone {
				return fmt.Errorf("pool: inactive slot %d not cleared (addr=%d alloc=%d size=%d)",
					i, s.address, s.allocated, s.size)
			}
			continue
		}
		if s.allocated < 0 || s.allocated%p.growthUnit() != 0 {
			return fmt.Errorf("pool: slot %d capacity %d not a multiple of growth unit %d",
				i, s.allocated, p.growthUnit())
		}
		if s.size < 0 || s.size > s.allocated {
			return fmt.Errorf("pool: slot %d size %d outside [0, %d]", i, s.size, s.allocated)
		}
		if s.address < 0 || s.address+s.allocated > p.arenaSize() {
			return fmt.Errorf("pool: slot %d region [%d, %d) outside arena of %d bytes",
				i, s.address, s.address+s.allocated, p.arenaSize())
		}
	}

	order := p.activeByAddress()
	for i := 1; i < len(order); i++ {
		prev := &p.slots[order[i-1]]
		next := &p.slots[order[i]]
		if prev.address+prev.allocated > next.address {
			return fmt.Errorf("pool: slots %d and %d overlap ([%d,%d) vs [%d,%d))",
				order[i-1], order[i],
				prev.address, prev.address+prev.allocated,
				next.address, next.address+next.allocated)
		}
	}
	return nil
}
