package pool

// The placement engine performs a first-fit search over free extents:
// leading gap, then interior gaps in address order, then tail space, with
// exactly one compaction retry before giving up. Placement failures are
// reported as ErrNoSpace; the engine never hands out a range that would
// overlap a live slot or leave the arena bounds.

func (p *Pool) arenaSize() int32  { return int32(p.cfg.ArenaSize) }
func (p *Pool) growthUnit() int32 { return int32(p.cfg.GrowthUnit) }

// findNewPlacement locates an address for a brand-new queue of the
// requested capacity. Used only at queue creation.
func (p *Pool) findNewPlacement(requested int32) (int32, error) {
	first := p.firstActive()
	if first == nil {
		// Empty arena, place at the base.
		return 0, nil
	}

	if first.address != 0 {
		// A leading gap exists before the lowest-addressed slot.
		if requested <= first.address {
			return 0, nil
		}

		// The leading gap is too small. Compact once and fall back to the
		// tail; a no-op compaction cannot have opened new space.
		if !p.compact() {
			return 0, ErrNoSpace
		}
		last := p.lastActive()
		tail := last.address + last.allocated
		if tail+requested <= p.arenaSize() {
			return tail, nil
		}
		return 0, ErrNoSpace
	}

	// No leading gap: scan adjacent active pairs for the first interior gap
	// that fits.
	order := p.activeByAddress()
	for i := 1; i < len(order); i++ {
		prev := &p.slots[order[i-1]]
		next := &p.slots[order[i]]
		start := prev.address + prev.allocated
		if next.address-start >= requested {
			return start, nil
		}
	}

	// No interior gap, try the tail.
	last := &p.slots[order[len(order)-1]]
	tail := last.address + last.allocated
	if tail+requested <= p.arenaSize() {
		return tail, nil
	}

	// One compaction retry on the tail check.
	if !p.compact() {
		return 0, ErrNoSpace
	}
	last = p.lastActive()
	tail = last.address + last.allocated
	if tail+requested <= p.arenaSize() {
		return tail, nil
	}
	return 0, ErrNoSpace
}

// findGrowthPlacement locates an address for an existing queue whose
// reserved capacity must become newTotal. The slot keeps occupying its old
// region until the caller moves its bytes, so the returned range may only
// overlap the slot's own current one (the grow-in-place case).
//
// "Next" is resolved in address order, consistent with the gap scan and the
// compactor. When s has no successor it is the last live region and grows in
// place (bounds-checked, one compaction retry) rather than falling back to
// the arena base.
func (p *Pool) findGrowthPlacement(s *slot, newTotal int32) (int32, error) {
	next := p.nextActiveAfter(s)
	if next == nil {
		if s.address+newTotal <= p.arenaSize() {
			return s.address, nil
		}
		if !p.compact() {
			return 0, ErrNoSpace
		}
		// Compaction moved s as far left as it can go.
		if s.address+newTotal <= p.arenaSize() {
			return s.address, nil
		}
		return 0, ErrNoSpace
	}

	// Gap ahead of s (up to the next slot) already covers the new capacity:
	// grow in place.
	if next.address-s.address >= newTotal {
		return s.address, nil
	}

	// Relocate to the tail.
	last := p.lastActive()
	candidate := last.address + last.allocated
	if candidate+newTotal > p.arenaSize() {
		if !p.compact() {
			return 0, ErrNoSpace
		}
		last = p.lastActive()
		candidate = last.address + last.allocated
		if candidate+newTotal > p.arenaSize() {
			return 0, ErrNoSpace
		}
	}
	return candidate, nil
}
