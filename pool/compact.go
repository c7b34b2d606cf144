package pool

// Compact relocates every active slot so the live regions are contiguous
// and left-packed starting at the arena base, in address order. Only live
// bytes are moved; vacated source ranges are zeroed. Capacity and logical
// size never change, only addresses. Returns true iff any region moved,
// so back-to-back calls with no intervening mutation return false on the
// second call.
func (p *Pool) Compact() bool {
	if p.closed {
		return false
	}
	return p.compact()
}

func (p *Pool) compact() bool {
	p.stats.CompactCalls++

	order := p.activeByAddress()
	if len(order) == 0 {
		return false
	}

	moved := false
	var cursor int32
	for _, idx := range order {
		s := &p.slots[idx]
		if s.address != cursor {
			debugLogf("compact: slot %d %d -> %d (%d live bytes)",
				idx, s.address, cursor, s.size)
			p.relocate(s.address, cursor, s.size)
			s.address = cursor
			moved = true
			p.stats.CompactMoves++
		}
		cursor += s.allocated
	}
	return moved
}
