package pool

import (
	"fmt"
	"io"
)

// DumpLayout writes a human-readable map of the arena to w: every active
// region in address order with its slot index, capacity, and live size,
// plus the gaps between regions and the remaining tail space.
//
// Intended for diagnostics and the poolctl CLI; the format is not stable.
func (p *Pool) DumpLayout(w io.Writer) error {
	if p.closed {
		return ErrClosed
	}

	order := p.activeByAddress()
	used := int32(0)
	for _, idx := range order {
		used += p.slots[idx].allocated
	}
	if _, err := fmt.Fprintf(w, "arena %d bytes, %d/%d queues active, %d bytes reserved\n",
		p.cfg.ArenaSize, len(order), p.cfg.MaxQueues, used); err != nil {
		return err
	}

	var cursor int32
	for _, idx := range order {
		s := &p.slots[idx]
		if s.address > cursor {
			if _, err := fmt.Fprintf(w, "  [%4d, %4d) gap %4d bytes\n",
				cursor, s.address, s.address-cursor); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  [%4d, %4d) slot %-2d size %4d / alloc %4d\n",
			s.address, s.address+s.allocated, idx, s.size, s.allocated); err != nil {
			return err
		}
		cursor = s.address + s.allocated
	}
	if cursor < p.arenaSize() {
		if _, err := fmt.Fprintf(w, "  [%4d, %4d) tail %4d bytes free\n",
			cursor, p.arenaSize(), p.arenaSize()-cursor); err != nil {
			return err
		}
	}
	return nil
}
