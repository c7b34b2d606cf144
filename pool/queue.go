package pool

// CreateQueue claims a slot and places a fresh queue with one growth unit
// of reserved capacity. Fails with ErrNoSpace when no placement exists even
// after compaction, or ErrNoFreeSlot when the slot table is full.
func (p *Pool) CreateQueue() (Handle, error) {
	if p.closed {
		return Handle{}, ErrClosed
	}
	p.stats.CreateCalls++

	addr, err := p.findNewPlacement(p.growthUnit())
	if err != nil {
		return Handle{}, err
	}
	h, err := p.claimSlot(addr, p.growthUnit())
	if err != nil {
		return Handle{}, err
	}
	debugLogf("create: slot %d at %d", h.index, addr)
	return h, nil
}

// DestroyQueue releases a queue's slot. When zero is true the full reserved
// region is cleared first so no contents linger in the arena. The handle
// and any copies of it become invalid.
func (p *Pool) DestroyQueue(h Handle, zero bool) error {
	s, err := p.resolve(h)
	if err != nil {
		return err
	}
	p.stats.DestroyCalls++
	debugLogf("destroy: slot %d at %d (zero=%v)", h.index, s.address, zero)
	p.releaseSlot(s, zero)
	return nil
}

// Enqueue appends one byte to the queue, growing its reserved capacity by
// one growth unit first when full. Growth may relocate the queue (in the
// arena only; the handle stays valid) and may trigger one compaction pass.
func (p *Pool) Enqueue(h Handle, b byte) error {
	s, err := p.resolve(h)
	if err != nil {
		return err
	}
	p.stats.EnqueueCalls++

	if s.size+1 > s.allocated {
		newTotal := s.allocated + p.growthUnit()
		target, err := p.findGrowthPlacement(s, newTotal)
		if err != nil {
			return err
		}
		// findGrowthPlacement may have compacted, so s.address is read
		// fresh here: it is the current home of the live bytes.
		if target != s.address {
			debugLogf("grow: slot %d relocate %d -> %d (%d live bytes, alloc %d)",
				h.index, s.address, target, s.size, newTotal)
			p.relocate(s.address, target, s.size)
			s.address = target
			p.stats.GrowRelocated++
		} else {
			p.stats.GrowInPlace++
		}
		s.allocated = newTotal
	}

	p.arena.Bytes()[s.address+s.size] = b
	p.markDirty(s.address+s.size, 1)
	s.size++
	return nil
}

// Dequeue removes and returns the oldest byte. The remaining bytes shift
// left one position and the vacated byte is zeroed, so queue contents are
// always left-aligned at the slot's address. Capacity shrinks by one growth
// unit as soon as a full unit at the tail goes unused; shrinking moves no
// data because the free capacity is always at the tail.
func (p *Pool) Dequeue(h Handle) (byte, error) {
	s, err := p.resolve(h)
	if err != nil {
		return 0, err
	}
	if s.size == 0 {
		return 0, ErrEmptyQueue
	}
	p.stats.DequeueCalls++

	data := p.arena.Bytes()
	b := data[s.address]
	copy(data[s.address:s.address+s.size-1], data[s.address+1:s.address+s.size])
	s.size--
	data[s.address+s.size] = 0
	p.markDirty(s.address, s.size+1)

	if s.size <= s.allocated-p.growthUnit() {
		s.allocated -= p.growthUnit()
		p.stats.ShrinkCount++
	}
	return b, nil
}

// QueueInfo describes a queue's current placement.
type QueueInfo struct {
	Address   int // current offset into the arena
	Allocated int // reserved capacity in bytes, a multiple of the growth unit
	Size      int // live bytes currently stored
}

// Info returns the queue's current placement. Address is only valid until
// the next operation on the pool; growth and compaction both relocate.
func (p *Pool) Info(h Handle) (QueueInfo, error) {
	s, err := p.resolve(h)
	if err != nil {
		return QueueInfo{}, err
	}
	return QueueInfo{
		Address:   int(s.address),
		Allocated: int(s.allocated),
		Size:      int(s.size),
	}, nil
}

// Len returns the number of live bytes in the queue.
func (p *Pool) Len(h Handle) (int, error) {
	s, err := p.resolve(h)
	if err != nil {
		return 0, err
	}
	return int(s.size), nil
}

// ActiveQueues returns the number of live queues.
func (p *Pool) ActiveQueues() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].active {
			n++
		}
	}
	return n
}
