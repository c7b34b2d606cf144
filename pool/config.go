package pool

import "fmt"

// Config fixes the pool geometry at construction time. None of the fields
// are runtime-reconfigurable afterwards.
type Config struct {
	// ArenaSize is the capacity of the backing arena in bytes.
	ArenaSize int

	// MaxQueues is the number of slot table entries, and therefore the
	// maximum number of simultaneously live queues.
	MaxQueues int

	// GrowthUnit is the only granularity at which a queue's reserved
	// capacity changes, up or down.
	GrowthUnit int
}

// DefaultConfig mirrors the classic layout: a 2 KiB arena split into
// 64 queues of one 32-byte growth unit each, so a full table of fresh
// queues fits exactly.
var DefaultConfig = Config{
	ArenaSize:  2048,
	MaxQueues:  64,
	GrowthUnit: 32,
}

func (c Config) validate() error {
	if c.ArenaSize <= 0 {
		return fmt.Errorf("pool: arena size must be positive, got %d", c.ArenaSize)
	}
	if c.MaxQueues <= 0 {
		return fmt.Errorf("pool: max queues must be positive, got %d", c.MaxQueues)
	}
	if c.GrowthUnit <= 0 {
		return fmt.Errorf("pool: growth unit must be positive, got %d", c.GrowthUnit)
	}
	if c.GrowthUnit > c.ArenaSize {
		return fmt.Errorf("pool: growth unit %d exceeds arena size %d",
			c.GrowthUnit, c.ArenaSize)
	}
	return nil
}
