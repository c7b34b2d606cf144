package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/fixedmem/poolkit/pool"
	"github.com/fixedmem/poolkit/pool/dirty"
	"github.com/spf13/cobra"
)

var (
	stressOps  int
	stressSeed int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Number of random operations")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Random seed")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized workload with invariant checking",
		Long: `The stress command performs a seeded random sequence of queue
creations, enqueues, dequeues, destroys, and compactions, validating the
slot table invariants after every operation. Allocation failures are
treated as expected backpressure, not fatal conditions.

Example:
  poolctl stress --ops 100000 --seed 42
  poolctl stress --arena-file pool.arena --ops 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	var tracker *dirty.Tracker
	if p.ArenaMapped() {
		tracker = dirty.NewTracker(p)
	}

	rng := rand.New(rand.NewSource(stressSeed))
	var handles []pool.Handle
	full := 0

	for i := 0; i < stressOps; i++ {
		switch rng.Intn(10) {
		case 0, 1: // create
			h, err := p.CreateQueue()
			if err != nil {
				if !errors.Is(err, pool.ErrNoSpace) && !errors.Is(err, pool.ErrNoFreeSlot) {
					return fmt.Errorf("op %d: create: %w", i, err)
				}
				full++
				break
			}
			handles = append(handles, h)
		case 2: // destroy
			if len(handles) == 0 {
				break
			}
			j := rng.Intn(len(handles))
			if err := p.DestroyQueue(handles[j], rng.Intn(2) == 0); err != nil {
				return fmt.Errorf("op %d: destroy: %w", i, err)
			}
			handles = append(handles[:j], handles[j+1:]...)
		case 3: // compact
			p.Compact()
		default: // enqueue-heavy mix with occasional dequeues
			if len(handles) == 0 {
				break
			}
			h := handles[rng.Intn(len(handles))]
			if rng.Intn(3) == 0 {
				if _, err := p.Dequeue(h); err != nil && !errors.Is(err, pool.ErrEmptyQueue) {
					return fmt.Errorf("op %d: dequeue: %w", i, err)
				}
			} else {
				if err := p.Enqueue(h, byte(rng.Intn(256))); err != nil {
					if !errors.Is(err, pool.ErrNoSpace) {
						return fmt.Errorf("op %d: enqueue: %w", i, err)
					}
					full++
				}
			}
		}

		if err := p.Validate(); err != nil {
			return fmt.Errorf("op %d: invariant violation: %w", i, err)
		}
	}

	if tracker != nil {
		if err := tracker.Flush(context.Background()); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}

	s := p.Stats()
	printInfo("ran %d ops (seed %d): %d live queues, %d backpressure events\n",
		stressOps, stressSeed, p.ActiveQueues(), full)
	printInfo("enqueued %d, dequeued %d, grew %d (%d relocations), shrank %d\n",
		s.EnqueueCalls, s.DequeueCalls, s.GrowInPlace+s.GrowRelocated,
		s.GrowRelocated, s.ShrinkCount)
	printInfo("compacted %d times, %d moves, %d bytes copied\n",
		s.CompactCalls, s.CompactMoves, s.BytesMoved)
	return nil
}
