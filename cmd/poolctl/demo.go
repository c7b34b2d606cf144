package main

import (
	"fmt"

	"github.com/fixedmem/poolkit/pool"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the classic interleaved two-queue scenario",
		Long: `The demo command interleaves enqueues and dequeues across two queues
sharing the arena, printing every dequeued byte. The expected output is:

  0 1
  2 5
  3 4 6

Example:
  poolctl demo
  poolctl demo --arena-size 4096 --growth-unit 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	create := func() pool.Handle {
		h, err := p.CreateQueue()
		checkFatal(err)
		return h
	}
	enq := func(h pool.Handle, b byte) {
		checkFatal(p.Enqueue(h, b))
	}
	deq := func(h pool.Handle) byte {
		b, err := p.Dequeue(h)
		checkFatal(err)
		return b
	}

	q0 := create()
	enq(q0, 0)
	enq(q0, 1)
	q1 := create()
	enq(q1, 3)
	enq(q0, 2)
	enq(q1, 4)
	fmt.Printf("%d ", deq(q0))
	fmt.Printf("%d\n", deq(q0))
	enq(q0, 5)
	enq(q1, 6)
	fmt.Printf("%d ", deq(q0))
	fmt.Printf("%d\n", deq(q0))
	checkFatal(p.DestroyQueue(q0, false))
	fmt.Printf("%d ", deq(q1))
	fmt.Printf("%d ", deq(q1))
	fmt.Printf("%d\n", deq(q1))
	checkFatal(p.DestroyQueue(q1, false))

	printVerbose("stats: %+v\n", p.Stats())
	return nil
}
