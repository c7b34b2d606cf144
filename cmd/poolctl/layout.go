package main

import (
	"fmt"
	"os"

	"github.com/fixedmem/poolkit/pool"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show arena layouts before and after compaction",
		Long: `The layout command fills the arena with several queues, destroys a
few of them to punch holes, and dumps the arena map before and after a
compaction pass.

Example:
  poolctl layout
  poolctl layout --arena-size 512 --growth-unit 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
}

func runLayout() error {
	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	// Six full queues, then holes where the 1st, 4th, and 5th used to be.
	var qs []pool.Handle
	for i := 0; i < 6; i++ {
		h, err := p.CreateQueue()
		checkFatal(err)
		for j := 1; j <= growthUnit; j++ {
			checkFatal(p.Enqueue(h, byte(j)))
		}
		qs = append(qs, h)
	}
	checkFatal(p.DestroyQueue(qs[0], true))
	checkFatal(p.DestroyQueue(qs[4], true))
	checkFatal(p.DestroyQueue(qs[3], true))

	fmt.Println("before compaction:")
	if err := p.DumpLayout(os.Stdout); err != nil {
		return err
	}

	moved := p.Compact()
	fmt.Printf("\nafter compaction (moved=%v):\n", moved)
	return p.DumpLayout(os.Stdout)
}
