package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Pool geometry flags, shared by all subcommands.
	arenaSize  int
	maxQueues  int
	growthUnit int
	arenaFile  string
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Exercise and inspect fixed-arena byte-queue pools",
	Long: `poolctl drives a fixed-capacity arena memory pool hosting FIFO byte
queues. It can run the classic interleaved demo, stress the allocator with a
randomized workload while checking its invariants, and dump arena layouts
before and after compaction.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		IntVar(&arenaSize, "arena-size", 2048, "Arena capacity in bytes")
	rootCmd.PersistentFlags().
		IntVar(&maxQueues, "max-queues", 64, "Maximum number of live queues")
	rootCmd.PersistentFlags().
		IntVar(&growthUnit, "growth-unit", 32, "Capacity growth unit in bytes")
	rootCmd.PersistentFlags().
		StringVar(&arenaFile, "arena-file", "", "Back the arena with a memory-mapped file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a message only in verbose mode.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
