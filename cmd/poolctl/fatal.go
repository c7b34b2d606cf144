package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fixedmem/poolkit/pool"
)

// The pool library reports failures as errors; poolctl restores the classic
// embedded fail-fast behavior of aborting the process on the two terminal
// conditions.

// onOutOfMemory terminates the process after an unrecoverable allocation
// failure. Raises SIGABRT where signals are available.
func onOutOfMemory() {
	fmt.Println("Program ran out of memory!")
	raiseAbort()
}

// onIllegalOperation terminates the process after an invalid queue
// operation. Raises SIGILL where signals are available.
func onIllegalOperation() {
	fmt.Println("Illegal operation recorded!")
	raiseIllegal()
}

// checkFatal maps pool errors onto the two termination paths. Space and
// slot exhaustion abort as out-of-memory; everything else (empty dequeue,
// stale handle) is an illegal operation.
func checkFatal(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, pool.ErrNoSpace) || errors.Is(err, pool.ErrNoFreeSlot) {
		onOutOfMemory()
	}
	onIllegalOperation()
}

// newPool builds a pool from the global geometry flags.
func newPool() (*pool.Pool, error) {
	cfg := &pool.Config{
		ArenaSize:  arenaSize,
		MaxQueues:  maxQueues,
		GrowthUnit: growthUnit,
	}
	if arenaFile != "" {
		printVerbose("mapping arena from %s\n", arenaFile)
		return pool.Create(arenaFile, cfg)
	}
	return pool.New(cfg)
}

// exitCodeFallback is used on platforms without raisable signals.
func exitCodeFallback(code int) {
	os.Exit(code)
}
