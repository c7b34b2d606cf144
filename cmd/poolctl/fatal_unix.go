//go:build unix

package main

import "golang.org/x/sys/unix"

// raiseAbort terminates via SIGABRT, the conventional abnormal-termination
// signal for out-of-memory conditions.
func raiseAbort() {
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
	exitCodeFallback(134) // 128 + SIGABRT, in case the signal was blocked
}

// raiseIllegal terminates via SIGILL for invalid operations.
func raiseIllegal() {
	_ = unix.Kill(unix.Getpid(), unix.SIGILL)
	exitCodeFallback(132) // 128 + SIGILL
}
