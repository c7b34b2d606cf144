package pool

import (
	"fmt"
	"os"
)

// Allocation tracing, controlled by the POOLKIT_LOG_ALLOC environment variable.
var logAlloc = os.Getenv("POOLKIT_LOG_ALLOC") != ""

// debugLogf prints a trace line to stderr when tracing is enabled.
func debugLogf(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] "+format+"\n", args...)
	}
}
