//go:build !unix

package arena

import (
	"fmt"
	"os"
)

// Create builds a heap-backed arena when mmap is not available. The buffer
// is written back to path on Close so the on-disk bytes still reflect the
// final arena state.
func Create(path string, size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}

	data := make([]byte, size)
	a := &Arena{data: data}
	a.cleanup = func() error {
		return os.WriteFile(path, data, 0o644)
	}
	return a, nil
}
