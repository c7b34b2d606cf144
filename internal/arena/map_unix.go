//go:build unix

package arena

import (
	"fmt"
	"os"
	"syscall"
)

// Create maps the file at path read-write as an arena of exactly size bytes.
// The file is created if missing and truncated to size, so a new mapping
// always starts zero-filled.
func Create(path string, size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	if err := f.Truncate(int64(size)); err != nil {
		return nil, fmt.Errorf("arena: truncate %s: %w", path, err)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %s: %w", path, err)
	}

	// A reused file may carry old contents; the pool expects a clean slate.
	for i := range data {
		data[i] = 0
	}

	a := &Arena{data: data, mapped: true}
	a.cleanup = func() error {
		return syscall.Munmap(data)
	}
	return a, nil
}
