//go:build darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges flushes the whole mapping. On macOS msync requires the
// address passed to match the original mmap address, so sub-slices cannot
// be synced individually; the kernel only writes dirty pages anyway.
func flushRanges(ctx context.Context, data []byte, _ []Range) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return unix.Msync(data, unix.MS_SYNC)
}
