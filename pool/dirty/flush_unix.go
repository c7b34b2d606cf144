//go:build unix && !darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges msyncs each coalesced range. The offsets are page-aligned, so
// each sub-slice starts on a page boundary of the mapping.
func flushRanges(ctx context.Context, data []byte, ranges []Range) error {
	for _, r := range ranges {
		if err := ctx.Err(); err != nil {
			return err
		}
		start, end := int(r.Off), int(r.Off+r.Len)
		if end > len(data) {
			continue
		}
		if err := unix.Msync(data[start:end], unix.MS_SYNC); err != nil {
			return err
		}
	}
	return nil
}
