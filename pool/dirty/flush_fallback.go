//go:build !unix

package dirty

import "context"

// flushRanges is a no-op on platforms without an mmap-backed arena; the
// fallback arena writes its buffer back on Close instead.
func flushRanges(ctx context.Context, _ []byte, _ []Range) error {
	return ctx.Err()
}
