package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestPool creates a heap-backed pool with the given geometry (nil for
// defaults) and closes it when the test ends.
func newTestPool(t testing.TB, cfg *Config) *Pool {
	t.Helper()

	p, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// fillQueue enqueues the bytes 1..n into q.
func fillQueue(t testing.TB, p *Pool, q Handle, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		require.NoError(t, p.Enqueue(q, byte(i)))
	}
}

// drainQueue dequeues every byte of q and returns them in FIFO order.
func drainQueue(t testing.TB, p *Pool, q Handle) []byte {
	t.Helper()

	n, err := p.Len(q)
	require.NoError(t, err)

	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := p.Dequeue(q)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

// fillPattern returns the bytes 1..n, the sequence fillQueue enqueues.
func fillPattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i + 1)
	}
	return out
}

// mustInfo fetches placement info or fails the test.
func mustInfo(t testing.TB, p *Pool, q Handle) QueueInfo {
	t.Helper()

	info, err := p.Info(q)
	require.NoError(t, err)
	return info
}
