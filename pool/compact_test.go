package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Compact_EmptyPool(t *testing.T) {
	p := newTestPool(t, nil)

	require.False(t, p.Compact())
	require.NoError(t, p.Validate())
}

// Test_Compact_ClosesHole: three full queues, the middle one destroyed;
// compaction pulls the third one left so no gap remains.
func Test_Compact_ClosesHole(t *testing.T) {
	p := newTestPool(t, nil)

	qa, err := p.CreateQueue()
	require.NoError(t, err)
	qb, err := p.CreateQueue()
	require.NoError(t, err)
	qc, err := p.CreateQueue()
	require.NoError(t, err)
	fillQueue(t, p, qa, 32)
	fillQueue(t, p, qb, 32)
	fillQueue(t, p, qc, 32)

	require.NoError(t, p.DestroyQueue(qb, false))

	require.True(t, p.Compact())

	infoA := mustInfo(t, p, qa)
	infoC := mustInfo(t, p, qc)
	require.Equal(t, 0, infoA.Address)
	require.Equal(t, infoA.Address+infoA.Allocated, infoC.Address)
	require.NoError(t, p.Validate())

	// Idempotence: nothing left to move.
	require.False(t, p.Compact())
}

func Test_Compact_PreservesContents(t *testing.T) {
	p := newTestPool(t, nil)

	// Queues of different fill levels, with holes punched between them.
	sizes := []int{5, 32, 0, 17, 64, 1}
	handles := make([]Handle, len(sizes))
	for i, n := range sizes {
		q, err := p.CreateQueue()
		require.NoError(t, err)
		handles[i] = q
		fillQueue(t, p, q, n)
	}
	require.NoError(t, p.DestroyQueue(handles[0], true))
	require.NoError(t, p.DestroyQueue(handles[3], false))

	p.Compact()
	require.NoError(t, p.Validate())

	for _, i := range []int{1, 2, 4, 5} {
		got := drainQueue(t, p, handles[i])
		require.Len(t, got, sizes[i], "queue %d", i)
		for j, b := range got {
			require.Equal(t, byte(j+1), b, "queue %d offset %d", i, j)
		}
	}
}

// Test_Compact_LeftPacksInAddressOrder: after compaction the regions sit
// back to back from the base, in the same relative order as before.
func Test_Compact_LeftPacksInAddressOrder(t *testing.T) {
	p := newTestPool(t, nil)

	handles := make([]Handle, 6)
	for i := range handles {
		q, err := p.CreateQueue()
		require.NoError(t, err)
		handles[i] = q
		fillQueue(t, p, q, 32)
	}
	require.NoError(t, p.DestroyQueue(handles[0], true))
	require.NoError(t, p.DestroyQueue(handles[3], true))
	require.NoError(t, p.DestroyQueue(handles[4], true))

	require.True(t, p.Compact())

	want := 0
	for _, i := range []int{1, 2, 5} {
		info := mustInfo(t, p, handles[i])
		require.Equal(t, want, info.Address, "queue %d", i)
		require.Equal(t, 32, info.Size)
		want += info.Allocated
	}
}

func Test_Compact_ZeroesVacatedSpace(t *testing.T) {
	p := newTestPool(t, nil)

	qa, err := p.CreateQueue()
	require.NoError(t, err)
	qb, err := p.CreateQueue()
	require.NoError(t, err)
	qc, err := p.CreateQueue()
	require.NoError(t, err)
	fillQueue(t, p, qa, 32)
	fillQueue(t, p, qb, 32)
	fillQueue(t, p, qc, 32)

	require.NoError(t, p.DestroyQueue(qb, false))
	require.True(t, p.Compact())

	// Live data now occupies [0, 64); everything past it must be zero.
	data := p.ArenaBytes()
	for off := 64; off < len(data); off++ {
		require.Equal(t, byte(0), data[off], "offset %d", off)
	}
}

// Test_Compact_ReportsWhetherAnythingMoved mirrors how the placement engine
// uses the return value: a packed arena must report false.
func Test_Compact_ReportsWhetherAnythingMoved(t *testing.T) {
	p := newTestPool(t, nil)

	q1, err := p.CreateQueue()
	require.NoError(t, err)
	q2, err := p.CreateQueue()
	require.NoError(t, err)
	fillQueue(t, p, q1, 32)
	fillQueue(t, p, q2, 32)

	require.False(t, p.Compact(), "contiguous layout has nothing to move")

	require.NoError(t, p.DestroyQueue(q1, false))
	require.True(t, p.Compact())
	require.False(t, p.Compact())
}
