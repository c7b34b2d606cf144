package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New_DefaultConfig(t *testing.T) {
	p := newTestPool(t, nil)

	require.Equal(t, DefaultConfig, p.Config())
	require.Len(t, p.ArenaBytes(), 2048)
	require.False(t, p.ArenaMapped())
	require.NoError(t, p.Validate())
}

func Test_New_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero arena", Config{ArenaSize: 0, MaxQueues: 4, GrowthUnit: 8}},
		{"negative arena", Config{ArenaSize: -1, MaxQueues: 4, GrowthUnit: 8}},
		{"zero queues", Config{ArenaSize: 256, MaxQueues: 0, GrowthUnit: 8}},
		{"zero unit", Config{ArenaSize: 256, MaxQueues: 4, GrowthUnit: 0}},
		{"unit beyond arena", Config{ArenaSize: 16, MaxQueues: 4, GrowthUnit: 32}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(&tc.cfg)
			require.Error(t, err)
		})
	}
}

func Test_Handle_ZeroIsInvalid(t *testing.T) {
	p := newTestPool(t, nil)

	var h Handle
	_, err := p.Dequeue(h)
	require.ErrorIs(t, err, ErrBadHandle)
	require.ErrorIs(t, p.Enqueue(h, 1), ErrBadHandle)
	require.ErrorIs(t, p.DestroyQueue(h, false), ErrBadHandle)
}

func Test_Handle_StaleAfterDestroy(t *testing.T) {
	p := newTestPool(t, nil)

	q, err := p.CreateQueue()
	require.NoError(t, err)
	require.NoError(t, p.Enqueue(q, 7))
	require.NoError(t, p.DestroyQueue(q, false))

	// The slot is reused by the next create; the old handle must still be
	// rejected rather than aliasing the new queue.
	q2, err := p.CreateQueue()
	require.NoError(t, err)

	require.ErrorIs(t, p.Enqueue(q, 1), ErrBadHandle)
	_, err = p.Dequeue(q)
	require.ErrorIs(t, err, ErrBadHandle)

	require.NoError(t, p.Enqueue(q2, 9))
	b, err := p.Dequeue(q2)
	require.NoError(t, err)
	require.Equal(t, byte(9), b)
}

func Test_Handle_SurvivesRelocation(t *testing.T) {
	p := newTestPool(t, nil)

	q1, err := p.CreateQueue()
	require.NoError(t, err)
	q2, err := p.CreateQueue()
	require.NoError(t, err)
	fillQueue(t, p, q1, 32)
	fillQueue(t, p, q2, 32)

	before := mustInfo(t, p, q1).Address

	// The 33rd byte forces q1 past q2, relocating it to the tail.
	require.NoError(t, p.Enqueue(q1, 33))
	after := mustInfo(t, p, q1)
	require.NotEqual(t, before, after.Address)
	require.Equal(t, 33, after.Size)

	got := drainQueue(t, p, q1)
	for i, b := range got {
		require.Equal(t, byte(i+1), b)
	}
}

func Test_Pool_ClosedOperationsFail(t *testing.T) {
	p, err := New(nil)
	require.NoError(t, err)

	q, err := p.CreateQueue()
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close()) // double close is a no-op

	_, err = p.CreateQueue()
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, p.Enqueue(q, 1), ErrClosed)
	require.ErrorIs(t, p.Validate(), ErrClosed)
	require.False(t, p.Compact())
}

func Test_Pool_MappedArena(t *testing.T) {
	path := t.TempDir() + "/pool.arena"

	p, err := Create(path, nil)
	require.NoError(t, err)
	defer p.Close()

	q, err := p.CreateQueue()
	require.NoError(t, err)
	require.NoError(t, p.Enqueue(q, 0xAB))
	require.Equal(t, byte(0xAB), p.ArenaBytes()[0])
	require.NoError(t, p.Validate())
}

func Test_Stats_CountsOperations(t *testing.T) {
	p := newTestPool(t, nil)

	q, err := p.CreateQueue()
	require.NoError(t, err)
	fillQueue(t, p, q, 33) // one growth past the first unit
	_, err = p.Dequeue(q)
	require.NoError(t, err)
	p.Compact()

	s := p.Stats()
	require.Equal(t, 1, s.CreateCalls)
	require.Equal(t, 33, s.EnqueueCalls)
	require.Equal(t, 1, s.DequeueCalls)
	require.Equal(t, 1, s.GrowInPlace+s.GrowRelocated)
	require.Equal(t, 1, s.CompactCalls)
}

func Test_Errors_AreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrNoSpace, ErrNoFreeSlot))
	require.False(t, errors.Is(ErrEmptyQueue, ErrBadHandle))
}
