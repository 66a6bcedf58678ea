package closequeue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushAndDrainInOrder(t *testing.T) {
	q := New(4)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	var drained []uintptr
	q.Drain(100, func(h uintptr) { drained = append(drained, h) })

	require.Equal(t, []uintptr{1, 2, 3}, drained)
	require.Equal(t, 0, q.Len())
}

func TestPushDropsOldestWhenFull(t *testing.T) {
	q := New(2)
	q.Push(1)
	q.Push(2)
	q.Push(3) // drops 1

	var drained []uintptr
	q.Drain(1, func(h uintptr) { drained = append(drained, h) })

	require.Equal(t, []uintptr{2, 3}, drained)
}

func TestDrainIsIdempotentWhenEmpty(t *testing.T) {
	q := New(4)
	var drained []uintptr
	q.Drain(1, func(h uintptr) { drained = append(drained, h) })
	require.Empty(t, drained)
}

func TestConcurrentDrainYieldsToFirstOwner(t *testing.T) {
	q := New(4)
	q.Push(1)

	q.currentThread.Store(999) // simulate an in-progress drain by another thread

	var drained []uintptr
	q.Drain(1, func(h uintptr) { drained = append(drained, h) })

	require.Empty(t, drained)
	require.Equal(t, 1, q.Len())
}
