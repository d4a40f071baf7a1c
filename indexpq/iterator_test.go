package indexpq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Ascending(t *testing.T) {
	h := newStringHeap(t, 5, "c", "a", "e", "b", "d")
	before := captureState(h)

	it := h.Iterator()
	var got []int
	for it.HasNext() {
		i, err := it.Next()
		require.NoError(t, err)
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3, 0, 4, 2}, got)

	// Source untouched
	assert.Equal(t, before, captureState(h))
	checkInvariants(t, h)
}

func TestIterator_Exhausted(t *testing.T) {
	h := newStringHeap(t, 2, "x")
	it := h.Iterator()

	i, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestIterator_Remove(t *testing.T) {
	h := newStringHeap(t, 2, "x")
	it := h.Iterator()

	err := it.Remove()
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, ErrorType("unsupported_operation"), Kind(err))
	assert.True(t, it.HasNext())
	assert.Equal(t, 1, h.Size())
}

func TestIterator_IsSnapshot(t *testing.T) {
	h := newStringHeap(t, 4, "b", "d", "a")
	it := h.Iterator()

	// Changes after the snapshot are not observed
	require.NoError(t, h.Insert(3, "0"))
	require.NoError(t, h.Delete(2))

	var got []int
	for it.HasNext() {
		i, _ := it.Next()
		got = append(got, i)
	}
	assert.Equal(t, []int{2, 0, 1}, got)
}

func TestIterator_Empty(t *testing.T) {
	h := newStringHeap(t, 0)
	it := h.Iterator()
	assert.False(t, it.HasNext())
}

func TestIterator_CustomOrderPreserved(t *testing.T) {
	h, err := NewFunc(4, func(a, b int) bool { return a > b })
	require.NoError(t, err)
	for i, k := range []int{1, 4, 2, 3} {
		require.NoError(t, h.Insert(i, k))
	}

	var got []int
	for i := range h.Ascending() {
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3, 2, 0}, got)
}

func TestAscending_EarlyBreak(t *testing.T) {
	h := newStringHeap(t, 5, "c", "a", "e", "b", "d")

	var got []int
	for i := range h.Ascending() {
		got = append(got, i)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, 5, h.Size())

	// Each range takes a fresh snapshot
	var again []int
	for i := range h.Ascending() {
		again = append(again, i)
	}
	assert.Equal(t, []int{1, 3, 0, 4, 2}, again)
}

func TestIterator_CopyDoesNotMove(t *testing.T) {
	h, err := New[int](64)
	require.NoError(t, err)
	for i := 63; i >= 0; i-- {
		require.NoError(t, h.Insert(i, (i*37)%101))
	}

	it := h.Iterator()
	assert.Equal(t, h.pq[1:h.n+1], it.drain.pq[1:it.drain.n+1])
	assert.Equal(t, h.qp, it.drain.qp)
	assert.Equal(t, h.keys, it.drain.keys)
	checkInvariants(t, it.drain)

	// Draining the copy leaves the source arrays alone
	pq := append([]int(nil), h.pq...)
	qp := append([]int(nil), h.qp...)
	keys := append([]int(nil), h.keys...)
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, pq, h.pq)
	assert.Equal(t, qp, h.qp)
	assert.Equal(t, keys, h.keys)
	assert.Equal(t, 64, h.Size())
}

func TestIterator_CopyHasNoObserver(t *testing.T) {
	obs := &recordingObserver{}
	h, err := New[int](4, WithObserver(obs))
	require.NoError(t, err)
	require.NoError(t, h.Insert(2, 7))
	require.NoError(t, h.Insert(0, 3))
	recorded := len(obs.ops)

	var got []int
	for i := range h.Ascending() {
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 2}, got)
	assert.Len(t, obs.ops, recorded, "draining the snapshot is not reported")
}
