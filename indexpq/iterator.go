package indexpq

import (
	"iter"
	"slices"
)

// SnapshotIterator yields the indices of a heap in ascending key order.
// It drains a private copy taken at construction, so later changes to the
// source heap are not observed and the source is never modified. A
// SnapshotIterator cannot be restarted.
type SnapshotIterator[K any] struct {
	drain *IndexedMinHeap[K]
}

// Iterator returns a SnapshotIterator over the current contents of h.
//
// The copy clones the heap arrays as they are, so construction costs
// O(capacity) copying and no comparisons. The copy has no observer.
func (h *IndexedMinHeap[K]) Iterator() *SnapshotIterator[K] {
	c := &IndexedMinHeap[K]{
		nmax: h.nmax,
		n:    h.n,
		pq:   slices.Clone(h.pq),
		qp:   slices.Clone(h.qp),
		keys: slices.Clone(h.keys),
		less: h.less,
	}
	return &SnapshotIterator[K]{drain: c}
}

// HasNext reports whether Next would return another index.
func (it *SnapshotIterator[K]) HasNext() bool {
	return !it.drain.IsEmpty()
}

// Next returns the index with the next smallest key.
func (it *SnapshotIterator[K]) Next() (int, error) {
	if !it.HasNext() {
		return -1, empty("Next")
	}
	return it.drain.DeleteMin()
}

// Remove is not supported; the iterator is read-only.
func (it *SnapshotIterator[K]) Remove() error {
	return unsupported("Remove", "snapshot iterator is read-only")
}

// Ascending returns a sequence of the indices of h in ascending key order.
// The snapshot is taken when iteration starts.
func (h *IndexedMinHeap[K]) Ascending() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := h.Iterator()
		for it.HasNext() {
			i, err := it.Next()
			if err != nil || !yield(i) {
				return
			}
		}
	}
}
