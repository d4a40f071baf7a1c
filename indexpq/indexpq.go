package indexpq

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// IndexedMinHeap is a fixed-capacity min-heap of keys addressed by integer
// indices in [0, capacity). It uses a 1-based binary heap of indices together
// with its inverse so any index can be located in O(1).
//
// An IndexedMinHeap is not safe for concurrent use.
type IndexedMinHeap[K any] struct {
	nmax int   // maximum number of elements
	n    int   // number of elements
	pq   []int // binary heap using 1-based indexing
	qp   []int // inverse of pq: qp[pq[i]] = pq[qp[i]] = i, -1 when absent
	keys []K   // keys[i] = priority of i
	less func(a, b K) bool

	observer Observer
}

// New creates an empty heap for indices in [0, capacity) ordered by <.
func New[K constraints.Ordered](capacity int, opts ...Option) (*IndexedMinHeap[K], error) {
	return NewFunc(capacity, func(a, b K) bool { return a < b }, opts...)
}

// NewFunc creates an empty heap for indices in [0, capacity). less must be a
// strict total order over K.
func NewFunc[K any](capacity int, less func(a, b K) bool, opts ...Option) (*IndexedMinHeap[K], error) {
	if capacity < 0 {
		return nil, invalidArgument("New", fmt.Sprintf("negative capacity %d", capacity)).
			WithContext("capacity", capacity)
	}
	if less == nil {
		return nil, invalidArgument("New", "nil comparison function")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	h := &IndexedMinHeap[K]{
		nmax:     capacity,
		pq:       make([]int, capacity+1),
		qp:       make([]int, capacity),
		keys:     make([]K, capacity),
		less:     less,
		observer: o.observer,
	}
	for i := range h.qp {
		h.qp[i] = -1
	}
	return h, nil
}

// IsEmpty reports whether the heap holds no keys.
func (h *IndexedMinHeap[K]) IsEmpty() bool {
	return h.n == 0
}

// Size returns the number of keys on the heap.
func (h *IndexedMinHeap[K]) Size() int {
	return h.n
}

// Capacity returns the number of valid indices.
func (h *IndexedMinHeap[K]) Capacity() int {
	return h.nmax
}

// Contains reports whether index i has a key.
func (h *IndexedMinHeap[K]) Contains(i int) (bool, error) {
	if err := h.validate(OpContains, i); err != nil {
		return false, err
	}
	return h.qp[i] != -1, nil
}

// Insert associates key with index i.
func (h *IndexedMinHeap[K]) Insert(i int, key K) error {
	if err := h.validate(OpInsert, i); err != nil {
		return err
	}
	if h.qp[i] != -1 {
		return h.fail(OpInsert, duplicate(OpInsert, i))
	}

	h.n++
	h.qp[i] = h.n
	h.pq[h.n] = i
	h.keys[i] = key
	h.bubbleUp(h.n)

	h.observe(OpInsert)
	return nil
}

// MinIndex returns the index associated with a minimal key.
func (h *IndexedMinHeap[K]) MinIndex() (int, error) {
	if h.n == 0 {
		return -1, h.fail(OpMinIndex, empty(OpMinIndex))
	}
	return h.pq[1], nil
}

// MinKey returns a minimal key.
func (h *IndexedMinHeap[K]) MinKey() (K, error) {
	if h.n == 0 {
		var zero K
		return zero, h.fail(OpMinKey, empty(OpMinKey))
	}
	return h.keys[h.pq[1]], nil
}

// DeleteMin removes a minimal key and returns its index.
func (h *IndexedMinHeap[K]) DeleteMin() (int, error) {
	if h.n == 0 {
		return -1, h.fail(OpDeleteMin, empty(OpDeleteMin))
	}

	minIdx := h.pq[1]
	h.exch(1, h.n)
	h.n--
	h.bubbleDown(1)
	h.deactivate(minIdx)

	h.observe(OpDeleteMin)
	return minIdx, nil
}

// KeyOf returns the key associated with index i.
func (h *IndexedMinHeap[K]) KeyOf(i int) (K, error) {
	if err := h.active(OpKeyOf, i); err != nil {
		var zero K
		return zero, err
	}
	return h.keys[i], nil
}

// ChangeKey sets the key of index i, moving it up or down as needed.
func (h *IndexedMinHeap[K]) ChangeKey(i int, key K) error {
	if err := h.active(OpChangeKey, i); err != nil {
		return err
	}

	h.keys[i] = key
	h.bubbleUp(h.qp[i])
	h.bubbleDown(h.qp[i])

	h.observe(OpChangeKey)
	return nil
}

// Change sets the key of index i.
//
// Deprecated: use ChangeKey.
func (h *IndexedMinHeap[K]) Change(i int, key K) error {
	return h.ChangeKey(i, key)
}

// DecreaseKey lowers the key of index i. key must be strictly less than the
// current key.
func (h *IndexedMinHeap[K]) DecreaseKey(i int, key K) error {
	if err := h.active(OpDecreaseKey, i); err != nil {
		return err
	}
	if !h.less(key, h.keys[i]) {
		return h.fail(OpDecreaseKey, invalidArgument(OpDecreaseKey,
			"key would not strictly decrease the key").WithContext("index", i))
	}

	h.keys[i] = key
	h.bubbleUp(h.qp[i])

	h.observe(OpDecreaseKey)
	return nil
}

// IncreaseKey raises the key of index i. key must be strictly greater than
// the current key.
func (h *IndexedMinHeap[K]) IncreaseKey(i int, key K) error {
	if err := h.active(OpIncreaseKey, i); err != nil {
		return err
	}
	if !h.less(h.keys[i], key) {
		return h.fail(OpIncreaseKey, invalidArgument(OpIncreaseKey,
			"key would not strictly increase the key").WithContext("index", i))
	}

	h.keys[i] = key
	h.bubbleDown(h.qp[i])

	h.observe(OpIncreaseKey)
	return nil
}

// Delete removes index i and its key.
func (h *IndexedMinHeap[K]) Delete(i int) error {
	if err := h.active(OpDelete, i); err != nil {
		return err
	}

	slot := h.qp[i]
	h.exch(slot, h.n)
	h.n--
	if slot <= h.n {
		h.bubbleUp(slot)
		h.bubbleDown(slot)
	}
	h.deactivate(i)

	h.observe(OpDelete)
	return nil
}

// String renders the heap array as index:key pairs in slot order.
func (h *IndexedMinHeap[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for s := 1; s <= h.n; s++ {
		if s > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", h.pq[s], h.keys[h.pq[s]])
	}
	sb.WriteByte(']')
	return sb.String()
}

func (h *IndexedMinHeap[K]) validate(op string, i int) error {
	if i < 0 || i >= h.nmax {
		return h.fail(op, outOfRange(op, i, h.nmax))
	}
	return nil
}

func (h *IndexedMinHeap[K]) active(op string, i int) error {
	if err := h.validate(op, i); err != nil {
		return err
	}
	if h.qp[i] == -1 {
		return h.fail(op, notFound(op, i))
	}
	return nil
}

func (h *IndexedMinHeap[K]) fail(op string, err *Error) error {
	if h.observer != nil {
		h.observer.ObserveError(op, err)
	}
	return err
}

func (h *IndexedMinHeap[K]) observe(op string) {
	if h.observer != nil {
		h.observer.ObserveOperation(op, h.n)
	}
}

// deactivate clears index i, which must already sit past the last slot.
func (h *IndexedMinHeap[K]) deactivate(i int) {
	var zero K
	h.keys[i] = zero
	h.qp[i] = -1
	h.pq[h.n+1] = -1
}

// greater compares the keys held at heap slots s and t.
func (h *IndexedMinHeap[K]) greater(s, t int) bool {
	return h.less(h.keys[h.pq[t]], h.keys[h.pq[s]])
}

func (h *IndexedMinHeap[K]) exch(s, t int) {
	h.pq[s], h.pq[t] = h.pq[t], h.pq[s]
	h.qp[h.pq[s]] = s
	h.qp[h.pq[t]] = t
}

func (h *IndexedMinHeap[K]) bubbleUp(s int) {
	for s > 1 {
		parent := s / 2
		if !h.greater(parent, s) {
			break
		}
		h.exch(s, parent)
		s = parent
	}
}

func (h *IndexedMinHeap[K]) bubbleDown(s int) {
	for 2*s <= h.n {
		child := 2 * s
		if child < h.n && h.greater(child, child+1) {
			child++
		}
		if !h.greater(s, child) {
			break
		}
		h.exch(s, child)
		s = child
	}
}
