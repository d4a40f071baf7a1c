// Package indexpq implements an indexed minimum priority queue: a binary heap
// of keys in which every key is bound to a caller-chosen integer index in
// [0, capacity). The index lets callers read, change or remove a key without
// searching the heap, which is what graph algorithms such as Dijkstra's
// shortest paths and Prim's minimum spanning tree need.
//
// Operations and their cost:
//   - Insert, DeleteMin, Delete, ChangeKey, DecreaseKey, IncreaseKey: O(log n)
//   - IsEmpty, Size, Contains, MinIndex, MinKey, KeyOf: O(1)
//   - construction: O(capacity)
//
// Every failure is returned before the heap is touched, so a failed call
// leaves the heap exactly as it was. Failures wrap one of the package
// sentinels (ErrOutOfRange, ErrDuplicateKey, ErrNotFound, ErrEmpty,
// ErrInvalidArgument, ErrUnsupported) and can be tested with errors.Is.
//
// Basic usage:
//
//	pq, _ := indexpq.New[float64](4)
//	_ = pq.Insert(0, 3.5)
//	_ = pq.Insert(2, 1.25)
//	_ = pq.DecreaseKey(0, 0.5)
//
//	for !pq.IsEmpty() {
//	    i, _ := pq.DeleteMin()
//	    fmt.Println(i)
//	}
//
// Keys without a natural order use NewFunc with a strict less function.
// Iterator and Ascending walk the heap in key order without modifying it.
//
// An IndexedMinHeap is not safe for concurrent use.
package indexpq
