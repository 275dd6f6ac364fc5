// Package pqueue provides a binary min-heap keyed by core.Vertex with
// in-place priority adjustment, the frontier of Dijkstra's algorithm.
//
// What
//
//   - Push(key, priority): insert and percolate up.
//   - Pop(): remove the minimum; the last entry moves to the root and
//     percolates down toward the smaller child (the left child wins ties).
//   - Peek(): read the minimum without removing it.
//   - AdjustPriority(key, p): change a live key's priority in place and
//     restore heap order. A decrease percolates up; an increase percolates
//     down.
//
// Invariants
//
//   - At most one live entry per key. Pushing a key that is already queued
//     returns ErrDuplicateKey; callers adjust instead.
//   - Heap order (parent ≤ children) holds after every public call.
//   - Equal priorities pop in no guaranteed order.
//
// Complexity
//
//   - Push / Pop / AdjustPriority: O(log n). A key→slot index removes the
//     linear scan a plain heap would need to locate a key.
//   - Peek / Len / IsEmpty / Contains: O(1).
//
// The backing slice grows as needed; there is no capacity limit.
//
// Errors
//
//   - ErrEmpty            Pop or Peek on an empty queue.
//   - ErrDuplicateKey     Push of a key already present.
//   - ErrKeyNotFound      AdjustPriority of an absent key.
//   - ErrInvalidPriority  NaN priority (breaks ordering).
package pqueue
