// Package queue provides the FIFO frontier used by breadth-first search.
//
// What
//
//   - A singly linked FIFO of core.Vertex values with head and tail pointers.
//   - PushBack, PeekFront, PopFront, Len and IsEmpty all run in O(1).
//   - PeekFront/PopFront on an empty queue return ErrEmpty instead of
//     panicking.
//
// Lifetime
//
//	A Queue is scoped to one algorithm call and discarded when it returns.
//	It is not safe for concurrent use.
//
// Usage
//
//	q := queue.New()
//	q.PushBack(start)
//	for !q.IsEmpty() {
//	    v, _ := q.PopFront()
//	    // ...
//	}
package queue
