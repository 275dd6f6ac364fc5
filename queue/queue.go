package queue

import (
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

// ErrEmpty is returned by PeekFront and PopFront on an empty queue.
var ErrEmpty = errors.New("queue: queue is empty")

// node is one link of the list.
type node struct {
	value core.Vertex
	next  *node
}

// Queue is a FIFO of vertices. The zero value is an empty queue.
type Queue struct {
	head *node // front, popped first
	tail *node // back, pushed last
	size int
}

// New returns an empty queue.
func New() *Queue { return &Queue{} }

// PushBack appends v at the back.
func (q *Queue) PushBack(v core.Vertex) {
	n := &node{value: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// PeekFront returns the front value without removing it.
func (q *Queue) PeekFront() (core.Vertex, error) {
	if q.head == nil {
		return 0, ErrEmpty
	}

	return q.head.value, nil
}

// PopFront removes and returns the front value.
func (q *Queue) PopFront() (core.Vertex, error) {
	if q.head == nil {
		return 0, ErrEmpty
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil // let the GC drop the chain eagerly
	q.size--

	return n.value, nil
}

// Len returns the number of queued values.
func (q *Queue) Len() int { return q.size }

// IsEmpty reports whether the queue holds no values.
func (q *Queue) IsEmpty() bool { return q.size == 0 }
