package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for priority-queue operations.
var (
	// ErrEmpty is returned by Pop and Peek when the queue holds no entries.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrDuplicateKey is returned by Push when the key is already queued.
	ErrDuplicateKey = errors.New("pqueue: key already present")

	// ErrKeyNotFound is returned by AdjustPriority for an absent key.
	ErrKeyNotFound = errors.New("pqueue: key not found")

	// ErrInvalidPriority is returned for NaN priorities.
	ErrInvalidPriority = errors.New("pqueue: priority is NaN")
)

// Item is one (key, priority) entry.
type Item struct {
	Key      core.Vertex
	Priority float64
}

// PQueue is a min-heap of Items with at most one entry per key.
// It is not safe for concurrent use.
type PQueue struct {
	h itemHeap
}

// New returns an empty queue with room for capacityHint entries.
func New(capacityHint int) *PQueue {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &PQueue{h: itemHeap{
		items: make([]Item, 0, capacityHint),
		index: make(map[core.Vertex]int, capacityHint),
	}}
}

// Push inserts key with the given priority.
//
// Errors: ErrDuplicateKey, ErrInvalidPriority.
// Complexity: O(log n).
func (pq *PQueue) Push(key core.Vertex, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: key %d", ErrInvalidPriority, key)
	}
	if _, ok := pq.h.index[key]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}
	heap.Push(&pq.h, Item{Key: key, Priority: priority})

	return nil
}

// Pop removes and returns the minimum entry.
//
// Errors: ErrEmpty.
// Complexity: O(log n).
func (pq *PQueue) Pop() (Item, error) {
	if pq.h.Len() == 0 {
		return Item{}, ErrEmpty
	}

	return heap.Pop(&pq.h).(Item), nil
}

// Peek returns the minimum entry without removing it.
//
// Errors: ErrEmpty.
func (pq *PQueue) Peek() (Item, error) {
	if pq.h.Len() == 0 {
		return Item{}, ErrEmpty
	}

	return pq.h.items[0], nil
}

// AdjustPriority sets a new priority for a queued key and restores heap
// order from the key's slot.
//
// Errors: ErrKeyNotFound, ErrInvalidPriority.
// Complexity: O(log n).
func (pq *PQueue) AdjustPriority(key core.Vertex, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: key %d", ErrInvalidPriority, key)
	}
	i, ok := pq.h.index[key]
	if !ok {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	pq.h.items[i].Priority = priority
	heap.Fix(&pq.h, i)

	return nil
}

// Contains reports whether key has a live entry.
func (pq *PQueue) Contains(key core.Vertex) bool {
	_, ok := pq.h.index[key]

	return ok
}

// Priority returns the current priority of a queued key.
func (pq *PQueue) Priority(key core.Vertex) (float64, bool) {
	i, ok := pq.h.index[key]
	if !ok {
		return 0, false
	}

	return pq.h.items[i].Priority, true
}

// Len returns the number of live entries.
func (pq *PQueue) Len() int { return pq.h.Len() }

// IsEmpty reports whether the queue holds no entries.
func (pq *PQueue) IsEmpty() bool { return pq.h.Len() == 0 }

// itemHeap implements heap.Interface and keeps index[key] == slot of key.
// container/heap's down step prefers the left child unless the right one is
// strictly smaller, which is the tie-break this queue documents.
type itemHeap struct {
	items []Item
	index map[core.Vertex]int
}

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h.items) }

// Less orders by ascending priority.
func (h itemHeap) Less(i, j int) bool { return h.items[i].Priority < h.items[j].Priority }

// Swap exchanges two slots and updates the key index.
func (h itemHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].Key] = i
	h.index[h.items[j].Key] = j
}

// Push appends x; called by heap.Push.
func (h *itemHeap) Push(x interface{}) {
	it := x.(Item)
	h.index[it.Key] = len(h.items)
	h.items = append(h.items, it)
}

// Pop removes the last slot; called by heap.Pop.
func (h *itemHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	delete(h.index, it.Key)

	return it
}
