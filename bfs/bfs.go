// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/queue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	opts   BFSOptions
	ctx    context.Context
	queue  *queue.Queue
	marked []bool
	res    *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// or any hook/context error.
func BFS(g *core.Graph, start core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  queue.New(),
		marked: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.Vertex, 0, n),
			Depth:  make([]int, n),
			Parent: core.NewParentTable(n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with start vertex (its own parent)
	w.mark(start, 0)

	return w.res, w.loop()
}

// Reachable returns the set of vertices marked by a BFS from start.
func Reachable(g *core.Graph, start core.Vertex) ([]bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	marked := make([]bool, len(res.Depth))
	for v, d := range res.Depth {
		marked[v] = d >= 0
	}

	return marked, nil
}

// mark records v at depth d, calls OnEnqueue, and enqueues it.
func (w *walker) mark(v core.Vertex, d int) {
	w.marked[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue.PushBack(v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur, err := w.queue.PopFront()
		if err != nil {
			return err
		}
		if err = w.visit(cur); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(cur); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v core.Vertex) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors marks each unseen neighbor of cur with cur as its parent.
func (w *walker) enqueueNeighbors(cur core.Vertex) error {
	next := w.res.Depth[cur] + 1

	return w.graph.Walk(cur, func(nbr core.Vertex) bool {
		if !w.marked[nbr] {
			w.res.Parent[nbr] = cur
			w.mark(nbr, next)
		}
		return true
	})
}
