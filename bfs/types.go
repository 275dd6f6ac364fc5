package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned by IsConnected for a graph with no vertices:
	// there is no vertex 0 to search from.
	ErrEmptyGraph = errors.New("bfs: graph has no vertices")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnEnqueue is called when a vertex is marked and enqueued.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(v core.Vertex, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.Vertex, depth int) error
}

// DefaultOptions returns a BFSOptions with background context and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Vertex, int) {},
		OnVisit:   func(core.Vertex, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.Vertex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start:  the search root.
//   - Order:  vertices in visit sequence.
//   - Depth:  hop distance from Start, -1 when unreached.
//   - Parent: predecessor table; self-parent means start or unreached.
type Result struct {
	Start  core.Vertex
	Order  []core.Vertex
	Depth  []int
	Parent core.ParentTable
}

// Reached reports whether v was marked by the search.
func (r *Result) Reached(v core.Vertex) bool {
	return v >= 0 && int(v) < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the fewest-hop path from Start to dest.
// Returns core.ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.Vertex) ([]core.Vertex, error) {
	return core.ReconstructPath(r.Parent, r.Start, dest)
}
