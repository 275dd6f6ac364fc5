package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/pqueue"
)

// Dijkstra computes shortest distances from source to every vertex of g,
// reading the cost of edge u→v from weights.At(u, v).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weights must be non-nil (ErrNilWeights) and n×n (ErrWeightShape).
//  3. source must be in [0, n) (ErrVertexNotFound).
//
// Weight errors (ErrNegativeWeight, ErrInvalidWeight) are detected lazily
// during relaxation, so only edges reachable from source are inspected.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source core.Vertex, weights *matrix.Dense, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if weights == nil {
		return nil, ErrNilWeights
	}
	n := g.VertexCount()
	if weights.Rows() != n || weights.Cols() != n {
		return nil, fmt.Errorf("%w: got %d×%d for %d vertices", ErrWeightShape, weights.Rows(), weights.Cols(), n)
	}
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, source, n)
	}

	// 3) Prepare runner state
	r := &runner{
		g:       g,
		w:       weights,
		options: cfg,
		visited: make([]bool, n),
		pq:      pqueue.New(n),
		res: &Result{
			Source:  source,
			Parent:  core.NewParentTable(n),
			Dist:    make([]float64, n),
			Settled: make([]core.Vertex, 0, n),
		},
	}

	// 4) Initialize and run main loop
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph    // input graph; read-only
	w       *matrix.Dense  // edge costs; read-only
	options Options        // StrictWeights, OnSettle
	visited []bool         // true once a vertex's distance is final
	pq      *pqueue.PQueue // at most one entry per vertex
	res     *Result
}

// init sets dist[v] = +Inf for all v, dist[source] = 0, and enqueues source.
func (r *runner) init() {
	for i := range r.res.Dist {
		r.res.Dist[i] = Unreachable
	}
	r.res.Dist[r.res.Source] = 0
	// pq is empty and priority is finite; Push cannot fail here.
	_ = r.pq.Push(r.res.Source, 0)
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// outgoing edges until the queue drains.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		item, err := r.pq.Pop()
		if err != nil {
			return err
		}
		u := item.Key
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.res.Settled = append(r.res.Settled, u)
		r.options.OnSettle(u, r.res.Dist[u])

		if err = r.relaxFrom(u); err != nil {
			return err
		}
	}

	return nil
}

// relaxFrom relaxes every edge u→v with v not yet visited.
func (r *runner) relaxFrom(u core.Vertex) error {
	var relaxErr error
	walkErr := r.g.Walk(u, func(v core.Vertex) bool {
		if r.visited[v] {
			return true
		}
		if relaxErr = r.relax(u, v); relaxErr != nil {
			return false
		}

		return true
	})
	if walkErr != nil {
		return walkErr
	}

	return relaxErr
}

// relax applies the weight policy to edge u→v and improves dist[v] if possible.
func (r *runner) relax(u, v core.Vertex) error {
	w, err := r.w.At(int(u), int(v))
	if err != nil {
		return err
	}
	switch {
	case math.IsNaN(w):
		return fmt.Errorf("%w: edge %d→%d", ErrInvalidWeight, u, v)
	case math.IsInf(w, 1):
		return nil // impassable
	case w < 0:
		if r.options.StrictWeights {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}
		r.res.Clamped++
		w = 0
	}

	nd := r.res.Dist[u] + w
	if nd >= r.res.Dist[v] {
		return nil
	}
	r.res.Dist[v] = nd
	r.res.Parent[v] = u
	if r.pq.Contains(v) {
		return r.pq.AdjustPriority(v, nd)
	}

	return r.pq.Push(v, nd)
}
