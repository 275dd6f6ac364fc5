package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Unreachable is the distance reported for vertices the search never reached.
// It exceeds every feasible path sum.
var Unreachable = math.Inf(1)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeights indicates that a nil weight matrix was passed.
	ErrNilWeights = errors.New("dijkstra: weight matrix is nil")

	// ErrWeightShape indicates that the weight matrix is not n×n.
	ErrWeightShape = errors.New("dijkstra: weight matrix must be n×n")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight under WithStrictWeights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInvalidWeight indicates a NaN edge weight.
	ErrInvalidWeight = errors.New("dijkstra: edge weight is NaN")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// StrictWeights – reject negative weights instead of clamping them to zero.
// OnSettle      – called once per vertex when its distance becomes final.
type Options struct {
	StrictWeights bool
	OnSettle      func(v core.Vertex, dist float64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrictWeights makes negative weights an error (ErrNegativeWeight).
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeights = true
	}
}

// WithOnSettle registers a hook called when a vertex is extracted and its
// distance is final.
func WithOnSettle(fn func(v core.Vertex, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with clamping enabled and a no-op hook.
func DefaultOptions() Options {
	return Options{
		StrictWeights: false,
		OnSettle:      func(core.Vertex, float64) {},
	}
}

// Result is the output of one Dijkstra run.
//
// Parent[v] is v's predecessor on a shortest path (self for the source and
// for unreached vertices); Dist[v] is the shortest distance or Unreachable.
// Settled lists vertices in extraction order. Clamped counts negative
// weights that were read as 0.
type Result struct {
	Source  core.Vertex
	Parent  core.ParentTable
	Dist    []float64
	Settled []core.Vertex
	Clamped int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v core.Vertex) bool {
	return v >= 0 && int(v) < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// DistanceTo returns the shortest distance to v.
// Returns core.ErrNoPath when v is unreachable.
func (r *Result) DistanceTo(v core.Vertex) (float64, error) {
	if v < 0 || int(v) >= len(r.Dist) {
		return 0, fmt.Errorf("%w: %d", core.ErrVertexOutOfRange, v)
	}
	if !r.Reachable(v) {
		return Unreachable, fmt.Errorf("%w: %d → %d", core.ErrNoPath, r.Source, v)
	}

	return r.Dist[v], nil
}

// PathTo reconstructs a shortest path from Source to v.
func (r *Result) PathTo(v core.Vertex) ([]core.Vertex, error) {
	return core.ReconstructPath(r.Parent, r.Source, v)
}
