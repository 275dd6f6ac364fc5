// Package core defines Vertex, Edge, Graph, GraphOption, the sentinel errors
// and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates NewGraph was asked for a negative vertex count.
	ErrNegativeSize = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex argument outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNoPath indicates that a parent table does not connect end back to start.
	ErrNoPath = errors.New("core: no path exists")
)

// Vertex identifies a node of a Graph. Valid values are 0 ≤ v < VertexCount().
type Vertex int

// Edge is one stored (From, To) pair.
// For undirected graphs Edges() reports each edge once with From ≤ To.
type Edge struct {
	From Vertex
	To   Vertex
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a fixed-size adjacency-list graph.
//
// n is immutable; adj[u] lists the heads of edges leaving u with no
// duplicates. m counts stored adjacency entries, so an undirected edge
// contributes 2 (a self-loop in an undirected graph is stored once but
// still contributes 2, keeping EdgeCount() == m/2 exact).
type Graph struct {
	n        int        // vertex count
	m        int        // stored adjacency entries (see above)
	directed bool       // one-way edges when true
	adj      [][]Vertex // adjacency lists, indexed by Vertex
}

// NewGraph creates a graph with n isolated vertices and no edges.
// The default is undirected; pass WithDirected(true) for a road map.
//
// Errors: ErrNegativeSize if n < 0.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	g := &Graph{
		n:   n,
		adj: make([][]Vertex, n),
	}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	return g, nil
}

// checkVertex returns a wrapped ErrVertexOutOfRange if v is not in [0, n).
func (g *Graph) checkVertex(v Vertex) error {
	if v < 0 || int(v) >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}
