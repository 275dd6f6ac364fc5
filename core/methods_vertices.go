// File: methods_vertices.go
// Role: Per-vertex queries: VertexCount/Directed/Degree/Neighbors.

package core

// VertexCount returns n, fixed at construction.
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Degree returns the size of u's adjacency list (out-degree when directed).
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph) Degree(u Vertex) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// Neighbors returns a copy of u's adjacency list in its current order.
// The order reflects insertions and swap-removals; it is not sorted.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u Vertex) ([]Vertex, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Vertex, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// neighborsView returns adj[u] without copying. Callers in this package
// must not retain or mutate it.
func (g *Graph) neighborsView(u Vertex) []Vertex { return g.adj[u] }

// Walk calls fn for every neighbor of u without allocating.
// fn must not mutate g. Iteration stops early if fn returns false.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(u)).
func (g *Graph) Walk(u Vertex, fn func(v Vertex) bool) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	for _, v := range g.neighborsView(u) {
		if !fn(v) {
			break
		}
	}

	return nil
}
