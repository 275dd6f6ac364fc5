// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in ascending order and each adjacency list in
//     its current order.
//   - RemoveEdge swaps the last neighbor into the freed slot; adjacency order
//     is not preserved across removals.

package core

// EdgeCount returns the number of edges: m for directed graphs, m/2 for
// undirected graphs (each undirected edge is stored twice).
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g.directed {
		return g.m
	}

	return g.m / 2
}

// HasEdge reports whether v appears in u's adjacency list.
//
// Errors: ErrVertexOutOfRange if u or v is outside [0, n).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v Vertex) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}

	return g.search(u, v) >= 0, nil
}

// AddEdge inserts the edge u→v. Adding an existing edge is a no-op.
// In an undirected graph the mirror v→u is inserted as well.
//
// Steps:
//  1. Validate both endpoints.
//  2. Return early if v already sits in adj[u].
//  3. Append v to adj[u]; m++.
//  4. Undirected: append u to adj[v] unless u == v; m++ regardless.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v Vertex) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if g.search(u, v) >= 0 {
		return nil
	}

	g.adj[u] = append(g.adj[u], v)
	g.m++
	if !g.directed {
		if u != v {
			g.adj[v] = append(g.adj[v], u)
		}
		g.m++
	}

	return nil
}

// RemoveEdge deletes the edge u→v (and its mirror for undirected graphs).
// Removing a missing edge is a no-op.
//
// The last neighbor is moved into the freed slot and the list shrinks by
// one, so neighbor order changes.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v Vertex) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	loc := g.search(u, v)
	if loc < 0 {
		return nil
	}

	g.swapRemove(u, loc)
	g.m--
	if !g.directed {
		if u != v {
			// The mirror must exist: AddEdge always inserts both halves.
			g.swapRemove(v, g.search(v, u))
		}
		g.m--
	}

	return nil
}

// Edges returns every edge of the graph.
// Undirected edges are reported once, as (min, max).
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	var (
		u   int
		nbr []Vertex
		v   Vertex
	)
	for u, nbr = range g.adj {
		for _, v = range nbr {
			if !g.directed && v < Vertex(u) {
				continue // reported from the smaller endpoint
			}
			out = append(out, Edge{From: Vertex(u), To: v})
		}
	}

	return out
}

// search returns the index of v in adj[u], or -1.
func (g *Graph) search(u, v Vertex) int {
	for i, w := range g.adj[u] {
		if w == v {
			return i
		}
	}

	return -1
}

// swapRemove drops adj[u][i] by moving the last entry into slot i.
func (g *Graph) swapRemove(u Vertex, i int) {
	list := g.adj[u]
	last := len(list) - 1
	list[i] = list[last]
	g.adj[u] = list[:last]
}

// checkPair validates both endpoints of an edge.
func (g *Graph) checkPair(u, v Vertex) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}

	return g.checkVertex(v)
}
