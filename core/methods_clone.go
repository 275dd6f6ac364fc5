// File: methods_clone.go
// Role: Derived graphs: Clone (deep copy) and Reverse (edge reversal).
// Concurrency:
//   - Both only read the receiver; the result is independently owned.

package core

// Clone returns a deep copy with identical size, directedness and adjacency
// order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		n:        g.n,
		m:        g.m,
		directed: g.directed,
		adj:      make([][]Vertex, g.n),
	}
	for u, nbr := range g.adj {
		if len(nbr) == 0 {
			continue
		}
		clone.adj[u] = make([]Vertex, len(nbr))
		copy(clone.adj[u], nbr)
	}

	return clone
}

// Reverse returns a new graph of the same size and directedness in which
// every edge u→v of g becomes v→u. g itself is never modified.
//
// For undirected graphs the result has the same edge set as g.
// Reverse(Reverse(g)) has the same edge set as g.
//
// Complexity: O(V + E·deg) due to AddEdge's duplicate check.
func (g *Graph) Reverse() *Graph {
	rev := &Graph{
		n:        g.n,
		directed: g.directed,
		adj:      make([][]Vertex, g.n),
	}
	var (
		u   int
		nbr []Vertex
		v   Vertex
	)
	for u, nbr = range g.adj {
		for _, v = range nbr {
			// endpoints come from g, so they are always in range
			_ = rev.AddEdge(v, Vertex(u))
		}
	}

	return rev
}
