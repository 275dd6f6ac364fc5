package bfs

import "github.com/katalvlaran/lvroute/core"

// IsConnected reports whether every vertex is reachable from vertex 0 in g
// and in its edge reversal. For a directed graph that is strong
// connectivity; for an undirected graph the reversal is a plain copy and
// the test reduces to ordinary connectivity.
//
// g is never modified; the reversed graph is built fresh and dropped.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V + E) plus the cost of g.Reverse().
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return false, ErrEmptyGraph
	}

	forward, err := Reachable(g, 0)
	if err != nil {
		return false, err
	}
	if !all(forward) {
		return false, nil
	}
	backward, err := Reachable(g.Reverse(), 0)
	if err != nil {
		return false, err
	}

	return all(backward), nil
}

// all reports whether every mark is set.
func all(marked []bool) bool {
	for _, m := range marked {
		if !m {
			return false
		}
	}

	return true
}
