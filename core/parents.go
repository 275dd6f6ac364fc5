// File: parents.go
// Role: ParentTable produced by BFS/Dijkstra and path reconstruction.

package core

import "fmt"

// ParentTable maps every vertex to its predecessor on a search tree.
//
// A vertex that is its own parent is either the start of the search or was
// never reached. Index i holds the parent of Vertex(i).
type ParentTable []Vertex

// NewParentTable returns a table of size n where every vertex is its own
// parent.
func NewParentTable(n int) ParentTable {
	p := make(ParentTable, n)
	for i := range p {
		p[i] = Vertex(i)
	}

	return p
}

// HasParent reports whether v has a real predecessor (is not a self-parent).
// Out-of-range vertices report false.
func (p ParentTable) HasParent(v Vertex) bool {
	if v < 0 || int(v) >= len(p) {
		return false
	}

	return p[v] != v
}

// ReconstructPath walks the parent chain from end back to start and returns
// the vertices from start to end inclusive.
//
// start == end yields [start]. If the chain reaches a self-parent other
// than start, or does not reach start within len(p) steps (a malformed,
// cyclic table), ErrNoPath is returned.
//
// Errors: ErrVertexOutOfRange, ErrNoPath.
// Complexity: O(len(path)).
func ReconstructPath(p ParentTable, start, end Vertex) ([]Vertex, error) {
	n := len(p)
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, n)
	}
	if end < 0 || int(end) >= n {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrVertexOutOfRange, end, n)
	}

	rev := []Vertex{end}
	cur := end
	for steps := 0; cur != start; steps++ {
		next := p[cur]
		if next == cur || steps >= n {
			return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, start, end)
		}
		if next < 0 || int(next) >= n {
			return nil, fmt.Errorf("%w: parent %d of %d", ErrVertexOutOfRange, next, cur)
		}
		rev = append(rev, next)
		cur = next
	}

	// reverse to get start → end
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
