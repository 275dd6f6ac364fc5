// Package core provides the fixed-size Graph used by every lvroute algorithm,
// together with the ParentTable produced by traversals.
//
// The Graph G = (V,E) has a vertex set fixed at construction time:
//
//   - Vertices are the integers 0..n-1 (type Vertex); n never changes.
//   - Directed vs. undirected is chosen once (WithDirected) and never changes.
//   - Edges live in per-vertex adjacency slices; duplicates are rejected
//     silently (AddEdge is idempotent).
//   - Undirected edges are stored in both endpoint lists, so the internal
//     counter is doubled and EdgeCount() reports m/2.
//
// Why a fixed vertex set?
//
//   - Road maps are loaded once: locations are numbered 0..n-1 by the input
//     file, and algorithms index dense per-vertex tables (parents, distances,
//     visited marks) directly by Vertex.
//   - Index-based storage keeps BFS and Dijkstra allocation-free per step.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//
//	// Queries
//	VertexCount() int                     // O(1)
//	EdgeCount() int                       // O(1)
//	Directed() bool                       // O(1)
//	HasEdge(u, v Vertex) (bool, error)    // O(deg(u))
//	Degree(u Vertex) (int, error)         // O(1)
//	Neighbors(u Vertex) ([]Vertex, error) // O(deg(u)), insertion order
//	Edges() []Edge                        // O(V+E)
//
//	// Mutation
//	AddEdge(u, v Vertex) error            // O(deg(u)), idempotent
//	RemoveEdge(u, v Vertex) error         // O(deg(u)), swap-with-last
//
//	// Derived graphs
//	Reverse() *Graph                      // O(V+E), new graph, edges swapped
//	Clone() *Graph                        // O(V+E), deep copy
//
//	// Parent tables
//	NewParentTable(n int) ParentTable
//	ReconstructPath(p ParentTable, start, end Vertex) ([]Vertex, error)
//
// Ordering:
//
//	RemoveEdge moves the last neighbor into the removed slot, so neighbor
//	order is NOT stable across removals. Callers must not depend on it.
//
// Concurrency:
//
//	A Graph is not synchronized. Any number of goroutines may read a Graph
//	that nobody mutates (BFS and Dijkstra only read); AddEdge/RemoveEdge
//	require exclusive access.
//
// Errors:
//
//	ErrNegativeSize      – NewGraph called with n < 0
//	ErrVertexOutOfRange  – a vertex argument outside [0, n)
//	ErrNoPath            – ReconstructPath could not walk from end back to start
package core
