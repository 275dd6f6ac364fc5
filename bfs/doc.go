// Package bfs provides breadth-first search over a core.Graph, returning a
// parent table, visit order and hop depths, plus the double-BFS
// connectivity test.
//
// What
//
//   - BFS(g, start): explores vertices in non-decreasing hop count from
//     start. Each dequeued vertex marks every unmarked neighbor, records
//     itself as that neighbor's parent and enqueues it.
//   - Result.Parent: core.ParentTable; the start and every unreached vertex
//     are their own parent.
//   - Result.Depth: hop count from start, -1 when unreached.
//   - Result.PathTo(dest): start → dest via core.ReconstructPath.
//   - Reachable(g, start): only the marked set.
//   - IsConnected(g): BFS from vertex 0 on g and on g.Reverse(); true iff
//     both searches mark every vertex. For directed graphs this is strong
//     connectivity, for undirected graphs ordinary connectivity.
//
// Hooks (functional options, all optional):
//
//   - WithContext(ctx):    cancellation checked once per dequeued vertex.
//   - WithOnEnqueue(fn):   called when a vertex is marked and enqueued.
//   - WithOnVisit(fn):     called when a vertex is dequeued; an error aborts.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            nil graph pointer.
//   - ErrStartVertexNotFound start outside [0, n).
//   - ErrEmptyGraph          IsConnected on a graph with no vertices.
//   - Wrapped hook errors and context errors.
package bfs
