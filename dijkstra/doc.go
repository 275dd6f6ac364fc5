// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over a core.Graph whose edge costs live in a dense n×n matrix.Dense.
//
// Overview:
//
//   - Distances start at Unreachable (+Inf) except the source, which is 0.
//   - The unvisited vertex with the least tentative distance is extracted
//     from a pqueue.PQueue, marked visited (final), and each outgoing edge to
//     an unvisited neighbor is relaxed.
//   - A relaxation that improves a neighbor's distance records the parent
//     and either pushes the neighbor (first discovery) or adjusts its queued
//     priority in place; the queue never holds two entries for one vertex.
//   - The run ends when the queue is empty. Unreached vertices keep the
//     self-parent sentinel and Unreachable distance.
//
// Weight policy:
//
//   - Only entries (u,v) for edges u→v of the graph are read.
//   - Negative weights are clamped to 0 by default and counted in
//     Result.Clamped. WithStrictWeights() rejects them with ErrNegativeWeight.
//   - +Inf weights mark impassable edges; they are never relaxed.
//   - NaN weights are rejected (ErrInvalidWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V); each vertex is pushed at most once and
//     adjusted at most once per incoming edge, each O(log V).
//   - Space: O(V).
//
// Errors (sentinel):
//
//   - ErrNilGraph        nil graph.
//   - ErrNilWeights      nil weight matrix.
//   - ErrWeightShape     weight matrix is not n×n.
//   - ErrVertexNotFound  source outside [0, n).
//   - ErrNegativeWeight  negative weight under WithStrictWeights.
//   - ErrInvalidWeight   NaN weight.
//
// Thread safety:
//
//   - Dijkstra only reads g and the weights; concurrent runs on the same
//     unmodified inputs are safe. Each run owns its own priority queue.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0, weights)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo(2)
package dijkstra
