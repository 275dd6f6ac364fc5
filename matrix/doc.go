// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrices that carry
// per-edge costs (road length, speed limit, travel time) into the routing
// algorithms.
//
// A weight matrix is n×n for a graph of n vertices: entry (u,v) is the cost
// of edge u→v. Entries for non-edges are never read by the algorithms and
// may hold anything.
//
// Numeric policy:
//
//   - NaN is rejected by Set (ErrNaNInf); a NaN cost has no ordering.
//   - +Inf and -Inf are accepted: +Inf marks an impassable edge, negative
//     values are left to the consumer's policy (Dijkstra clamps them).
//
// Accessors never panic on user input: At/Set return ErrOutOfRange.
package matrix
