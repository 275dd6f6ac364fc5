// Package lvroute is a small road-network routing toolkit: a fixed-size
// graph of numbered locations, the queues that drive its searches, and a
// trip planner on top.
//
// Packages:
//
//	core/      — Graph (fixed vertex count, adjacency lists), ParentTable, ReconstructPath
//	queue/     — FIFO queue used by BFS
//	pqueue/    — min-heap keyed by vertex with in-place priority adjustment
//	bfs/       — breadth-first search, reachability, strong connectivity
//	dijkstra/  — single-source shortest paths over an n×n weight matrix
//	matrix/    — dense float64 matrices for edge weights
//	roadfile/  — parser and validator for road-network description files
//	planner/   — Network construction, trip planning, itinerary text
//
// The lvroute command (cmd/lvroute) plans every trip in a file, checks
// files, and serves trip queries over HTTP (internal/server).
//
// Quick start:
//
//	rec, _ := roadfile.ParseFile("map.txt")
//	nw, _ := planner.NewNetwork(rec)
//	it, _ := nw.Plan(ctx, rec.Trips[0])
//	_ = planner.WriteItinerary(os.Stdout, it)
package lvroute
