package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleBFS finds the fewest-hop route in a small directed road map.
func ExampleBFS() {
	// 0 → 1 → 2 → 3, plus a shortcut 0 → 4 → 3
	g, _ := core.NewGraph(5, core.WithDirected(true))
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(0, 4)
	_ = g.AddEdge(4, 3)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)
	fmt.Println(path)
	fmt.Println(res.Depth)
	// Output:
	// [0 4 3]
	// [0 1 2 2 1]
}

// ExampleIsConnected contrasts a strongly connected cycle with a broken one.
func ExampleIsConnected() {
	cycle, _ := core.NewGraph(4, core.WithDirected(true))
	for _, e := range [][2]core.Vertex{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_ = cycle.AddEdge(e[0], e[1])
	}
	ok, _ := bfs.IsConnected(cycle)
	fmt.Println("cycle:", ok)

	_ = cycle.RemoveEdge(3, 0)
	_ = cycle.AddEdge(0, 3)
	ok, _ = bfs.IsConnected(cycle)
	fmt.Println("broken:", ok)
	// Output:
	// cycle: true
	// broken: false
}
