// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/matrix"
)

// ExampleDijkstra_triangle shows a two-hop detour beating a costly direct road.
func ExampleDijkstra_triangle() {
	// 1) Three locations, directed roads.
	g, _ := core.NewGraph(3, core.WithDirected(true))
	w, _ := matrix.NewSquare(3)

	// 2) 0→1 (1), 1→2 (2), 0→2 (5).
	for _, e := range []struct {
		u, v core.Vertex
		c    float64
	}{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}} {
		_ = g.AddEdge(e.u, e.v)
		_ = w.Set(int(e.u), int(e.v), e.c)
	}

	// 3) Solve from 0.
	res, err := dijkstra.Dijkstra(g, 0, w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(2)
	fmt.Println("dist:", res.Dist)
	fmt.Println("path to 2:", path)

	// Output:
	// dist: [0 1 3]
	// path to 2: [0 1 2]
}

// ExampleWithStrictWeights contrasts the default clamping with strict mode.
func ExampleWithStrictWeights() {
	g, _ := core.NewGraph(2, core.WithDirected(true))
	w, _ := matrix.NewSquare(2)
	_ = g.AddEdge(0, 1)
	_ = w.Set(0, 1, -3)

	res, _ := dijkstra.Dijkstra(g, 0, w)
	fmt.Println("clamped:", res.Dist[1], res.Clamped)

	_, err := dijkstra.Dijkstra(g, 0, w, dijkstra.WithStrictWeights())
	fmt.Println(err)

	// Output:
	// clamped: 0 1
	// dijkstra: negative edge weight encountered: edge 0→1 weight=-3
}
