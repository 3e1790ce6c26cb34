package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/flis/bfs"
	"github.com/katalvlaran/flis/core"
)

// ExampleBFS_distances counts hops from A. Route A–B–C–D–K has 4 hops,
// route A–E–F–K has 3.
func ExampleBFS_distances() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
	} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["K"])
	// Output:
	// [A B E C F D K]
	// 3
}

// ExampleComponents splits a graph into its connected pieces.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("x", "y")
	_ = g.AddVertex("m")

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[a b] [m] [x y]]
}
