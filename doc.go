// Package flis computes leaf functions of simple undirected graphs.
//
// For a graph G on n vertices, the leaf function L_G maps every size
// i in 0..n to the largest number of leaves of an induced subtree of G with
// exactly i vertices, or to "none" when no induced subtree of that size
// exists. The subtrees reaching the maximum are fully leafed induced subtrees.
//
// Layout:
//
//	core/     thread-safe string-ID graph (vertices, undirected edges, induced views)
//	builder/  deterministic graph families: cycles, stars, wheels, hypercubes, random trees...
//	bfs/      breadth-first traversal and connected components
//	subtree/  the incremental Configuration: include / exclude / undo plus leaf potentials
//	leafmap/  branch-and-bound solver, tree dynamic program, hypercube search,
//	          induced subtree enumeration and classification of graph families
//	graphio/  "a -- b -- c;" edge-list reader and writer
//	store/    Badger-backed catalog of computed leaf maps
//	render/   DOT / SVG drawing of a subtree inside its graph
//	cmd/flis  command-line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Petersen())
//	res, err := leafmap.Solve(ctx, g)
//	if err != nil { ... }
//	fmt.Println(res.LeafMap())              // {0: 0, 1: 0, 2: 2, 3: 2, 4: 3, ...}
//	fmt.Println(res.FullyLeafedSubtrees(6)) // witnesses of size 6
package flis
