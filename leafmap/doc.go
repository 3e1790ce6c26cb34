// Package leafmap computes leaf functions and fully leafed induced subtrees.
//
// For a simple undirected graph G on n vertices, the leaf function L_G maps
// every size i in 0..n to the maximum number of leaves of an induced subtree
// of G with exactly i vertices, or to "absent" when G has no induced subtree
// of that size. A fully leafed induced subtree is one that attains L_G(i).
//
// Three algorithms are available through Solve:
//
//	General    exhaustive branch-and-bound over a subtree.Configuration,
//	           pruned with its leaf potential (Dist or Naive).
//	Tree       a polynomial dynamic program over directed edges; the input
//	           must be a tree. Also exposed as TreeLeafMap.
//	Hypercube  branch-and-bound seeded with hypercube symmetries; the input
//	           must be Q_d with d-bit labels, d ≤ 8.
//
// InducedSubtrees enumerates every induced subtree, and Classify groups a
// family of graphs by leaf function in parallel. IsKCaterpillar and the
// prefix-normal word checks relate trees to the shape of their leaf maps.
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(10))
//	res, err := leafmap.Solve(ctx, g)
//	fmt.Println(res.LeafMap()) // {0: 0, 1: 0, 2: 2, ..., 9: 2, 10: None}
//
// Errors:
//
//	ErrGraphNil          nil graph
//	ErrOptionViolation   invalid option
//	ErrUnsupportedInput  graph does not fit the algorithm
//	ErrSizeTooLarge      hypercube dimension above 8
package leafmap
