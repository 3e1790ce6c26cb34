// Package builder provides deterministic constructors for the graph families
// that flis searches: rings, paths, stars, wheels, complete and complete
// bipartite graphs, grids, the Petersen graph, balanced trees, hypercubes and
// seeded random graphs.
//
// Every factory returns a Constructor closure; BuildGraph creates a fresh
// core.Graph, resolves the BuilderOption list into an immutable builderConfig
// and applies the constructors in order:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomSparse(9, 0.4))
//
// ID schemes:
//
//	DefaultIDFn         "0","1","2",...
//	ExcelColumnIDFn     "A".."Z","AA",...
//	SymbolNumberIDFn    "v0","v1",... (prefix chosen by caller)
//	BinaryIDFn(width)   fixed-width bit strings, used by Hypercube
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order produce identical graphs.
//   - Constructors never panic; parameter errors wrap the package sentinels
//     (ErrTooFewVertices, ErrTooManyVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
//   - Option constructors (WithX) panic on meaningless input.
package builder
