// Package core provides the thread-safe, in-memory simple undirected Graph used
// as the read-only collaborator of every search in flis.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; every edge is mirrored in the adjacency index.
//   - Simple: self-loops are rejected (ErrLoopNotAllowed) and a second edge
//     between the same endpoints is rejected (ErrMultiEdgeNotAllowed).
//   - String vertex IDs; edges receive atomic IDs "e1", "e2", ...
//   - One sync.RWMutex guards vertices, edges and adjacency together.
//
// Deterministic iteration:
//
//	Vertices()         // IDs sorted lexicographically
//	NeighborIDs(id)    // unique neighbor IDs sorted lexicographically
//	Edges()            // sorted by (From, To)
//
// The search packages (subtree, leafmap) only need the collaborator contract
//
//	Vertices() []string
//	NeighborIDs(id string) ([]string, error)
//	VertexCount() int
//
// which *Graph satisfies; they never mutate the graph.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
