// Package bfs provides breadth-first search over any undirected neighbor
// source (bfs.Graph, satisfied by *core.Graph), returning unweighted
// shortest-path distances and visit order.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance.
//   - Components / IsConnected partition g into connected components; flis uses
//     them to validate tree inputs and to describe graphs in the CLI.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// The FIFO frontier is a gods linkedlistqueue.
//
// Options
//
//   - WithContext(ctx): cancellation between dequeues.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, and ctx.Err().
package bfs
