// Package subtree maintains an induced subtree of a simple undirected graph
// under incremental growth and LIFO undo, and bounds how many leaves any
// completion of it can reach.
//
// A Configuration assigns every vertex exactly one Status:
//
//	Unseen            no relation to the subtree yet
//	Border            adjacent to exactly one included vertex; may be added next
//	Included(degree)  in the subtree, degree = number of included neighbors
//	Excluded(cause)   barred for the rest of the branch; cause is the vertex
//	                  whose inclusion closed a would-be cycle, or the vertex
//	                  itself when excluded by a branching decision
//
// alongside running counters (subtree size, leaf count, border size, number
// of excluded vertices) and a history stack. IncludeVertex and ExcludeVertex
// push onto the history; UndoLastOperation pops the most recent entry and
// restores the exact previous state. Only O(deg(v)) work is done per step.
//
// LeafPotential(i) answers "how many leaves can an extension of this subtree
// to exactly i vertices have at most?". Two strategies exist:
//
//	Naive  every border vertex may become a leaf; one leaf is lost once the
//	       border is exhausted.
//	Dist   a greedy simulation over a distance partition of the non-excluded
//	       vertices, driven by a max-heap of branching degrees. Results are
//	       memoized until the next mutation.
//
// Both are admissible upper bounds and are only used for pruning.
//
// Vertices are addressed by dense indices 0..n-1 assigned in the order of
// Graph.Vertices() (sorted IDs for *core.Graph); Index, ID and IDs convert.
//
// A Configuration is not safe for concurrent use. Searches that run in
// parallel use one Configuration each.
//
// Errors:
//
//	ErrGraphNil          nil graph passed to New
//	ErrOptionViolation   invalid option (e.g. WithMaxDegree(0))
//	ErrInvalidOperation  include/exclude on a vertex in the wrong state, undo on
//	                     empty history, LeafPotential below the current size
package subtree
