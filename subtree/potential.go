// File: potential.go
// Role: admissible upper bounds on the leaf count of any extension.
// Determinism:
//   - Both estimators depend only on the Configuration state.

package subtree

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// LeafPotential returns an upper bound on the number of leaves of any induced
// subtree of exactly i vertices that extends the current subtree. Sizes the
// Dist simulation cannot reach report 0.
//
// The Naive bound is used for the Naive strategy and whenever the subtree has
// at most two vertices (no internal vertex to measure distances from).
//
// The bound is admissible once the subtree has a vertex. On an empty
// configuration it reports i−1 for i ≥ 1, so LeafPotential(2) is 1 although an
// edge has two leaves; a search must not prune its root node on it.
//
// Errors:
//   - ErrInvalidOperation if i < SubtreeSize().
func (c *Configuration) LeafPotential(i int) (int, error) {
	if i < c.size {
		return 0, fmt.Errorf("LeafPotential: size %d below subtree size %d: %w", i, c.size, ErrInvalidOperation)
	}
	if c.strategy == Naive || c.size <= 2 {
		return c.leafPotentialWeak(i), nil
	}

	return c.leafPotentialDist(i), nil
}

// leafPotentialWeak: every border vertex may be added as a leaf; past the
// border, one more vertex must hang off a non-border vertex and costs a leaf.
func (c *Configuration) leafPotentialWeak(i int) int {
	if i <= c.size+c.borderSize {
		return c.numLeaf + i - c.size
	}

	return c.numLeaf + i - c.size - 1
}

func (c *Configuration) leafPotentialDist(i int) int {
	if !c.memoValid {
		c.simulateGrowth()
	}
	if k := i - c.size; k < len(c.memo) {
		return c.memo[k]
	}

	return 0
}

// simulateGrowth fills memo with the greedy leaf counts for every size from
// SubtreeSize() up to the largest size the simulation reaches.
//
// Implementation:
//   - Stage 1: every border vertex at distance 1 is added as a leaf.
//   - Stage 2: pop the highest-degree frontier vertex, turn it into an internal
//     vertex (-1 leaf) and hang min(maxDegree-1, degree-1, room) leaves on it,
//     releasing the next distance layer into the heap on each pop.
//
// Complexity: O(V log V + E).
func (c *Configuration) simulateGrowth() {
	layers := c.partitionByDistance()

	size, leaf := c.size, c.numLeaf
	memo := append(c.memo[:0], leaf)
	for _, p := range layers[0] {
		if c.status[p.v].State == Border {
			size++
			leaf++
			memo = append(memo, leaf)
		}
	}

	maxSize := size
	for _, l := range layers[1:] {
		maxSize += len(l)
	}

	heap := binaryheap.NewWith(byDegreeDesc)
	pushBranching(heap, layers[0])
	dist := 1
	for size < maxSize && !heap.Empty() {
		raw, _ := heap.Pop()
		top := raw.(layered)
		if dist < len(layers) {
			pushBranching(heap, layers[dist])
			dist++
		}

		leaf--
		add := minInt(c.maxDegree-1, top.degree-1, maxSize-size)
		for j := 0; j < add; j++ {
			size++
			leaf++
			memo = append(memo, leaf)
		}
	}

	c.memo = memo
	c.memoValid = true
}

func pushBranching(heap *binaryheap.Heap, layer []layered) {
	for _, p := range layer {
		if p.degree > 1 {
			heap.Push(p)
		}
	}
}

// byDegreeDesc turns the min-heap into a max-heap on degree; ties go to the
// lower vertex index.
func byDegreeDesc(a, b interface{}) int {
	x, y := a.(layered), b.(layered)
	switch {
	case x.degree != y.degree:
		return y.degree - x.degree
	default:
		return x.v - y.v
	}
}

func minInt(a int, rest ...int) int {
	for _, b := range rest {
		if b < a {
			a = b
		}
	}

	return a
}
