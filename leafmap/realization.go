// Leaf realization helpers.
//
// A tree is a k-caterpillar when peeling its leaves k times leaves a path (or
// nothing): 0-caterpillars are paths, 1-caterpillars are caterpillars and
// 2-caterpillars are lobsters.
//
// The difference word of a leaf map records how L grows from size 3 on. A
// binary word w is k-prefix-normal when, for every length m, no factor of
// length m holds more than k ones beyond those of the prefix of length m.
// Leaf maps of caterpillars have 0-prefix-normal difference words.

package leafmap

import (
	"context"
	"fmt"
)

// firstFreeSize is the smallest size whose leaf count depends on the graph:
// every graph with an edge has L(2) = 2 and every tree with 3 vertices is a path.
const firstFreeSize = 3

// IsKCaterpillar reports whether the tree g becomes a path, or empty, after
// its leaves are removed k times.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrOptionViolation for k < 0.
//   - ErrUnsupportedInput if g is not a tree.
func IsKCaterpillar(g Graph, k int) (bool, error) {
	if isNil(g) {
		return false, ErrGraphNil
	}
	if k < 0 {
		return false, fmt.Errorf("%w: caterpillar depth must be ≥ 0, got %d", ErrOptionViolation, k)
	}
	s, err := treeSnapshot(g)
	if err != nil {
		return false, err
	}

	return s.peelToPath(k), nil
}

// CaterpillarDepth returns the smallest k for which the tree g is a
// k-caterpillar. Paths have depth 0.
//
// Errors are those of IsKCaterpillar.
func CaterpillarDepth(g Graph) (int, error) {
	if isNil(g) {
		return 0, ErrGraphNil
	}
	s, err := treeSnapshot(g)
	if err != nil {
		return 0, err
	}

	k := 0
	for !s.peelToPath(k) {
		k++
	}

	return k, nil
}

func treeSnapshot(g Graph) (*snapshot, error) {
	s, err := takeSnapshot(g)
	if err != nil {
		return nil, err
	}
	if err = checkTree(context.Background(), g, s); err != nil {
		return nil, err
	}

	return s, nil
}

// peelToPath removes every degree-1 vertex k times over and reports whether
// the rest has no vertex of degree above 2. The rest of a tree stays
// connected, so that means it is a path.
func (s *snapshot) peelToPath(k int) bool {
	n := s.order()
	deg := make([]int, n)
	for v := range s.adj {
		deg[v] = len(s.adj[v])
	}
	removed := make([]bool, n)

	for round := 0; round < k; round++ {
		var leaves []int
		for v := 0; v < n; v++ {
			if !removed[v] && deg[v] == 1 {
				leaves = append(leaves, v)
			}
		}
		if len(leaves) == 0 {
			break
		}
		for _, v := range leaves {
			removed[v] = true
		}
		for _, v := range leaves {
			for _, u := range s.adj[v] {
				if !removed[u] {
					deg[u]--
				}
			}
		}
	}

	for v := 0; v < n; v++ {
		if !removed[v] && deg[v] > 2 {
			return false
		}
	}

	return true
}

// DifferenceWord returns w with w[j] = L(j+4) − L(j+3), the growth of m from
// size 3 to size n. The word is empty below 4 vertices. ok is false when an
// entry it needs is absent.
func (m LeafMap) DifferenceWord() (w []int, ok bool) {
	if len(m) <= firstFreeSize+1 {
		return []int{}, true
	}
	w = make([]int, 0, len(m)-firstFreeSize-1)
	for i := firstFreeSize; i+1 < len(m); i++ {
		if !m[i].OK || !m[i+1].OK {
			return nil, false
		}
		w = append(w, m[i+1].N-m[i].N)
	}

	return w, true
}

// IsKPrefixNormal reports whether the difference word of m exists and is
// k-prefix-normal.
func (m LeafMap) IsKPrefixNormal(k int) bool {
	w, ok := m.DifferenceWord()

	return ok && IsKPrefixNormal(w, k)
}

// LetterComplexity returns the largest number of occurrences of letter in a
// factor of length n of word, or 0 when n is out of range.
// Complexity: O(len(word)).
func LetterComplexity(word []int, letter, n int) int {
	if n <= 0 || n > len(word) {
		return 0
	}

	count := 0
	for _, c := range word[:n] {
		if c == letter {
			count++
		}
	}
	best := count
	for i := n; i < len(word); i++ {
		if word[i] == letter {
			count++
		}
		if word[i-n] == letter {
			count--
		}
		if count > best {
			best = count
		}
	}

	return best
}

// IsKPrefixNormal reports whether the binary word is k-prefix-normal: for
// every length m, the ones in any factor of length m exceed the ones in the
// prefix of length m by at most k. Words holding a letter other than 0 or 1
// are not. The empty word is.
// Complexity: O(len(word)²).
func IsKPrefixNormal(word []int, k int) bool {
	for _, c := range word {
		if c != 0 && c != 1 {
			return false
		}
	}

	ones := 0
	for m := 1; m <= len(word); m++ {
		ones += word[m-1]
		if LetterComplexity(word, 1, m)-ones > k {
			return false
		}
	}

	return true
}
