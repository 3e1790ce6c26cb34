// Leaf functions of trees by dynamic programming.
//
// Every directed edge u→v of a tree T roots the component of T−u containing v
// at v. For such an arc:
//
//	Lt(u→v, i)    max leaves of a subtree of size i rooted at v and hanging
//	              from u (v counts as a leaf when i == 1)
//	Lf(u→v, k, i) max leaves of a subforest of size i of the trees rooted at
//	              the children k, k+1, ... of v
//
// combined knapsack-style over the children. An undirected edge {u,v} then
// realizes L(i) = max_j Lt(u→v, j) + Lt(v→u, i−j), and L_T(i) is the maximum
// over all edges.
//
// Complexity: O(n³) time and memory in the worst case. Each arc keeps its own
// forest table of about deg(v)·size entries; on a star the n−1 arcs into the
// centre hold Θ(n²) entries each.

package leafmap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flis/bfs"
)

type arcKey struct{ u, v int }

// arcDP memoizes the tables of one directed edge u→v.
type arcDP struct {
	u, v     int
	size     int      // vertices on v's side
	children []*arcDP // arcs v→w, w ≠ u, in adjacency order
	suffix   []int    // suffix[k] = total size of children[k:]
	lt       []int    // lt[i], -1 while unknown
	lf       [][]int  // lf[k][i], -1 while unknown
}

type treeDP struct {
	s    *snapshot
	arcs map[arcKey]*arcDP
}

// TreeLeafMap computes the leaf function of a tree together with one fully
// leafed induced subtree per size.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnsupportedInput if g is empty, disconnected or has a cycle.
func TreeLeafMap(g Graph) (LeafMap, Witnesses, error) {
	return treeLeafMap(context.Background(), g)
}

func treeLeafMap(ctx context.Context, g Graph) (LeafMap, Witnesses, error) {
	if isNil(g) {
		return nil, nil, ErrGraphNil
	}
	s, err := takeSnapshot(g)
	if err != nil {
		return nil, nil, err
	}
	if err = checkTree(ctx, g, s); err != nil {
		return nil, nil, err
	}

	t := &treeDP{s: s, arcs: make(map[arcKey]*arcDP, 2*s.edges)}
	n := s.order()

	best := make([]int, n+1)
	edgeL := make(map[arcKey][]int, s.edges)
	for u := 0; u < n; u++ {
		for _, v := range s.adj[u] {
			if u > v {
				continue
			}
			row := make([]int, n+1)
			for i := 2; i <= n; i++ {
				row[i], _ = t.edgeBest(u, v, i)
				if row[i] > best[i] {
					best[i] = row[i]
				}
			}
			edgeL[arcKey{u, v}] = row
		}
	}

	w := make(Witnesses, n+1)
	w[0] = [][]string{{}}
	w[1] = [][]string{{s.ids[0]}}
	for i := 2; i <= n; i++ {
		w[i] = [][]string{s.names(t.example(i, best[i], edgeL))}
	}

	return FromInts(best...), w, nil
}

func checkTree(ctx context.Context, g Graph, s *snapshot) error {
	if s.order() == 0 {
		return fmt.Errorf("leafmap: empty graph is not a tree: %w", ErrUnsupportedInput)
	}
	if s.edges != s.order()-1 {
		return fmt.Errorf("leafmap: %d vertices and %d edges is not a tree: %w",
			s.order(), s.edges, ErrUnsupportedInput)
	}
	connected, err := bfs.IsConnected(g, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("leafmap: connectivity: %w", err)
	}
	if !connected {
		return fmt.Errorf("leafmap: disconnected graph is not a tree: %w", ErrUnsupportedInput)
	}

	return nil
}

// arc returns the tables of u→v, building them (and those of its subtree) on
// first use.
func (t *treeDP) arc(u, v int) *arcDP {
	key := arcKey{u, v}
	if a, ok := t.arcs[key]; ok {
		return a
	}

	a := &arcDP{u: u, v: v, size: 1}
	for _, w := range t.s.adj[v] {
		if w == u {
			continue
		}
		c := t.arc(v, w)
		a.children = append(a.children, c)
		a.size += c.size
	}
	a.suffix = make([]int, len(a.children)+1)
	for k := len(a.children) - 1; k >= 0; k-- {
		a.suffix[k] = a.suffix[k+1] + a.children[k].size
	}
	a.lt = filled(a.size + 1)
	a.lf = make([][]int, len(a.children))
	for k := range a.lf {
		a.lf[k] = filled(a.suffix[k] + 1)
	}
	t.arcs[key] = a

	return a
}

func (t *treeDP) rooted(a *arcDP, i int) int {
	if i <= 1 {
		return i
	}
	if a.lt[i] < 0 {
		a.lt[i] = t.forest(a, 0, i-1)
	}

	return a.lt[i]
}

func (t *treeDP) forest(a *arcDP, k, i int) int {
	if a.lf[k][i] >= 0 {
		return a.lf[k][i]
	}

	c := a.children[k]
	if k == len(a.children)-1 {
		a.lf[k][i] = t.rooted(c, i)
		return a.lf[k][i]
	}

	best := -1
	lo, hi := forestSplit(a, k, i)
	for j := lo; j <= hi; j++ {
		if x := t.rooted(c, j) + t.forest(a, k+1, i-j); x > best {
			best = x
		}
	}
	a.lf[k][i] = best

	return best
}

// forestSplit bounds the share j of child k in a subforest of size i.
func forestSplit(a *arcDP, k, i int) (lo, hi int) {
	return maxInt(0, i-a.suffix[k+1]), minInt(a.children[k].size, i)
}

// edgeBest returns the best leaf count of a size-i subtree containing the
// edge {u,v}, and the first split j (vertices on v's side) achieving it.
func (t *treeDP) edgeBest(u, v, i int) (best, split int) {
	uv, vu := t.arc(u, v), t.arc(v, u)
	best, split = -1, -1
	for j := maxInt(1, i-vu.size); j <= minInt(i-1, uv.size); j++ {
		if x := t.rooted(uv, j) + t.rooted(vu, i-j); x > best {
			best, split = x, j
		}
	}

	return best, split
}

// example rebuilds a size-i subtree with the given number of leaves from the
// first edge (in vertex order) that realizes it.
func (t *treeDP) example(i, leaves int, edgeL map[arcKey][]int) []int {
	for u := 0; u < t.s.order(); u++ {
		for _, v := range t.s.adj[u] {
			if u > v || edgeL[arcKey{u, v}][i] != leaves {
				continue
			}
			_, j := t.edgeBest(u, v, i)
			out := t.treeExample(t.arc(u, v), j)

			return append(out, t.treeExample(t.arc(v, u), i-j)...)
		}
	}

	return nil
}

func (t *treeDP) treeExample(a *arcDP, i int) []int {
	if i == 0 {
		return nil
	}

	return append([]int{a.v}, t.forestExample(a, 0, i-1)...)
}

func (t *treeDP) forestExample(a *arcDP, k, i int) []int {
	if i == 0 {
		return nil
	}
	c := a.children[k]
	if k == len(a.children)-1 {
		return t.treeExample(c, i)
	}

	want := t.forest(a, k, i)
	lo, hi := forestSplit(a, k, i)
	for j := lo; j <= hi; j++ {
		if t.rooted(c, j)+t.forest(a, k+1, i-j) == want {
			return append(t.treeExample(c, j), t.forestExample(a, k+1, i-j)...)
		}
	}

	return nil
}

func filled(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
