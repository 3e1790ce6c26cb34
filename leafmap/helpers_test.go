package leafmap_test

import (
	"io"
	"math/bits"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/bfs"
	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/leafmap"
)

var quiet = leafmap.WithLogger(log.New(io.Discard))

func mustGraph(t *testing.T, bopts []builder.BuilderOption, ctor builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, ctor)
	require.NoError(t, err)
	return g
}

// inducedLeaves reports whether ids induces a tree in g, and its leaf count.
func inducedLeaves(t *testing.T, g *core.Graph, ids []string) (int, bool) {
	t.Helper()
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	if len(keep) != len(ids) {
		return 0, false
	}
	sub := core.InducedSubgraph(g, keep)
	if sub.VertexCount() != len(ids) {
		return 0, false
	}
	if len(ids) > 0 && sub.EdgeCount() != len(ids)-1 {
		return 0, false
	}
	connected, err := bfs.IsConnected(sub)
	require.NoError(t, err)
	if !connected {
		return 0, false
	}

	leaves := 0
	for _, id := range ids {
		d, err := sub.Degree(id)
		require.NoError(t, err)
		if d == 1 {
			leaves++
		}
	}
	return leaves, true
}

// bruteForce computes the leaf function by checking every vertex subset;
// absent sizes are -1.
func bruteForce(t *testing.T, g *core.Graph) []int {
	t.Helper()
	ids := g.Vertices()
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	nbr := make([]uint, n)
	for i, id := range ids {
		ns, err := g.NeighborIDs(id)
		require.NoError(t, err)
		for _, u := range ns {
			nbr[i] |= 1 << idx[u]
		}
	}

	best := make([]int, n+1)
	for i := range best {
		best[i] = -1
	}
	best[0] = 0
	for set := uint(1); set < 1<<n; set++ {
		size := bits.OnesCount(set)
		edges, leaves, root := 0, 0, bits.TrailingZeros(set)
		for v := 0; v < n; v++ {
			if set&(1<<v) == 0 {
				continue
			}
			d := bits.OnesCount(nbr[v] & set)
			edges += d
			if d == 1 {
				leaves++
			}
		}
		if edges/2 != size-1 {
			continue
		}
		seen, frontier := uint(1)<<root, uint(1)<<root
		for frontier != 0 {
			v := bits.TrailingZeros(frontier)
			frontier &^= 1 << v
			next := nbr[v] & set &^ seen
			seen |= next
			frontier |= next
		}
		if seen == set && leaves > best[size] {
			best[size] = leaves
		}
	}

	return best
}

// requireWitnesses checks that every witness of res is a fully leafed induced
// subtree of the right size.
func requireWitnesses(t *testing.T, g *core.Graph, res *leafmap.Result) {
	t.Helper()
	lm := res.LeafMap()
	for size, v := range lm {
		ws := res.FullyLeafedSubtrees(size)
		if !v.OK {
			require.Empty(t, ws, "size %d has no subtree", size)
			continue
		}
		require.NotEmpty(t, ws, "size %d", size)
		for _, w := range ws {
			require.Len(t, w, size)
			leaves, ok := inducedLeaves(t, g, w)
			require.True(t, ok, "witness %v does not induce a tree", w)
			require.Equal(t, v.N, leaves, "witness %v", w)
		}
	}
}
