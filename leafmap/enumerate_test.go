package leafmap_test

import (
	"context"
	"math/bits"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/leafmap"
)

// countInducedTrees counts the vertex subsets of g (the empty one included)
// that induce a tree.
func countInducedTrees(t *testing.T, g *core.Graph) int {
	t.Helper()
	ids := g.Vertices()
	count := 0
	for set := uint(0); set < 1<<len(ids); set++ {
		sub := make([]string, 0, bits.OnesCount(set))
		for i, id := range ids {
			if set&(1<<i) != 0 {
				sub = append(sub, id)
			}
		}
		if _, ok := inducedLeaves(t, g, sub); ok {
			count++
		}
	}
	return count
}

func TestInducedSubtrees_Small(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"P3", builder.Path(3), 7},     // {}, 3 vertices, 2 edges, the path
		{"K3", builder.Complete(3), 7}, // {}, 3 vertices, 3 edges
		{"K1,3", builder.Star(4), 12},  // all 16 subsets but the 4 leaf-only sets of size ≥ 2
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, nil, tc.ctor)
			seen := map[string]bool{}
			err := leafmap.InducedSubtrees(g, func(ids []string) bool {
				_, ok := inducedLeaves(t, g, ids)
				require.True(t, ok, "%v", ids)
				key := append([]string(nil), ids...)
				sort.Strings(key)
				k := strings.Join(key, ",")
				require.False(t, seen[k], "duplicate %v", ids)
				seen[k] = true
				return true
			})
			require.NoError(t, err)
			assert.Len(t, seen, tc.want)
		})
	}
}

func TestInducedSubtrees_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := mustGraph(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(8, 0.35))
		n := 0
		require.NoError(t, leafmap.InducedSubtrees(g, func([]string) bool { n++; return true }))
		assert.Equal(t, countInducedTrees(t, g), n, "seed %d", seed)
	}
}

func TestInducedSubtrees_StopEarly(t *testing.T) {
	g := mustGraph(t, nil, builder.Complete(5))
	n := 0
	require.NoError(t, leafmap.InducedSubtrees(g, func([]string) bool {
		n++
		return n < 3
	}))
	assert.Equal(t, 3, n)

	assert.ErrorIs(t, leafmap.InducedSubtrees(nil, func([]string) bool { return true }), leafmap.ErrGraphNil)
}

func TestClassify(t *testing.T) {
	family := []leafmap.Graph{
		mustGraph(t, nil, builder.Path(4)),
		mustGraph(t, nil, builder.Star(4)),
		mustGraph(t, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(4)),
		mustGraph(t, nil, builder.BalancedTree(3, 1)),
	}

	cl, err := leafmap.Classify(context.Background(), family,
		leafmap.WithAlgorithm(leafmap.Tree), leafmap.WithParallelism(2), quiet)
	require.NoError(t, err)

	require.Equal(t, 2, cl.NumberOfClasses())
	assert.Equal(t, []int{0, 2}, cl.Classes[0].Members)
	assert.Equal(t, []int{1, 3}, cl.Classes[1].Members, "K1,3 twice")
	assert.Equal(t, "{0: 0, 1: 0, 2: 2, 3: 2, 4: 2}", cl.Classes[0].LeafMap.String())
	assert.Equal(t, "{0: 0, 1: 0, 2: 2, 3: 2, 4: 3}", cl.Classes[1].LeafMap.String())
	assert.InDelta(t, 2.0, cl.AverageClassSize(), 1e-9)

	empty, err := leafmap.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, empty.AverageClassSize())
}

func TestClassify_Errors(t *testing.T) {
	family := []leafmap.Graph{
		mustGraph(t, nil, builder.Path(3)),
		mustGraph(t, nil, builder.Cycle(3)),
	}
	_, err := leafmap.Classify(context.Background(), family, leafmap.WithAlgorithm(leafmap.Tree), quiet)
	assert.ErrorIs(t, err, leafmap.ErrUnsupportedInput)

	_, err = leafmap.Classify(context.Background(), family, leafmap.WithParallelism(0))
	assert.ErrorIs(t, err, leafmap.ErrOptionViolation)
}
