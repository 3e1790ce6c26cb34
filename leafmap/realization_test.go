package leafmap_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/leafmap"
)

func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	return mustGraph(t, nil, builder.Path(n))
}

func TestIsKCaterpillar(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		k    int
		want bool
	}{
		{"P4 is a path", pathGraph(t, 4), 0, true},
		{"B(2,3) is not a caterpillar", mustGraph(t, nil, builder.BalancedTree(2, 3)), 1, false},
		{"B(2,2) is a caterpillar", mustGraph(t, nil, builder.BalancedTree(2, 2)), 1, true},
		{"P5", pathGraph(t, 5), 1, true},
		{"P3", pathGraph(t, 3), 1, true},
		{"B(2,3) is a lobster", mustGraph(t, nil, builder.BalancedTree(2, 3)), 2, true},
		{"B(2,4) is not a lobster", mustGraph(t, nil, builder.BalancedTree(2, 4)), 2, false},
		{"P4 peeled away", pathGraph(t, 4), 2, true},
		{"single vertex", pathGraph(t, 1), 2, true},
		{"star K1,5", mustGraph(t, nil, builder.Star(6)), 0, false},
		{"star K1,5 peeled", mustGraph(t, nil, builder.Star(6)), 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := leafmap.IsKCaterpillar(tc.g, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsKCaterpillar_Errors(t *testing.T) {
	_, err := leafmap.IsKCaterpillar(nil, 1)
	assert.ErrorIs(t, err, leafmap.ErrGraphNil)

	_, err = leafmap.IsKCaterpillar(pathGraph(t, 3), -1)
	assert.ErrorIs(t, err, leafmap.ErrOptionViolation)

	_, err = leafmap.IsKCaterpillar(mustGraph(t, nil, builder.Cycle(5)), 1)
	assert.ErrorIs(t, err, leafmap.ErrUnsupportedInput)

	_, err = leafmap.CaterpillarDepth(core.NewGraph())
	assert.ErrorIs(t, err, leafmap.ErrUnsupportedInput, "the empty graph is not a tree")
}

func TestCaterpillarDepth(t *testing.T) {
	for _, tc := range []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"P6", builder.Path(6), 0},
		{"K1,4", builder.Star(5), 1},
		{"B(2,2)", builder.BalancedTree(2, 2), 1},
		{"B(2,3)", builder.BalancedTree(2, 3), 2},
		{"B(2,4)", builder.BalancedTree(2, 4), 3},
	} {
		got, err := leafmap.CaterpillarDepth(mustGraph(t, nil, tc.ctor))
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestLetterComplexity(t *testing.T) {
	w := []int{0, 1, 0, 0, 1}
	assert.Equal(t, 1, leafmap.LetterComplexity(w, 1, 3))
	assert.Equal(t, 2, leafmap.LetterComplexity(w, 0, 2))
	assert.Equal(t, 3, leafmap.LetterComplexity(w, 0, 5))
	assert.Equal(t, 0, leafmap.LetterComplexity(w, 1, 0))
	assert.Equal(t, 0, leafmap.LetterComplexity(w, 1, 6))
}

func word(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		out[i], _ = strconv.Atoi(string(c))
	}
	return out
}

func TestIsKPrefixNormal(t *testing.T) {
	tests := []struct {
		word string
		k    int
		want bool
	}{
		{"1101011011", 0, false},
		{"1101101011", 0, true},
		{"11012", 0, false},
		{"", 0, true},
		{"000", 0, true},
		{"111", 0, true},
		{"01", 0, false},
		{"01", 1, true},
		// prefix 001 has one 1, the factor 111 has three
		{"0011101", 1, false},
		{"0011101", 2, true},
	}

	for _, tc := range tests {
		got := leafmap.IsKPrefixNormal(word(tc.word), tc.k)
		assert.Equal(t, tc.want, got, "%q k=%d", tc.word, tc.k)
	}
}

func TestLeafMap_DifferenceWord(t *testing.T) {
	w, ok := leafmap.FromInts(0, 0, 2, 2, 3, 3, 3, 4).DifferenceWord()
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 0, 1}, w)

	w, ok = leafmap.FromInts(0, 0, 2, 2).DifferenceWord()
	require.True(t, ok)
	assert.Empty(t, w)

	_, ok = leafmap.FromInts(0, 0, 2, 2, 2, -1).DifferenceWord()
	assert.False(t, ok)
	assert.False(t, leafmap.FromInts(0, 0, 2, 2, 2, -1).IsKPrefixNormal(3))
}

// randomCaterpillar hangs a random number of legs off every vertex of a spine.
func randomCaterpillar(t *testing.T, rng *rand.Rand, spine int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("s0"))
	for i := 1; i < spine; i++ {
		_, err := g.AddEdge("s"+strconv.Itoa(i-1), "s"+strconv.Itoa(i))
		require.NoError(t, err)
	}
	legs := 0
	for i := 0; i < spine; i++ {
		for j := rng.Intn(3); j > 0; j-- {
			_, err := g.AddEdge("s"+strconv.Itoa(i), "l"+strconv.Itoa(legs))
			require.NoError(t, err)
			legs++
		}
	}
	return g
}

func TestLeafMap_CaterpillarsArePrefixNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 40; i++ {
		g := randomCaterpillar(t, rng, 2+rng.Intn(6))

		ok, err := leafmap.IsKCaterpillar(g, 1)
		require.NoError(t, err)
		require.True(t, ok)

		lm, _, err := leafmap.TreeLeafMap(g)
		require.NoError(t, err)
		assert.True(t, lm.IsKPrefixNormal(0), "%s", lm)
	}
}
