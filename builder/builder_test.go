package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/core"
)

func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		out[id] = d
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.BuilderOption
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"))
			}},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3},
		{name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 5, degrees(t, g)[builder.CenterVertexID])
			}},
		{name: "Wheel(11)", ctor: builder.Wheel(11), wantV: 11, wantE: 20,
			check: func(t *testing.T, g *core.Graph) {
				d := degrees(t, g)
				assert.Equal(t, 10, d[builder.CenterVertexID])
				assert.Equal(t, 3, d["0"])
			}},
		{name: "Complete(7)", ctor: builder.Complete(7), wantV: 7, wantE: 21},
		{name: "K_{7,5}", ctor: builder.CompleteBipartite(7, 5), wantV: 12, wantE: 35,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("L6", "R4"))
				assert.False(t, g.HasEdge("L0", "L1"))
			}},
		{name: "K_{2,2} custom prefixes", ctor: builder.CompleteBipartite(2, 2),
			opts: []builder.BuilderOption{builder.WithPartitionPrefix("a", "b")}, wantV: 4, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("a0", "b1"))
			}},
		{name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "1,0"))
			}},
		{name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			check: func(t *testing.T, g *core.Graph) {
				for id, d := range degrees(t, g) {
					assert.Equal(t, 3, d, id)
				}
				assert.True(t, g.HasEdge("5", "7"))
			}},
		{name: "BalancedTree(2,2)", ctor: builder.BalancedTree(2, 2), wantV: 7, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("2", "6"))
			}},
		{name: "Hypercube(3)", ctor: builder.Hypercube(3), wantV: 8, wantE: 12,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("000", "100"))
				assert.False(t, g.HasEdge("000", "110"))
			}},
		{name: "RandomSparse p=1", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10},
		{name: "RandomSparse p=0", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0},
		{name: "RandomTree", ctor: builder.RandomTree(12),
			opts: []builder.BuilderOption{builder.WithSeed(3)}, wantV: 12, wantE: 11},
		{name: "Excel IDs", ctor: builder.Path(3),
			opts: []builder.BuilderOption{builder.WithExcelColumnIDs()}, wantV: 3, wantE: 2,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
			}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"K_{0,3}", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Grid(0,1)", builder.Grid(0, 1), builder.ErrTooFewVertices},
		{"BalancedTree(1,3)", builder.BalancedTree(1, 3), builder.ErrTooFewVertices},
		{"Hypercube(0)", builder.Hypercube(0), builder.ErrTooFewVertices},
		{"Hypercube(17)", builder.Hypercube(17), builder.ErrTooManyVertices},
		{"RandomSparse p", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomTree rng", builder.RandomTree(4), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(9, 0.4))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(9, 0.4))
	require.NoError(t, err)
	assert.Equal(t, g1.AdjacencyList(), g2.AdjacencyList())
}

func TestFamily(t *testing.T) {
	ctor, err := builder.Family("wheel", 6)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, nil, ctor)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())

	_, err = builder.Family("moebius", 6)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Equal(t, "0110", builder.BinaryIDFn(4)(6))
	assert.Panics(t, func() { builder.BinaryIDFn(2)(4) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}
