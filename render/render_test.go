package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/render"
	"github.com/katalvlaran/flis/subtree"
)

func TestSubtree_AnyOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	c, err := render.Subtree(g, []string{"2", "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.SubtreeSize())
	assert.Equal(t, 2, c.SubtreeNumLeaf())

	dot := render.DOT(c, render.Options{Title: "size 2"})
	assert.Contains(t, dot, `"1" [fillcolor=green, shape=doublecircle];`)
	assert.Contains(t, dot, `"0" [fillcolor=yellow];`)
	assert.Contains(t, dot, `"1" -- "2" [penwidth=3];`)
	assert.Contains(t, dot, `"2" -- "3";`)
	assert.Contains(t, dot, `label="size 2";`)
	assert.Equal(t, 3, strings.Count(dot, " -- "))
}

func TestSubtree_Rejects(t *testing.T) {
	k3, err := builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	p4, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	tests := []struct {
		name string
		g    subtree.Graph
		ids  []string
	}{
		{"cycle", k3, []string{"0", "1", "2"}},
		{"disconnected", p4, []string{"0", "3"}},
		{"unknown", p4, []string{"0", "9"}},
		{"duplicate", p4, []string{"0", "0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := render.Subtree(tc.g, tc.ids)
			assert.ErrorIs(t, err, render.ErrNotSubtree)
		})
	}
}

func TestDOT_ExcludedAndUnseen(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("z"))
	c, err := subtree.New(g)
	require.NoError(t, err)

	index := func(id string) int {
		v, ok := c.Index(id)
		require.True(t, ok, id)
		return v
	}
	_, err = c.IncludeVertex(index(builder.CenterVertexID))
	require.NoError(t, err)
	require.NoError(t, c.ExcludeVertex(index("0")))
	_, err = c.IncludeVertex(index("1"))
	require.NoError(t, err)

	dot := render.DOT(c, render.Options{})
	assert.Contains(t, dot, `"0" [fillcolor=red];`)
	assert.Contains(t, dot, `"1" [fillcolor=green, shape=doublecircle];`)
	assert.Contains(t, dot, `"2" [fillcolor=yellow];`)
	assert.Contains(t, dot, `"z" [fillcolor=lightblue];`)
	assert.Contains(t, dot, `"1" -- "Center" [penwidth=3];`)
	assert.NotContains(t, dot, "label=")
}

func TestSVG(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	c, err := render.Subtree(g, []string{"0", "1", "2"})
	require.NoError(t, err)

	svg, err := render.SVG(context.Background(), render.DOT(c, render.Options{}), render.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = render.SVG(context.Background(), "graph {", render.Options{})
	assert.Error(t, err)
}
