// Package render draws a graph together with an induced subtree, using the
// configuration colour scheme: included vertices green, border yellow,
// excluded red and unseen blue. Subtree leaves are drawn as double circles and
// subtree edges are bold.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/flis/subtree"
)

// ErrNotSubtree is returned by Subtree when the IDs do not induce a tree.
var ErrNotSubtree = errors.New("render: vertices do not induce a subtree")

var fill = map[subtree.State]string{
	subtree.Unseen:   "lightblue",
	subtree.Border:   "yellow",
	subtree.Included: "green",
	subtree.Excluded: "red",
}

// Options configures DOT output.
type Options struct {
	// Title is drawn under the graph when non-empty.
	Title string
	// Layout is the Graphviz engine used by SVG; neato when empty.
	Layout graphviz.Layout
}

// Subtree returns a configuration whose subtree is exactly ids. The IDs may
// come in any order; they are included as soon as they touch the subtree.
func Subtree(g subtree.Graph, ids []string) (*subtree.Configuration, error) {
	c, err := subtree.New(g, subtree.WithStrategy(subtree.Naive))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	pending := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		v, ok := c.Index(id)
		if !ok {
			return nil, fmt.Errorf("render: unknown vertex %q: %w", id, ErrNotSubtree)
		}
		if seen[v] {
			return nil, fmt.Errorf("render: vertex %q listed twice: %w", id, ErrNotSubtree)
		}
		seen[v] = true
		pending = append(pending, v)
	}

	for len(pending) > 0 {
		next := -1
		for i, v := range pending {
			st := c.Status(v).State
			if st == subtree.Border || (st == subtree.Unseen && c.SubtreeSize() == 0) {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("render: %v cannot join %v: %w",
				c.IDs(pending), c.IDs(c.SubtreeVertices()), ErrNotSubtree)
		}
		if _, err = c.IncludeVertex(pending[next]); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		pending = append(pending[:next], pending[next+1:]...)
	}

	return c, nil
}

// DOT renders the graph of c, coloured by vertex status.
func DOT(c *subtree.Configuration, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for v := 0; v < c.Order(); v++ {
		st := c.Status(v)
		attrs := []string{"fillcolor=" + fill[st.State]}
		if st.State == subtree.Included && st.Degree == 1 {
			attrs = append(attrs, "shape=doublecircle")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID(v), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for u := 0; u < c.Order(); u++ {
		for _, v := range c.Neighbors(u) {
			if v < u {
				continue
			}
			if c.Status(u).State == subtree.Included && c.Status(v).State == subtree.Included {
				fmt.Fprintf(&buf, "  %q -- %q [penwidth=3];\n", c.ID(u), c.ID(v))
				continue
			}
			fmt.Fprintf(&buf, "  %q -- %q;\n", c.ID(u), c.ID(v))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG lays out a DOT graph with Graphviz and returns the SVG bytes.
func SVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	layout := opts.Layout
	if layout == "" {
		layout = graphviz.NEATO
	}
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
