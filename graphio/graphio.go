// Package graphio reads and writes simple undirected graphs as edge lists.
//
// The format is a sequence of statements, each an optional-semicolon
// terminated chain of vertex IDs joined by "--":
//
//	# the 4-cycle with a pendant vertex
//	a -- b -- c -- d -- a;
//	a -- e
//	lonely;
//
// A chain adds every consecutive edge; a lone ID adds an isolated vertex.
// IDs are runs of letters, digits, '_', '.' and ':'. Repeated edges are
// accepted once; loops are rejected.
package graphio

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/flis/core"
)

// Sentinel errors.
var (
	// ErrSyntax wraps any grammar error.
	ErrSyntax = stderrors.New("graphio: syntax error")

	// ErrInvalidEdge is returned for a loop "a -- a".
	ErrInvalidEdge = stderrors.New("graphio: invalid edge")
)

type file struct {
	Statements []*statement `@@*`
}

type statement struct {
	Pos   lexer.Position
	Head  string   `@Ident`
	Chain []string `( "--" @Ident )* ";"?`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Link", Pattern: `--`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_.:]+`},
	{Name: "Punct", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var edgeListParser = participle.MustBuild[file](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads an edge list from r into a new graph.
//
// Errors:
//   - ErrSyntax for malformed input (message carries line:column).
//   - ErrInvalidEdge for a loop.
//   - read errors from r, wrapped.
func Parse(r io.Reader) (*core.Graph, error) {
	ast, err := edgeListParser.Parse("", r)
	if err != nil {
		var perr participle.Error
		if stderrors.As(err, &perr) {
			return nil, errors.Wrap(ErrSyntax, perr.Error())
		}
		return nil, errors.Wrap(err, "graphio: read")
	}

	mentions := 0
	for _, st := range ast.Statements {
		mentions += 1 + len(st.Chain)
	}

	g := core.NewGraph(core.WithCapacity(mentions))
	for _, st := range ast.Statements {
		if err = g.AddVertex(st.Head); err != nil {
			return nil, errors.Wrapf(err, "graphio: %s", st.Pos)
		}
		prev := st.Head
		for _, next := range st.Chain {
			if prev == next {
				return nil, errors.Wrapf(ErrInvalidEdge, "%s: loop on %q", st.Pos, prev)
			}
			if !g.HasEdge(prev, next) {
				if _, err = g.AddEdge(prev, next); err != nil {
					return nil, errors.Wrapf(err, "graphio: %s: %s -- %s", st.Pos, prev, next)
				}
			}
			prev = next
		}
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// Format writes g in the edge-list format: one "u -- v;" line per edge in
// sorted order, then one line per isolated vertex. Parse(Format(g)) rebuilds g.
func Format(g *core.Graph) string {
	var sb strings.Builder
	for _, e := range g.Edges() {
		sb.WriteString(e.From + " -- " + e.To + ";\n")
	}

	// Vertices() is sorted, so isolated vertices come out in order.
	for _, id := range g.Vertices() {
		if d, err := g.Degree(id); err == nil && d == 0 {
			sb.WriteString(id + ";\n")
		}
	}

	return sb.String()
}
