// File: configuration.go
// Role: Configuration state, construction, options and read accessors.
// Determinism:
//   - Vertex indices follow Graph.Vertices() order.
//   - VertexToAdd falls back to the lowest eligible index.

package subtree

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for configuration operations.
var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("subtree: graph is nil")

	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("subtree: invalid option supplied")

	// ErrInvalidOperation marks a contract violation by the caller.
	ErrInvalidOperation = errors.New("subtree: invalid operation")
)

// Graph is the read-only collaborator a Configuration is built on.
// *core.Graph satisfies it.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
	VertexCount() int
}

// Option configures a Configuration at construction.
type Option func(*Configuration)

// WithStrategy selects the leaf-potential estimator (default Dist).
func WithStrategy(s Strategy) Option {
	return func(c *Configuration) {
		if s != Dist && s != Naive {
			c.optErr = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		c.strategy = s
	}
}

// WithMaxDegree caps the subtree degree assumed by the Dist estimator.
// d must be ≥ 1; the default is the number of vertices (no cap).
func WithMaxDegree(d int) Option {
	return func(c *Configuration) {
		if d < 1 {
			c.optErr = fmt.Errorf("%w: max degree must be ≥ 1, got %d", ErrOptionViolation, d)
			return
		}
		c.maxDegree = d
	}
}

// Configuration is an induced subtree under construction together with the
// status of every other vertex. See the package documentation.
type Configuration struct {
	ids   []string
	index map[string]int
	adj   [][]int

	status  []Status
	subtree []int // included vertices in insertion order
	history []int // manual operations, most recent last

	size        int
	numLeaf     int // running counter; 1 for a lone vertex
	borderSize  int
	numExcluded int

	strategy  Strategy
	maxDegree int
	hint      int // likely border vertex, -1 when unknown

	memo      []int // memo[k] = dist bound for size+k
	memoValid bool
	visited   []bool // scratch for the distance partition

	optErr error
}

// New builds an empty Configuration over g: every vertex Unseen.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrOptionViolation for invalid options.
//   - ErrInvalidOperation if g reports a neighbor that is not one of its vertices.
//
// Complexity: O(V + E log Δ) for the adjacency snapshot.
func New(g Graph, opts ...Option) (*Configuration, error) {
	if g == nil || (reflect.ValueOf(g).Kind() == reflect.Ptr && reflect.ValueOf(g).IsNil()) {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	n := len(ids)
	c := &Configuration{
		ids:       ids,
		index:     make(map[string]int, n),
		adj:       make([][]int, n),
		status:    make([]Status, n),
		subtree:   make([]int, 0, n),
		history:   make([]int, 0, n),
		strategy:  Dist,
		maxDegree: n,
		hint:      -1,
		visited:   make([]bool, n),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.optErr != nil {
		return nil, c.optErr
	}

	for i, id := range ids {
		c.index[id] = i
	}
	for v, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("subtree: New: neighbors of %q: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nid := range nbrs {
			u, ok := c.index[nid]
			if !ok {
				return nil, fmt.Errorf("subtree: New: neighbor %q of %q is not a vertex: %w", nid, id, ErrInvalidOperation)
			}
			if u != v {
				row = append(row, u)
			}
		}
		c.adj[v] = row
	}

	return c, nil
}

// Order returns the number of vertices of the underlying graph.
func (c *Configuration) Order() int { return len(c.ids) }

// SubtreeSize returns the number of included vertices.
func (c *Configuration) SubtreeSize() int { return c.size }

// SubtreeNumLeaf returns the number of leaves of the subtree; a single vertex has none.
func (c *Configuration) SubtreeNumLeaf() int {
	if c.size == 1 {
		return 0
	}

	return c.numLeaf
}

// BorderSize returns the number of Border vertices.
func (c *Configuration) BorderSize() int { return c.borderSize }

// NumExcluded returns the number of Excluded vertices, manual and cascaded.
func (c *Configuration) NumExcluded() int { return c.numExcluded }

// Strategy returns the configured estimator.
func (c *Configuration) Strategy() Strategy { return c.strategy }

// MaxDegree returns the degree cap used by the Dist estimator.
func (c *Configuration) MaxDegree() int { return c.maxDegree }

// Status returns the status of v. v must be in [0, Order()).
func (c *Configuration) Status(v int) Status { return c.status[v] }

// Neighbors returns the neighbor indices of v. The slice must not be modified.
func (c *Configuration) Neighbors(v int) []int { return c.adj[v] }

// Degree counts the neighbors of u that are not Excluded.
func (c *Configuration) Degree(u int) int {
	d := 0
	for _, w := range c.adj[u] {
		if c.status[w].State != Excluded {
			d++
		}
	}

	return d
}

// SubtreeVertices returns a copy of the included vertices in insertion order.
func (c *Configuration) SubtreeVertices() []int {
	return append([]int(nil), c.subtree...)
}

// History returns a copy of the manual operation stack, oldest first.
func (c *Configuration) History() []int {
	return append([]int(nil), c.history...)
}

// Index returns the dense index of the vertex id.
func (c *Configuration) Index(id string) (int, bool) {
	v, ok := c.index[id]
	return v, ok
}

// ID returns the vertex ID of index v.
func (c *Configuration) ID(v int) string { return c.ids[v] }

// IDs maps indices to vertex IDs.
func (c *Configuration) IDs(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = c.ids[v]
	}

	return out
}

func (c *Configuration) String() string {
	return fmt.Sprintf("subtree_size:%d, num_leaf:%d, border_size:%d, num_excluded:%d",
		c.size, c.numLeaf, c.borderSize, c.numExcluded)
}
