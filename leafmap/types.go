package leafmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/flis/subtree"
)

// Sentinel errors for leaf map computations.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("leafmap: graph is nil")

	// ErrUnsupportedInput is returned when the selected algorithm cannot handle
	// the graph (tree DP on a non-tree, hypercube search on a non-hypercube).
	ErrUnsupportedInput = errors.New("leafmap: unsupported input")

	// ErrSizeTooLarge is returned by the hypercube algorithm beyond dimension 8.
	ErrSizeTooLarge = errors.New("leafmap: hypercube dimension too large")

	// ErrOptionViolation is returned for an invalid Option.
	ErrOptionViolation = errors.New("leafmap: invalid option supplied")
)

// Graph is the read-only collaborator every algorithm consumes.
// *core.Graph satisfies it.
type Graph = subtree.Graph

// Value is one entry of a leaf map: the maximum number of leaves, or OK=false
// when no induced subtree of that size exists.
type Value struct {
	N  int
	OK bool
}

// Known returns a present Value.
func Known(n int) Value { return Value{N: n, OK: true} }

// String returns the number, or "None" when absent.
func (v Value) String() string {
	if !v.OK {
		return "None"
	}

	return strconv.Itoa(v.N)
}

// MarshalJSON encodes a present value as a number and an absent one as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(v.N)), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("leafmap: leaf value %s: %w", data, err)
	}
	*v = Known(n)

	return nil
}

// LeafMap maps every size 0..n to its maximum leaf count.
type LeafMap []Value

// FromInts builds a LeafMap, treating negative entries as absent.
func FromInts(vals ...int) LeafMap {
	m := make(LeafMap, len(vals))
	for i, n := range vals {
		if n >= 0 {
			m[i] = Known(n)
		}
	}

	return m
}

// Ints is the inverse of FromInts: absent entries become -1.
func (m LeafMap) Ints() []int {
	out := make([]int, len(m))
	for i, v := range m {
		out[i] = -1
		if v.OK {
			out[i] = v.N
		}
	}

	return out
}

// String renders m as "{0: 0, 1: 0, 2: 2, 3: None}".
func (m LeafMap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", i, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Witnesses holds, per size, fully leafed induced subtrees as vertex ID lists.
type Witnesses [][][]string

// Algorithm selects how a leaf map is computed.
type Algorithm uint8

const (
	// General is the branch-and-bound search; it accepts any simple graph.
	General Algorithm = iota
	// Tree is the polynomial dynamic program; the graph must be a tree.
	Tree
	// Hypercube is the branch-and-bound search seeded with hypercube symmetries.
	Hypercube
)

var algorithmNames = [...]string{"general", "tree", "hypercube"}

// String returns "general", "tree" or "hypercube".
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name (case-insensitive, "cube" accepted) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "general", "":
		return General, nil
	case "tree":
		return Tree, nil
	case "hypercube", "cube":
		return Hypercube, nil
	}

	return General, fmt.Errorf("leafmap: unknown algorithm %q: %w", name, ErrOptionViolation)
}

// Stats describes the work done by a search.
type Stats struct {
	Nodes     int64 // explored search nodes
	Pruned    int64 // nodes cut by the leaf potential
	Terminals int64 // nodes whose subtree cannot grow
	Phases    int   // independent searches run (one per hypercube pode)
	Elapsed   time.Duration
}

// Result is a computed leaf function with its witnesses.
type Result struct {
	Algorithm Algorithm
	Strategy  subtree.Strategy
	Stats     Stats

	// MaxWitnesses is the per-size witness cap the search ran with; 0 means
	// every fully leafed subtree found was kept.
	MaxWitnesses int

	leafMap   LeafMap
	witnesses Witnesses
}

// Order returns the number of vertices of the solved graph.
func (r *Result) Order() int { return len(r.leafMap) - 1 }

// LeafMap returns a copy of the leaf function.
func (r *Result) LeafMap() LeafMap {
	return append(LeafMap(nil), r.leafMap...)
}

// FullyLeafedSubtrees returns the witnesses for size, or nil when size is out
// of range or has none.
func (r *Result) FullyLeafedSubtrees(size int) [][]string {
	if size < 0 || size >= len(r.witnesses) {
		return nil
	}

	return r.witnesses[size]
}

// Witnesses returns the witnesses for every size.
func (r *Result) Witnesses() Witnesses { return r.witnesses }

// options is the resolved configuration of Solve and Classify.
type options struct {
	algorithm    Algorithm
	strategy     subtree.Strategy
	maxWitnesses int
	parallelism  int
	logger       *log.Logger
	err          error
}

// Option configures Solve and Classify.
type Option func(*options)

func defaultOptions() options {
	return options{
		algorithm:   General,
		strategy:    subtree.Dist,
		parallelism: 4,
		logger:      log.Default(),
	}
}

func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithAlgorithm selects the algorithm (default General).
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		if a > Hypercube {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, a)
			return
		}
		o.algorithm = a
	}
}

// WithStrategy selects the leaf-potential estimator of the branch-and-bound
// algorithms (default subtree.Dist).
func WithStrategy(s subtree.Strategy) Option {
	return func(o *options) {
		if s != subtree.Dist && s != subtree.Naive {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.strategy = s
	}
}

// WithMaxWitnesses keeps at most k witnesses per size; 0 keeps all.
func WithMaxWitnesses(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: max witnesses must be ≥ 0, got %d", ErrOptionViolation, k)
			return
		}
		o.maxWitnesses = k
	}
}

// WithParallelism bounds the number of graphs Classify solves at once.
func WithParallelism(p int) Option {
	return func(o *options) {
		if p < 1 {
			o.err = fmt.Errorf("%w: parallelism must be ≥ 1, got %d", ErrOptionViolation, p)
			return
		}
		o.parallelism = p
	}
}

// WithLogger sets the logger; nil keeps log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
