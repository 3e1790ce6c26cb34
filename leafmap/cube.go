// Hypercube specialization.
//
// Q_d is vertex-transitive and every permutation of coordinates is an
// automorphism, so every induced subtree with a vertex of degree k ≥ 3 is
// isomorphic to one containing the base vertex 0^d joined to the first k unit
// vectors. Small sizes are seeded in closed form (stars, snake-in-the-box
// paths), then one branch-and-bound phase per pode degree k = d-1 .. 3 runs
// with subtree degrees capped at k.

package leafmap

import (
	"context"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/flis/subtree"
)

// snakeInTheBox[d] is the number of vertices of the longest induced path of Q_d.
var snakeInTheBox = map[int]int{1: 2, 2: 3, 3: 5, 4: 8, 5: 14, 6: 27, 7: 51, 8: 99}

const maxCubeDimension = 8

// HypercubeDimension returns d if g is the hypercube Q_d with vertices
// labelled by their d-bit coordinates ("0101") and edges joining labels that
// differ in exactly one bit.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnsupportedInput otherwise.
func HypercubeDimension(g Graph) (int, error) {
	if isNil(g) {
		return 0, ErrGraphNil
	}
	s, err := takeSnapshot(g)
	if err != nil {
		return 0, err
	}

	return cubeDimension(s)
}

func cubeDimension(s *snapshot) (int, error) {
	n := s.order()
	if n < 2 || n&(n-1) != 0 {
		return 0, fmt.Errorf("leafmap: %d vertices is not a power of two ≥ 2: %w", n, ErrUnsupportedInput)
	}
	d := bits.Len(uint(n)) - 1

	coord := make([]uint64, n)
	for v, id := range s.ids {
		x, err := strconv.ParseUint(id, 2, 64)
		if len(id) != d || err != nil {
			return 0, fmt.Errorf("leafmap: vertex %q is not a %d-bit label: %w", id, d, ErrUnsupportedInput)
		}
		coord[v] = x
	}
	for v := range s.ids {
		if len(s.adj[v]) != d {
			return 0, fmt.Errorf("leafmap: vertex %q has degree %d, want %d: %w",
				s.ids[v], len(s.adj[v]), d, ErrUnsupportedInput)
		}
		for _, u := range s.adj[v] {
			if bits.OnesCount64(coord[u]^coord[v]) != 1 {
				return 0, fmt.Errorf("leafmap: edge %q-%q is not a one-bit flip: %w",
					s.ids[v], s.ids[u], ErrUnsupportedInput)
			}
		}
	}

	return d, nil
}

// unitVector returns the label with a single 1 at position i (from the left).
func unitVector(d, i int) string {
	return strings.Repeat("0", i) + "1" + strings.Repeat("0", d-i-1)
}

func solveHypercube(ctx context.Context, g Graph, o options) (*Result, error) {
	s, err := takeSnapshot(g)
	if err != nil {
		return nil, err
	}
	d, err := cubeDimension(s)
	if err != nil {
		return nil, err
	}
	if d > maxCubeDimension {
		return nil, fmt.Errorf("leafmap: dimension %d > %d: %w", d, maxCubeDimension, ErrSizeTooLarge)
	}

	base := strings.Repeat("0", d)
	star := make([]string, d)
	for i := range star {
		star[i] = unitVector(d, i)
	}

	n := s.order()
	e := newEngine(n, o)
	e.seed(1, 0, []string{base})
	e.seed(2, 2, []string{base, star[0]})
	for i := 3; i <= d+1; i++ {
		e.seed(i, i-1, append([]string{base}, star[:i-1]...))
	}
	for i := 2; i <= snakeInTheBox[d]; i++ {
		e.seed(i, 2, nil)
	}

	for k := d - 1; k >= 3; k-- {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		conf, perr := podeConfiguration(g, k, o.strategy, base, star)
		if perr != nil {
			return nil, perr
		}
		if err = e.run(conf, k); err != nil {
			return nil, err
		}
		o.logger.Debug("pode explored", "degree", k, "phase", e.stats.Phases)
	}

	for i := d + 1; i <= n; i++ {
		if e.best[i] != 2 || i == 2 || i == 3 {
			continue
		}
		if i == 5 && d == 3 {
			e.witnesses[5] = [][]string{{"000", "100", "110", "111", "011"}}
			continue
		}
		if len(e.witnesses[i]) == 0 {
			o.logger.Warn("no fully leafed subtree example available", "size", i, "dimension", d)
		}
	}

	return e.result(Hypercube, o.strategy), nil
}

// seedStep is one manual operation of a pode seed.
type seedStep struct {
	id      string
	include bool
}

// podeConfiguration includes the base vertex with its first k unit vectors,
// excludes the other unit vectors and hangs 10..01 off the first one.
func podeConfiguration(g Graph, k int, strategy subtree.Strategy, base string, star []string) (*subtree.Configuration, error) {
	conf, err := subtree.New(g, subtree.WithStrategy(strategy), subtree.WithMaxDegree(k))
	if err != nil {
		return nil, fmt.Errorf("leafmap: %w", err)
	}

	steps := []seedStep{{id: base, include: true}}
	for j, id := range star {
		steps = append(steps, seedStep{id: id, include: j < k})
	}
	steps = append(steps, seedStep{id: "1" + strings.Repeat("0", len(star)-2) + "1", include: true})

	for _, st := range steps {
		v, ok := conf.Index(st.id)
		if !ok {
			return nil, fmt.Errorf("leafmap: missing vertex %q: %w", st.id, ErrUnsupportedInput)
		}
		if st.include {
			_, err = conf.IncludeVertex(v)
		} else {
			err = conf.ExcludeVertex(v)
		}
		if err != nil {
			return nil, fmt.Errorf("leafmap: pode %d seed %q: %w", k, st.id, err)
		}
	}

	return conf, nil
}
