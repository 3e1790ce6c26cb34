// Branch-and-bound search over induced subtrees.
//
// The engine owns one subtree.Configuration and explores it depth first:
// every node branches on a single vertex (include, then exclude), restoring
// the Configuration with UndoLastOperation after each side. A node is expanded
// only if some reachable size i still has best[i] < LeafPotential(i).
//
// Unknown sizes are kept as -1 so that any realized subtree beats them.

package leafmap

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/flis/subtree"
)

const unknown = -1

// bbEngine holds the incumbent leaf map and the current search state.
type bbEngine struct {
	// Current search state
	conf *subtree.Configuration
	n    int

	// Incumbent: best[i] leaves for size i, with witnesses
	best         []int
	witnesses    Witnesses
	maxWitnesses int

	logger *log.Logger
	stats  Stats
}

func newEngine(n int, o options) *bbEngine {
	e := &bbEngine{
		n:            n,
		best:         make([]int, n+1),
		witnesses:    make(Witnesses, n+1),
		maxWitnesses: o.maxWitnesses,
		logger:       o.logger,
	}
	for i := range e.best {
		e.best[i] = unknown
	}
	e.best[0] = 0
	e.witnesses[0] = [][]string{{}}

	return e
}

// seed records a known lower bound, with an optional witness.
func (e *bbEngine) seed(size, leaves int, witness []string) {
	if leaves > e.best[size] {
		e.best[size] = leaves
		e.witnesses[size] = nil
	}
	if witness != nil && leaves == e.best[size] &&
		(e.maxWitnesses == 0 || len(e.witnesses[size]) < e.maxWitnesses) {
		e.witnesses[size] = append(e.witnesses[size], witness)
	}
}

// run explores conf exhaustively with subtree degrees capped at maxDeg.
func (e *bbEngine) run(conf *subtree.Configuration, maxDeg int) error {
	e.conf = conf
	e.stats.Phases++

	return e.explore(maxDeg)
}

// explore is the recursive search step. Any error is a contract violation of
// the Configuration and aborts the whole run.
func (e *bbEngine) explore(maxDeg int) error {
	e.stats.Nodes++
	c := e.conf
	m, l := c.SubtreeSize(), c.SubtreeNumLeaf()

	promising, err := e.promising(m)
	if err != nil {
		return err
	}

	v, ok := c.VertexToAdd()
	if !ok {
		e.stats.Terminals++
		e.record(m, l)
		return nil
	}
	if !promising {
		e.stats.Pruned++
		return nil
	}

	deg, err := c.IncludeVertex(v)
	if err != nil {
		return fmt.Errorf("leafmap: include %q: %w", c.ID(v), err)
	}
	if deg <= maxDeg {
		if err = e.explore(maxDeg); err != nil {
			return err
		}
	}
	if err = c.UndoLastOperation(); err != nil {
		return fmt.Errorf("leafmap: undo include %q: %w", c.ID(v), err)
	}

	if err = c.ExcludeVertex(v); err != nil {
		return fmt.Errorf("leafmap: exclude %q: %w", c.ID(v), err)
	}
	if err = e.explore(maxDeg); err != nil {
		return err
	}
	if err = c.UndoLastOperation(); err != nil {
		return fmt.Errorf("leafmap: undo exclude %q: %w", c.ID(v), err)
	}

	return nil
}

// promising reports whether some size reachable from the current node could
// still beat the incumbent.
func (e *bbEngine) promising(m int) (bool, error) {
	for i := m; i <= e.n-e.conf.NumExcluded(); i++ {
		lp, err := e.conf.LeafPotential(i)
		if err != nil {
			return false, fmt.Errorf("leafmap: leaf potential(%d): %w", i, err)
		}
		if e.best[i] < lp {
			return true, nil
		}
	}

	return false, nil
}

// record compares a terminal subtree against the incumbent for its size.
// Size 0 is seeded and never re-recorded.
func (e *bbEngine) record(m, l int) {
	if m == 0 {
		return
	}
	switch {
	case l > e.best[m]:
		e.best[m] = l
		e.witnesses[m] = [][]string{e.conf.IDs(e.conf.SubtreeVertices())}
		e.logger.Debug("new best", "size", m, "leaves", l,
			"nodes", humanize.Comma(e.stats.Nodes))
	case l == e.best[m]:
		if e.maxWitnesses == 0 || len(e.witnesses[m]) < e.maxWitnesses {
			e.witnesses[m] = append(e.witnesses[m], e.conf.IDs(e.conf.SubtreeVertices()))
		}
	}
}

// result freezes the incumbent into a Result.
func (e *bbEngine) result(a Algorithm, s subtree.Strategy) *Result {
	return &Result{
		Algorithm:    a,
		Strategy:     s,
		Stats:        e.stats,
		MaxWitnesses: e.maxWitnesses,
		leafMap:      FromInts(e.best...),
		witnesses:    e.witnesses,
	}
}
