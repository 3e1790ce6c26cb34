package leafmap

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/flis/subtree"
)

// Solve computes the leaf function of g and its fully leafed induced
// subtrees with the selected algorithm.
//
// ctx is checked before the computation and between independent search
// phases; a single branch-and-bound phase always runs to completion.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrOptionViolation for invalid options.
//   - ErrUnsupportedInput when g does not fit the algorithm.
//   - ErrSizeTooLarge for hypercubes of dimension > 8.
//   - ctx.Err() on cancellation.
func Solve(ctx context.Context, g Graph, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var res *Result
	switch o.algorithm {
	case Tree:
		res, err = solveTree(ctx, g)
	case Hypercube:
		res, err = solveHypercube(ctx, g, o)
	default:
		res, err = solveGeneral(g, o)
	}
	if err != nil {
		return nil, err
	}
	res.Stats.Elapsed = time.Since(start)

	o.logger.Debug("leaf map computed",
		"algorithm", res.Algorithm,
		"vertices", g.VertexCount(),
		"nodes", humanize.Comma(res.Stats.Nodes),
		"pruned", humanize.Comma(res.Stats.Pruned),
		"elapsed", res.Stats.Elapsed.Round(time.Microsecond))

	return res, nil
}

func solveGeneral(g Graph, o options) (*Result, error) {
	conf, err := subtree.New(g, subtree.WithStrategy(o.strategy))
	if err != nil {
		return nil, fmt.Errorf("leafmap: %w", err)
	}

	e := newEngine(conf.Order(), o)
	if err = e.run(conf, conf.Order()); err != nil {
		return nil, err
	}

	return e.result(General, o.strategy), nil
}

func solveTree(ctx context.Context, g Graph) (*Result, error) {
	lm, w, err := treeLeafMap(ctx, g)
	if err != nil {
		return nil, err
	}

	return &Result{Algorithm: Tree, Strategy: subtree.Dist, leafMap: lm, witnesses: w}, nil
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
