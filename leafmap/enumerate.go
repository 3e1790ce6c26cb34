package leafmap

import (
	"fmt"

	"github.com/katalvlaran/flis/subtree"
)

// InducedSubtrees calls yield once for every induced subtree of g, the empty
// one included, as vertex IDs in inclusion order. Enumeration stops early when
// yield returns false.
//
// Each subtree is reached by growing until no border vertex is left, then
// backtracking to the most recent inclusion and excluding that vertex instead.
func InducedSubtrees(g Graph, yield func([]string) bool) error {
	if isNil(g) {
		return ErrGraphNil
	}
	conf, err := subtree.New(g, subtree.WithStrategy(subtree.Naive))
	if err != nil {
		return fmt.Errorf("leafmap: %w", err)
	}

	type step struct {
		v        int
		excluded bool
	}
	var stack []step

	for {
		for v, ok := conf.VertexToAdd(); ok; v, ok = conf.VertexToAdd() {
			if _, err = conf.IncludeVertex(v); err != nil {
				return fmt.Errorf("leafmap: enumerate: %w", err)
			}
			stack = append(stack, step{v: v})
		}
		if !yield(conf.IDs(conf.SubtreeVertices())) {
			return nil
		}

		for len(stack) > 0 && stack[len(stack)-1].excluded {
			if err = conf.UndoLastOperation(); err != nil {
				return fmt.Errorf("leafmap: enumerate: %w", err)
			}
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil
		}

		last := stack[len(stack)-1]
		if err = conf.UndoLastOperation(); err != nil {
			return fmt.Errorf("leafmap: enumerate: %w", err)
		}
		if err = conf.ExcludeVertex(last.v); err != nil {
			return fmt.Errorf("leafmap: enumerate: %w", err)
		}
		stack[len(stack)-1] = step{v: last.v, excluded: true}
	}
}
