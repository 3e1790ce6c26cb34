package leafmap

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Class is a set of graphs sharing one leaf function.
type Class struct {
	LeafMap LeafMap
	Members []int // indices into the classified family, ascending
}

// Classification groups a family of graphs by leaf function.
type Classification struct {
	Classes []Class // in order of first member
}

// NumberOfClasses returns the number of distinct leaf functions.
func (c *Classification) NumberOfClasses() int { return len(c.Classes) }

// AverageClassSize returns the mean number of graphs per class (0 for an
// empty family).
func (c *Classification) AverageClassSize() float64 {
	if len(c.Classes) == 0 {
		return 0
	}
	total := 0
	for _, cl := range c.Classes {
		total += len(cl.Members)
	}

	return float64(total) / float64(len(c.Classes))
}

// Classify solves every graph of family with Solve (at most WithParallelism
// at a time) and groups them by leaf function. The first failure cancels the
// remaining work and is returned.
func Classify(ctx context.Context, family []Graph, opts ...Option) (*Classification, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	maps := make([]LeafMap, len(family))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.parallelism)
	for i, g := range family {
		grp.Go(func() error {
			res, err := Solve(gctx, g, opts...)
			if err != nil {
				return fmt.Errorf("leafmap: classify graph %d: %w", i, err)
			}
			maps[i] = res.LeafMap()
			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	out := &Classification{}
	index := make(map[string]int)
	for i, m := range maps {
		key := m.String()
		k, ok := index[key]
		if !ok {
			k = len(out.Classes)
			index[key] = k
			out.Classes = append(out.Classes, Class{LeafMap: m})
		}
		out.Classes[k].Members = append(out.Classes[k].Members, i)
	}
	o.logger.Debug("family classified", "graphs", len(family), "classes", len(out.Classes))

	return out, nil
}
