package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flis/bfs"
	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/leafmap"
	"github.com/katalvlaran/flis/store"
	"github.com/katalvlaran/flis/subtree"
)

// solveFlags are shared by the commands that compute leaf maps.
type solveFlags struct {
	algorithm    string
	strategy     string
	maxWitnesses int
	store        string
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "general", "general, tree or hypercube")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "dist", "leaf potential: dist or naive")
	cmd.Flags().IntVar(&f.maxWitnesses, "max-witnesses", 0, "witnesses kept per size (0 keeps all)")
	cmd.Flags().StringVar(&f.store, "store", "", "directory of a result catalog to read and update")
}

// solveRun is a resolved solver configuration.
type solveRun struct {
	algo         leafmap.Algorithm
	maxWitnesses int
	opts         []leafmap.Option
}

// options resolves flags against the config file.
func (a *app) options(cmd *cobra.Command, f *solveFlags) (solveRun, error) {
	algo, err := leafmap.ParseAlgorithm(pickString(cmd, "algorithm", f.algorithm, a.cfg.Algorithm))
	if err != nil {
		return solveRun{}, err
	}
	strategy, err := subtree.ParseStrategy(pickString(cmd, "strategy", f.strategy, a.cfg.Strategy))
	if err != nil {
		return solveRun{}, err
	}

	run := solveRun{
		algo:         algo,
		maxWitnesses: pickInt(cmd, "max-witnesses", f.maxWitnesses, a.cfg.MaxWitnesses),
	}
	run.opts = []leafmap.Option{
		leafmap.WithAlgorithm(algo),
		leafmap.WithStrategy(strategy),
		leafmap.WithMaxWitnesses(run.maxWitnesses),
		leafmap.WithLogger(loggerFromContext(cmd.Context())),
	}
	if a.cfg.Parallelism > 0 {
		run.opts = append(run.opts, leafmap.WithParallelism(a.cfg.Parallelism))
	}

	return run, nil
}

// computed is a leaf map from the solver or the catalog.
type computed struct {
	rec    store.Record
	cached bool
}

// compute solves g, going through the catalog when one is configured. A
// stored record whose witness cap is tighter than the requested one is
// recomputed and replaced.
func (a *app) compute(cmd *cobra.Command, f *solveFlags, g *core.Graph, name string) (computed, error) {
	logger := loggerFromContext(cmd.Context())
	run, err := a.options(cmd, f)
	if err != nil {
		return computed{}, err
	}

	var db *store.Store
	if dir := pickString(cmd, "store", f.store, a.cfg.Store); dir != "" {
		if dir, err = expandHome(dir); err != nil {
			return computed{}, err
		}
		if db, err = store.Open(dir, store.WithLogger(logger)); err != nil {
			return computed{}, err
		}
		defer db.Close()

		rec, err := db.Get(g, run.algo)
		switch {
		case err == nil && rec.Covers(run.maxWitnesses):
			logger.Debug("catalog hit", "graph", name, "run", rec.RunID)
			return computed{rec: rec.Limit(run.maxWitnesses), cached: true}, nil
		case err == nil:
			logger.Debug("catalog record capped, solving again", "graph", name,
				"stored", rec.MaxWitnesses, "requested", run.maxWitnesses)
		case !errors.Is(err, store.ErrNotFound):
			return computed{}, err
		}
	}

	prog := newProgress(logger)
	res, err := leafmap.Solve(cmd.Context(), g, run.opts...)
	if err != nil {
		return computed{}, err
	}
	prog.done(fmt.Sprintf("Solved %s: %s search nodes", name, humanize.Comma(res.Stats.Nodes)))

	rec := store.NewRecord(res)
	if db != nil {
		if err = db.Put(g, rec); err != nil {
			return computed{}, err
		}
	}

	return computed{rec: rec}, nil
}

func (a *app) solveCommand() *cobra.Command {
	var (
		in        inputFlags
		sf        solveFlags
		witnesses bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the leaf function of a graph",
		Example: `  flis solve --family petersen
  flis solve --family hypercube --n 4 --algorithm hypercube --witnesses
  flis solve --file graph.txt --store ~/.cache/flis`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, name, err := in.load(cmd)
			if err != nil {
				return err
			}
			c, err := a.compute(cmd, &sf, g, name)
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), g, len(comps), c, witnesses)
			return nil
		},
	}

	in.register(cmd)
	sf.register(cmd)
	cmd.Flags().BoolVarP(&witnesses, "witnesses", "w", false, "print the fully leafed subtrees")

	return cmd
}

func printResult(w io.Writer, g *core.Graph, components int, c computed, witnesses bool) {
	src := c.rec.Strategy
	if c.cached {
		src += ", cached"
	}
	shape := "connected"
	if components != 1 {
		shape = fmt.Sprintf("%d components", components)
	}
	fmt.Fprintf(w, "graph: %d vertices, %d edges, %s\n", g.VertexCount(), g.EdgeCount(), shape)
	fmt.Fprintf(w, "algorithm: %s (%s)\n", c.rec.Algorithm, src)
	fmt.Fprintf(w, "leaf map: %s\n", c.rec.LeafMap)
	if components == 1 && g.EdgeCount() == g.VertexCount()-1 {
		printTreeShape(w, g, c.rec.LeafMap)
	}
	if !witnesses {
		return
	}
	for size, v := range c.rec.LeafMap {
		if !v.OK || size >= len(c.rec.Witnesses) {
			continue
		}
		for _, ids := range c.rec.Witnesses[size] {
			fmt.Fprintf(w, "size %d, %d leaves: %v\n", size, v.N, ids)
		}
	}
}

// printTreeShape describes a tree by its caterpillar depth and the difference
// word of its leaf map.
func printTreeShape(w io.Writer, g *core.Graph, lm leafmap.LeafMap) {
	depth, err := leafmap.CaterpillarDepth(g)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "tree: %d-caterpillar\n", depth)

	word, ok := lm.DifferenceWord()
	if !ok || len(word) == 0 {
		return
	}
	var sb strings.Builder
	for _, d := range word {
		sb.WriteString(strconv.Itoa(d))
	}
	normal := "prefix normal"
	if !leafmap.IsKPrefixNormal(word, 0) {
		normal = "not prefix normal"
	}
	fmt.Fprintf(w, "difference word: %s (%s)\n", sb.String(), normal)
}
