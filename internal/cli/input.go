package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flis/builder"
	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/graphio"
)

// inputFlags selects the graph a command works on.
type inputFlags struct {
	family string
	n      int
	file   string
	seed   int64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.family, "family", "", "graph family: cycle, path, star, wheel, complete, hypercube, balanced-binary, petersen, random")
	cmd.Flags().IntVar(&f.n, "n", 0, "family parameter (vertices, or dimension/height)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "edge-list file ('-' for stdin)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for the random family")
	cmd.MarkFlagsMutuallyExclusive("family", "file")
}

// load builds the selected graph and a short name for log lines.
func (f *inputFlags) load(cmd *cobra.Command) (*core.Graph, string, error) {
	switch {
	case f.file != "":
		return loadFile(cmd, f.file)
	case f.family != "":
		g, err := buildFamily(f.family, f.n, f.seed)
		return g, familyName(f.family, f.n), err
	}

	return nil, "", errors.New("one of --family or --file is required")
}

func buildFamily(name string, n int, seed int64) (*core.Graph, error) {
	ctor, err := builder.Family(name, n)
	if err != nil {
		return nil, err
	}

	// n is the order for most families and a lower bound for the rest.
	return builder.BuildGraph([]core.GraphOption{core.WithCapacity(n)},
		[]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
}

func familyName(name string, n int) string {
	if name == "petersen" {
		return name
	}
	return fmt.Sprintf("%s(%d)", name, n)
}

func loadFile(cmd *cobra.Command, path string) (*core.Graph, string, error) {
	if path == "-" {
		g, err := graphio.Parse(cmd.InOrStdin())
		return g, "stdin", errors.Wrap(err, "stdin")
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "open graph")
	}
	defer fh.Close()

	g, err := graphio.Parse(fh)
	if err != nil {
		return nil, "", errors.Wrap(err, path)
	}

	return g, filepath.Base(path), nil
}
