package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flis/render"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		in     inputFlags
		sf     solveFlags
		size   int
		index  int
		out    string
		layout string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a fully leafed induced subtree",
		Long: `Render solves the graph, picks a fully leafed induced subtree of the given size
and draws the graph with the subtree highlighted. Output ending in .dot is
written as Graphviz source, anything else as SVG. Without --out the DOT source
goes to stdout.`,
		Example: `  flis render --family petersen --size 6 --out petersen6.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, name, err := in.load(cmd)
			if err != nil {
				return err
			}
			c, err := a.compute(cmd, &sf, g, name)
			if err != nil {
				return err
			}

			lm := c.rec.LeafMap
			if size < 0 || size >= len(lm) || !lm[size].OK {
				return fmt.Errorf("%s has no induced subtree with %d vertices", name, size)
			}
			if size >= len(c.rec.Witnesses) || index < 0 || index >= len(c.rec.Witnesses[size]) {
				return fmt.Errorf("%s: witness %d of size %d not available", name, index, size)
			}

			conf, err := render.Subtree(g, c.rec.Witnesses[size][index])
			if err != nil {
				return err
			}
			opts := render.Options{
				Title:  fmt.Sprintf("%s: %d vertices, %d leaves", name, size, lm[size].N),
				Layout: graphviz.Layout(layout),
			}
			dot := render.DOT(conf, opts)

			switch {
			case out == "":
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			case strings.EqualFold(filepath.Ext(out), ".dot"):
				return errors.Wrap(os.WriteFile(out, []byte(dot), 0o644), "write DOT")
			}

			svg, err := render.SVG(cmd.Context(), dot, opts)
			if err != nil {
				return err
			}
			if err = os.WriteFile(out, svg, 0o644); err != nil {
				return errors.Wrap(err, "write SVG")
			}
			loggerFromContext(cmd.Context()).Info("Wrote " + out)

			return nil
		},
	}

	in.register(cmd)
	sf.register(cmd)
	cmd.Flags().IntVar(&size, "size", -1, "subtree size to draw")
	cmd.Flags().IntVar(&index, "index", 0, "which witness of that size")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.svg or .dot)")
	cmd.Flags().StringVar(&layout, "layout", "", "Graphviz layout engine (default neato)")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}
