package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flis/leafmap"
)

func (a *app) enumerateCommand() *cobra.Command {
	var (
		in    inputFlags
		size  int
		limit int
		count bool
	)

	cmd := &cobra.Command{
		Use:     "enumerate",
		Short:   "List the induced subtrees of a graph",
		Example: `  flis enumerate --family cycle --n 5 --size 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, name, err := in.load(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			prog := newProgress(loggerFromContext(cmd.Context()))
			var n int64
			err = leafmap.InducedSubtrees(g, func(ids []string) bool {
				if size >= 0 && len(ids) != size {
					return true
				}
				n++
				if !count {
					fmt.Fprintln(w, ids)
				}
				return limit <= 0 || n < int64(limit)
			})
			if err != nil {
				return err
			}
			if count {
				fmt.Fprintln(w, n)
			}
			prog.done(fmt.Sprintf("Enumerated %s induced subtrees of %s", humanize.Comma(n), name))

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&size, "size", -1, "only subtrees with this many vertices")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many subtrees (0 = all)")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the number of subtrees")

	return cmd
}
