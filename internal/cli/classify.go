package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flis/leafmap"
)

func (a *app) classifyCommand() *cobra.Command {
	var (
		sf       solveFlags
		families []string
		from, to int
		seed     int64
		jobs     int
	)

	cmd := &cobra.Command{
		Use:   "classify [FILE...]",
		Short: "Group graphs by their leaf function",
		Long: `Classify solves every graph and groups those with identical leaf functions.
Graphs are the edge-list files given as arguments plus, for every --family,
its members with parameter --from through --to.`,
		Example: `  flis classify --family path --family star --from 2 --to 6 --algorithm tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				graphs []leafmap.Graph
				names  []string
			)
			for _, path := range args {
				g, name, err := loadFile(cmd, path)
				if err != nil {
					return err
				}
				graphs, names = append(graphs, g), append(names, name)
			}
			for _, fam := range families {
				for n := from; n <= to; n++ {
					g, err := buildFamily(fam, n, seed)
					if err != nil {
						return err
					}
					graphs, names = append(graphs, g), append(names, familyName(fam, n))
				}
			}
			if len(graphs) == 0 {
				return errors.New("nothing to classify: pass files or --family")
			}

			run, err := a.options(cmd, &sf)
			if err != nil {
				return err
			}
			opts := run.opts
			if cmd.Flags().Changed("jobs") {
				opts = append(opts, leafmap.WithParallelism(jobs))
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			cl, err := leafmap.Classify(cmd.Context(), graphs, opts...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Classified %d graphs", len(graphs)))

			w := cmd.OutOrStdout()
			for _, c := range cl.Classes {
				members := make([]string, len(c.Members))
				for i, m := range c.Members {
					members[i] = names[m]
				}
				fmt.Fprintf(w, "%s: %s\n", c.LeafMap, strings.Join(members, " "))
			}
			fmt.Fprintf(w, "%d graphs, %d classes, average class size %.2f\n",
				len(graphs), cl.NumberOfClasses(), cl.AverageClassSize())

			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().StringArrayVar(&families, "family", nil, "graph family to sweep (repeatable)")
	cmd.Flags().IntVar(&from, "from", 1, "first family parameter")
	cmd.Flags().IntVar(&to, "to", 6, "last family parameter")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random family")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "graphs solved in parallel")

	return cmd
}
