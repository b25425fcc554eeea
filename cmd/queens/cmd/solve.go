package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve one board per configured size",
		Example: `  queens solve --sizes 4,6,8 --strategy astar --heuristic remaining
  queens solve --sizes 5 --fixed 0:3,2:4 --pruned --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := make([]Report, len(a.cfg.Sizes))
			var g errgroup.Group
			for i, n := range a.cfg.Sizes {
				i, n := i, n
				g.Go(func() error {
					report, err := solveBoard(n, a.cfg.Strategy, a.cfg, a.logger)
					if err != nil {
						return err
					}
					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, reports, func(w io.Writer) error {
				return writeReportsText(w, reports)
			})
		},
	}
}
