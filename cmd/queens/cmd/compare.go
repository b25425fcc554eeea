package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/bestfirst"
)

// Comparison lists, for one strategy, the nodes expanded on boards of
// increasing size starting at FirstSize. -1 marks a board with no solution
// or a search that hit the expansion cap.
type Comparison struct {
	Strategy  string `json:"strategy" yaml:"strategy"`
	FirstSize int    `json:"first_size" yaml:"first_size"`
	Expanded  []int  `json:"expanded" yaml:"expanded"`
}

const compareFirstSize = 4

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Grow the board for every strategy until the expansion budget is spent",
		Example: `  queens compare --budget 1500 --pruned --heuristic remaining`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategies := bestfirst.Strategies()
			comparisons := make([]Comparison, len(strategies))

			var g errgroup.Group
			g.SetLimit(runtime.NumCPU())
			for i, strategy := range strategies {
				i, strategy := i, strategy
				g.Go(func() error {
					comparison, err := compareStrategy(a, strategy)
					if err != nil {
						return err
					}
					comparisons[i] = comparison
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, comparisons, func(w io.Writer) error {
				return writeComparisonsText(w, comparisons)
			})
		},
	}
}

// compareStrategy solves boards of size 4, 5, ... until a search expands at
// least the budget, fails, or the size passes MaxSize.
func compareStrategy(a *app, strategy bestfirst.Strategy) (Comparison, error) {
	cfg := a.cfg
	if cfg.MaxExpansions == 0 || cfg.MaxExpansions > cfg.Budget {
		cfg.MaxExpansions = cfg.Budget
	}
	comparison := Comparison{Strategy: strategy.String(), FirstSize: compareFirstSize}
	for n := compareFirstSize; n <= cfg.MaxSize; n++ {
		report, err := solveBoard(n, strategy, cfg, a.logger)
		if err != nil {
			return Comparison{}, err
		}
		if !report.Found {
			comparison.Expanded = append(comparison.Expanded, -1)
			if report.Truncated {
				break
			}
			continue
		}
		comparison.Expanded = append(comparison.Expanded, report.Expanded)
		if report.Expanded >= cfg.Budget {
			break
		}
	}
	return comparison, nil
}

func writeComparisonsText(w io.Writer, comparisons []Comparison) error {
	for _, comparison := range comparisons {
		counts := lo.Map(comparison.Expanded, func(n int, _ int) string { return fmt.Sprint(n) })
		if _, err := fmt.Fprintf(w, "%-14s n>=%d: %s\n", comparison.Strategy+":", comparison.FirstSize, strings.Join(counts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
