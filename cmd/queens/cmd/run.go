package cmd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/config"
	"github.com/pdrpinto/bestfirst/queens"
)

// Report is the printable outcome of one search.
type Report struct {
	N           int             `json:"n" yaml:"n"`
	Strategy    string          `json:"strategy" yaml:"strategy"`
	Found       bool            `json:"found" yaml:"found"`
	Truncated   bool            `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Path        []queens.Square `json:"path,omitempty" yaml:"path,omitempty"`
	Cost        float64         `json:"cost" yaml:"cost"`
	Expanded    int             `json:"expanded" yaml:"expanded"`
	Generated   int             `json:"generated" yaml:"generated"`
	Discarded   int             `json:"discarded" yaml:"discarded"`
	Fingerprint string          `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// solveBoard runs one search on an n x n board. Each call owns its frontier,
// so callers may run several at once.
func solveBoard(n int, strategy bestfirst.Strategy, cfg config.Config, logger zerolog.Logger) (Report, error) {
	board, err := queens.NewBoard(n, cfg.Fixed...)
	if err != nil {
		return Report{}, fmt.Errorf("board %d: %w", n, err)
	}
	heuristic, err := board.Heuristic(cfg.Heuristic)
	if err != nil {
		return Report{}, err
	}
	expand := bestfirst.Expander[queens.Square](board.Expand)
	if cfg.Pruned {
		expand = board.ExpandPromising
	}
	stepCost := bestfirst.StepCost[queens.Square](board.UnitCost)
	if cfg.Penalised {
		stepCost = board.PenalisedCost
	}

	options := append(cfg.SearchOptions(logger.With().Int("n", n).Logger()), bestfirst.WithStrategy(strategy))
	result, err := bestfirst.Search(board.InitialPath(), board.IsGoal, expand, stepCost, heuristic, options...)
	if err != nil {
		return Report{}, fmt.Errorf("board %d: %w", n, err)
	}

	report := Report{
		N:         n,
		Strategy:  strategy.String(),
		Found:     result.Found,
		Truncated: result.Truncated,
		Path:      result.Path,
		Cost:      result.TotalCost,
		Expanded:  result.ExpandedNodes,
		Generated: result.Generated,
		Discarded: result.Discarded,
	}
	if result.Found {
		report.Fingerprint = fmt.Sprintf("%016x", result.Candidate.Hash())
	}
	logger.Info().
		Int("n", n).
		Stringer("strategy", strategy).
		Bool("found", report.Found).
		Int("expanded", report.Expanded).
		Msg("search done")
	return report, nil
}
