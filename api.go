package bestfirst

import (
	"fmt"

	"github.com/rs/zerolog"
)

// GoalTest reports whether a candidate satisfies the stopping criterion.
type GoalTest[StateType any] func(candidate *Candidate[StateType]) bool

// Expander returns the states reachable from the candidate's last state.
type Expander[StateType any] func(candidate *Candidate[StateType]) []StateType

// StepCost returns the cost of moving from current to successor.
// It must be non-negative.
type StepCost[StateType any] func(current, successor *Candidate[StateType]) float64

// Heuristic estimates the remaining cost from a candidate to a goal.
type Heuristic[StateType any] func(candidate *Candidate[StateType]) float64

// Result contains the outcome of a search
type Result[StateType any] struct {
	Candidate     *Candidate[StateType]
	Path          []StateType
	TotalCost     float64
	ExpandedNodes int
	Generated     int
	Discarded     int
	Found         bool
	Truncated     bool
}

// Options defines parameters for the search.
type Options struct {
	Strategy      Strategy
	KeyMode       KeyMode
	Ordering      Ordering
	MaxExpansions int
	Logger        zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrategy selects the priority function.
func WithStrategy(strategy Strategy) Option {
	return func(options *Options) { options.Strategy = strategy }
}

// WithKeyMode selects how canonical keys are derived from paths.
func WithKeyMode(mode KeyMode) Option {
	return func(options *Options) { options.KeyMode = mode }
}

// WithLegacyOrdering breaks priority ties by comparing costs as strings.
func WithLegacyOrdering() Option {
	return func(options *Options) { options.Ordering = OrderingLegacy }
}

// WithMaxExpansions stops the search after n expansions. Zero means unbounded.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger sets the logger used for debug and trace output.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Strategy: StrategyBestFirst,
		KeyMode:  KeyStructural,
		Ordering: OrderingNumeric,
		Logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs the best-first loop until a goal is popped or the frontier is
// exhausted. An exhausted search is reported through Result.Found, not as an
// error; errors are only returned for invalid arguments.
func Search[StateType any](
	initialPath []StateType,
	isGoal GoalTest[StateType],
	expand Expander[StateType],
	stepCost StepCost[StateType],
	heuristic Heuristic[StateType],
	options ...Option,
) (Result[StateType], error) {
	stepper, err := NewStepper(initialPath, isGoal, expand, stepCost, heuristic, options...)
	if err != nil {
		return Result[StateType]{}, err
	}

	for {
		snapshot, err := stepper.Step()
		if err != nil {
			return stepper.Result(), err
		}
		if snapshot.Done {
			break
		}
	}

	result := stepper.Result()
	stepper.logger.Debug().
		Stringer("strategy", stepper.options.Strategy).
		Bool("found", result.Found).
		Bool("truncated", result.Truncated).
		Int("expanded", result.ExpandedNodes).
		Int("generated", result.Generated).
		Int("discarded", result.Discarded).
		Msg("search finished")
	return result, nil
}

// AStar is Search with the priority fixed to cost so far plus heuristic.
func AStar[StateType any](
	initialPath []StateType,
	isGoal GoalTest[StateType],
	expand Expander[StateType],
	stepCost StepCost[StateType],
	heuristic Heuristic[StateType],
	options ...Option,
) (Result[StateType], error) {
	return Search(initialPath, isGoal, expand, stepCost, heuristic, append(options, WithStrategy(StrategyAStar))...)
}

func validate[StateType any](
	isGoal GoalTest[StateType],
	expand Expander[StateType],
	stepCost StepCost[StateType],
	heuristic Heuristic[StateType],
	strategy Strategy,
) error {
	switch {
	case isGoal == nil:
		return fmt.Errorf("%w: goal test", ErrNilCallback)
	case expand == nil:
		return fmt.Errorf("%w: expander", ErrNilCallback)
	case stepCost == nil:
		return fmt.Errorf("%w: step cost", ErrNilCallback)
	case heuristic == nil && strategy.NeedsHeuristic():
		return fmt.Errorf("%w: %s", ErrMissingHeuristic, strategy)
	}
	return nil
}
