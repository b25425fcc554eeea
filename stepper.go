package bestfirst

import "github.com/rs/zerolog"

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[StateType any] struct {
	Current      *Candidate[StateType]
	FrontierSize int
	SeenCount    int
	Expanded     int
	Done         bool
	Found        bool
	StepIndex    int
}

// Stepper runs the search one expansion per Step call. Search is a Stepper
// driven to completion.
type Stepper[StateType any] struct {
	isGoal   GoalTest[StateType]
	expand   Expander[StateType]
	stepCost StepCost[StateType]
	priority func(*Candidate[StateType]) float64
	options  Options
	logger   zerolog.Logger

	frontier CandidateList[StateType]
	seen     map[string]float64

	current   *Candidate[StateType]
	goal      *Candidate[StateType]
	stepCount int
	expanded  int
	generated int
	done      bool
	found     bool
	truncated bool
}

// NewStepper validates the callbacks and seeds the frontier with the initial
// path at cost 0.
func NewStepper[StateType any](
	initialPath []StateType,
	isGoal GoalTest[StateType],
	expand Expander[StateType],
	stepCost StepCost[StateType],
	heuristic Heuristic[StateType],
	options ...Option,
) (*Stepper[StateType], error) {
	opts := applyOptions(options)
	if err := validate(isGoal, expand, stepCost, heuristic, opts.Strategy); err != nil {
		return nil, err
	}

	s := &Stepper[StateType]{
		isGoal:   isGoal,
		expand:   expand,
		stepCost: stepCost,
		priority: priorityFunc(opts.Strategy, heuristic),
		options:  opts,
		logger:   opts.Logger.With().Str("component", "bestfirst").Logger(),
		frontier: NewFrontier[StateType](opts.Ordering),
		seen:     make(map[string]float64),
	}
	s.frontier.Add(NewCandidateWithMode(initialPath, 0, opts.KeyMode), 0)

	s.logger.Debug().
		Stringer("strategy", opts.Strategy).
		Int("start_len", len(initialPath)).
		Int("max_expansions", opts.MaxExpansions).
		Msg("search started")
	return s, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper[StateType]) Step() (StepSnapshot[StateType], error) {
	if s.done {
		return s.snapshot(), nil
	}
	if s.options.MaxExpansions > 0 && s.expanded >= s.options.MaxExpansions {
		s.done = true
		s.truncated = true
		return s.snapshot(), nil
	}
	if s.frontier.Len() == 0 {
		s.done = true
		return s.snapshot(), nil
	}

	current, err := s.frontier.PopMin()
	if err != nil {
		s.done = true
		return s.snapshot(), err
	}
	s.stepCount++
	s.current = current
	s.seen[current.Key()] = current.Cost()
	s.expanded++

	if s.isGoal(current) {
		s.done = true
		s.found = true
		s.goal = current
		return s.snapshot(), nil
	}

	offered := 0
	for _, next := range s.expand(current) {
		successor := current.successor(next, s.options.KeyMode)
		if _, finalized := s.seen[successor.Key()]; finalized {
			continue
		}
		successor.cost = current.Cost() + s.stepCost(current, successor)
		s.frontier.Add(successor, s.priority(successor))
		offered++
	}
	s.generated += offered

	s.logger.Trace().
		Uint64("candidate", current.Hash()).
		Int("depth", current.Len()).
		Float64("cost", current.Cost()).
		Int("offered", offered).
		Int("frontier", s.frontier.Len()).
		Msg("expanded")
	return s.snapshot(), nil
}

// Done reports whether the search has terminated.
func (s *Stepper[StateType]) Done() bool { return s.done }

// Result returns the outcome so far. Found is only true after a goal was popped.
func (s *Stepper[StateType]) Result() Result[StateType] {
	result := Result[StateType]{
		ExpandedNodes: s.expanded,
		Generated:     s.generated,
		Discarded:     s.discarded(),
		Found:         s.found,
		Truncated:     s.truncated,
	}
	if s.goal != nil {
		result.Candidate = s.goal
		result.Path = s.goal.Path()
		result.TotalCost = s.goal.Cost()
	}
	return result
}

func (s *Stepper[StateType]) snapshot() StepSnapshot[StateType] {
	return StepSnapshot[StateType]{
		Current:      s.current,
		FrontierSize: s.frontier.Len(),
		SeenCount:    len(s.seen),
		Expanded:     s.expanded,
		Done:         s.done,
		Found:        s.found,
		StepIndex:    s.stepCount,
	}
}

func (s *Stepper[StateType]) discarded() int {
	if counter, ok := s.frontier.(interface{ Discarded() int }); ok {
		return counter.Discarded()
	}
	return 0
}
