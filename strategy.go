package bestfirst

import (
	"fmt"
	"strings"
)

// Strategy selects the priority assigned to every successor.
type Strategy int

const (
	// StrategyBestFirst gives every candidate priority 0, so the frontier
	// falls back to its tie-breaks: cheaper first, then insertion order.
	StrategyBestFirst Strategy = iota
	// StrategyUniformCost uses the cost so far.
	StrategyUniformCost
	// StrategyAStar uses cost so far plus the heuristic estimate.
	StrategyAStar
	// StrategyGreedy uses the heuristic estimate alone.
	StrategyGreedy
	// StrategyBreadthFirst uses the path length.
	StrategyBreadthFirst
	// StrategyDepthFirst uses the negated path length.
	StrategyDepthFirst
)

var strategyNames = map[Strategy]string{
	StrategyBestFirst:    "best-first",
	StrategyUniformCost:  "uniform-cost",
	StrategyAStar:        "astar",
	StrategyGreedy:       "greedy",
	StrategyBreadthFirst: "breadth-first",
	StrategyDepthFirst:   "depth-first",
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyBestFirst,
		StrategyUniformCost,
		StrategyAStar,
		StrategyGreedy,
		StrategyBreadthFirst,
		StrategyDepthFirst,
	}
}

func (strategy Strategy) String() string {
	if name, ok := strategyNames[strategy]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(strategy))
}

// ParseStrategy maps a strategy name (as printed by String) back to its value.
// "a*" and "ucs" are accepted as aliases.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "a*":
		return StrategyAStar, nil
	case "ucs":
		return StrategyUniformCost, nil
	}
	for strategy, strategyName := range strategyNames {
		if strategyName == normalized {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("bestfirst: unknown strategy %q", name)
}

// NeedsHeuristic reports whether the strategy reads the heuristic.
func (strategy Strategy) NeedsHeuristic() bool {
	return strategy == StrategyAStar || strategy == StrategyGreedy
}

func priorityFunc[StateType any](strategy Strategy, heuristic Heuristic[StateType]) func(*Candidate[StateType]) float64 {
	switch strategy {
	case StrategyUniformCost:
		return func(candidate *Candidate[StateType]) float64 { return candidate.Cost() }
	case StrategyAStar:
		return func(candidate *Candidate[StateType]) float64 { return candidate.Cost() + heuristic(candidate) }
	case StrategyGreedy:
		return func(candidate *Candidate[StateType]) float64 { return heuristic(candidate) }
	case StrategyBreadthFirst:
		return func(candidate *Candidate[StateType]) float64 { return float64(candidate.Len()) }
	case StrategyDepthFirst:
		return func(candidate *Candidate[StateType]) float64 { return -float64(candidate.Len()) }
	default:
		return func(*Candidate[StateType]) float64 { return 0 }
	}
}
