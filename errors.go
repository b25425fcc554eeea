package bestfirst

import "errors"

var (
	// ErrEmptyFrontier is returned by PopMin when no live entry is left.
	ErrEmptyFrontier = errors.New("bestfirst: pop from empty frontier")

	// ErrMissingHeuristic is returned when the strategy needs a heuristic
	// and none was supplied.
	ErrMissingHeuristic = errors.New("bestfirst: strategy requires a heuristic")

	// ErrNilCallback is returned when the goal test, expander or step cost is nil.
	ErrNilCallback = errors.New("bestfirst: nil callback")
)
