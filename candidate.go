package bestfirst

import (
	"github.com/cespare/xxhash"

	"github.com/pdrpinto/bestfirst/internal"
)

// KeyMode selects how a candidate's canonical key is derived from its path.
type KeyMode int

const (
	// KeyStructural length-prefixes every element. It is the default.
	KeyStructural KeyMode = iota
	// KeyLegacy joins the elements with "-". Paths whose elements print
	// with a "-" can collide under this mode.
	KeyLegacy
)

// Candidate is a path through the search space plus its accumulated cost.
// Apart from logical deletion it is not modified after construction.
type Candidate[StateType any] struct {
	path    []StateType
	cost    float64
	key     string
	removed bool
}

// NewCandidate builds a candidate keyed with KeyStructural.
func NewCandidate[StateType any](path []StateType, cost float64) *Candidate[StateType] {
	return NewCandidateWithMode(path, cost, KeyStructural)
}

// NewCandidateWithMode builds a candidate keyed with the given mode.
// The path is not validated.
func NewCandidateWithMode[StateType any](path []StateType, cost float64, mode KeyMode) *Candidate[StateType] {
	candidate := &Candidate[StateType]{path: path, cost: cost}
	if mode == KeyLegacy {
		candidate.key = internal.LegacyKey(path)
	} else {
		candidate.key = internal.StructuralKey(path)
	}
	return candidate
}

// Path returns the states taken so far. Callers must not modify it.
func (candidate *Candidate[StateType]) Path() []StateType { return candidate.path }

// Len is the number of states in the path.
func (candidate *Candidate[StateType]) Len() int { return len(candidate.path) }

// Last returns the final state of the path, if any.
func (candidate *Candidate[StateType]) Last() (StateType, bool) {
	var zero StateType
	if len(candidate.path) == 0 {
		return zero, false
	}
	return candidate.path[len(candidate.path)-1], true
}

// Cost is the accumulated cost from the start.
func (candidate *Candidate[StateType]) Cost() float64 { return candidate.cost }

// Key is the canonical identity used for deduplication.
func (candidate *Candidate[StateType]) Key() string { return candidate.key }

// Removed reports whether the candidate was logically deleted from a frontier.
func (candidate *Candidate[StateType]) Removed() bool { return candidate.removed }

// Hash is a 64-bit fingerprint of the key, for logs and reports.
func (candidate *Candidate[StateType]) Hash() uint64 { return xxhash.Sum64String(candidate.key) }

// Equal compares canonical keys; cost is ignored.
func (candidate *Candidate[StateType]) Equal(other *Candidate[StateType]) bool {
	return candidate.key == other.key
}

// CostLess orders by numeric cost.
func (candidate *Candidate[StateType]) CostLess(other *Candidate[StateType]) bool {
	return candidate.cost < other.cost
}

// LegacyCostLess orders by the decimal string form of the cost, so a cost of
// 10 sorts before a cost of 2. Only used with WithLegacyOrdering.
func (candidate *Candidate[StateType]) LegacyCostLess(other *Candidate[StateType]) bool {
	return internal.FormatCost(candidate.cost) < internal.FormatCost(other.cost)
}

func (candidate *Candidate[StateType]) String() string { return candidate.key }

// successor extends the path by one state. Its cost is set once the search
// knows the successor has not been finalized yet.
func (candidate *Candidate[StateType]) successor(next StateType, mode KeyMode) *Candidate[StateType] {
	return NewCandidateWithMode(internal.AppendCopy(candidate.path, next), 0, mode)
}
