package bestfirst

import "container/heap"

// CandidateList is the set of candidates awaiting expansion.
type CandidateList[StateType any] interface {
	// Add offers a candidate at the given priority. An existing entry for
	// the same key is only replaced when the new priority is lower.
	Add(candidate *Candidate[StateType], priority float64)
	// Remove logically deletes the live entry for the candidate's key.
	Remove(candidate *Candidate[StateType])
	// PopMin returns the live candidate with the lowest priority.
	PopMin() (*Candidate[StateType], error)
	// Len is the number of live entries.
	Len() int
}

// Ordering selects the candidate tie-break used between equal priorities.
type Ordering int

const (
	// OrderingNumeric compares costs as numbers.
	OrderingNumeric Ordering = iota
	// OrderingLegacy compares costs by their decimal string form.
	OrderingLegacy
)

type PriorityQueueItem[StateType any] struct {
	Priority     float64
	Candidate    *Candidate[StateType]
	Sequence     uint64
	Stale        bool
	IndexInQueue int
}

type PriorityQueue[StateType any] struct {
	items    []*PriorityQueueItem[StateType]
	costLess func(a, b *Candidate[StateType]) bool
}

func (queue *PriorityQueue[StateType]) Len() int { return len(queue.items) }

func (queue *PriorityQueue[StateType]) Less(i, j int) bool {
	a, b := queue.items[i], queue.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if queue.costLess(a.Candidate, b.Candidate) {
		return true
	}
	if queue.costLess(b.Candidate, a.Candidate) {
		return false
	}
	return a.Sequence < b.Sequence
}

func (queue *PriorityQueue[StateType]) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.items[i].IndexInQueue = i
	queue.items[j].IndexInQueue = j
}

func (queue *PriorityQueue[StateType]) Push(x any) {
	item := x.(*PriorityQueueItem[StateType])
	item.IndexInQueue = len(queue.items)
	queue.items = append(queue.items, item)
}

func (queue *PriorityQueue[StateType]) Pop() any {
	oldItems := queue.items
	n := len(oldItems)
	item := oldItems[n-1]
	oldItems[n-1] = nil
	queue.items = oldItems[:n-1]
	item.IndexInQueue = -1
	return item
}

// Frontier is an indexed min-heap. Priority decrease is done by logically
// deleting the old entry and pushing a new one; stale entries stay in the
// heap until they surface in PopMin.
type Frontier[StateType any] struct {
	queue     PriorityQueue[StateType]
	lookup    map[string]*PriorityQueueItem[StateType]
	sequence  uint64
	discarded int
}

var _ CandidateList[int] = (*Frontier[int])(nil)

// NewFrontier returns an empty frontier using the given tie-break ordering.
func NewFrontier[StateType any](ordering Ordering) *Frontier[StateType] {
	costLess := (*Candidate[StateType]).CostLess
	if ordering == OrderingLegacy {
		costLess = (*Candidate[StateType]).LegacyCostLess
	}
	return &Frontier[StateType]{
		queue:  PriorityQueue[StateType]{costLess: costLess},
		lookup: make(map[string]*PriorityQueueItem[StateType]),
	}
}

func (frontier *Frontier[StateType]) Add(candidate *Candidate[StateType], priority float64) {
	if existing, ok := frontier.lookup[candidate.Key()]; ok {
		if existing.Priority <= priority {
			return
		}
		frontier.Remove(candidate)
	}
	item := &PriorityQueueItem[StateType]{
		Priority:  priority,
		Candidate: candidate,
		Sequence:  frontier.sequence,
	}
	frontier.sequence++
	candidate.removed = false
	frontier.lookup[candidate.Key()] = item
	heap.Push(&frontier.queue, item)
}

func (frontier *Frontier[StateType]) Remove(candidate *Candidate[StateType]) {
	item, ok := frontier.lookup[candidate.Key()]
	if !ok {
		return
	}
	delete(frontier.lookup, candidate.Key())
	item.Stale = true
	item.Candidate.removed = true
}

func (frontier *Frontier[StateType]) PopMin() (*Candidate[StateType], error) {
	for frontier.queue.Len() > 0 {
		item := heap.Pop(&frontier.queue).(*PriorityQueueItem[StateType])
		if item.Stale {
			frontier.discarded++
			continue
		}
		delete(frontier.lookup, item.Candidate.Key())
		return item.Candidate, nil
	}
	return nil, ErrEmptyFrontier
}

func (frontier *Frontier[StateType]) Len() int { return len(frontier.lookup) }

// Priority returns the live priority recorded for a key.
func (frontier *Frontier[StateType]) Priority(key string) (float64, bool) {
	item, ok := frontier.lookup[key]
	if !ok {
		return 0, false
	}
	return item.Priority, true
}

// HeapLen counts heap slots, stale entries included.
func (frontier *Frontier[StateType]) HeapLen() int { return frontier.queue.Len() }

// Discarded is the number of stale entries dropped by PopMin so far.
func (frontier *Frontier[StateType]) Discarded() int { return frontier.discarded }
