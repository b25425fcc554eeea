package bestfirst

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierKeepsMinimalPriority(t *testing.T) {
	frontier := NewFrontier[string](OrderingNumeric)
	for _, priority := range []float64{5, 3, 7, 1, 4} {
		frontier.Add(NewCandidate([]string{"a", "b"}, 0), priority)
	}

	assert.Equal(t, 1, frontier.Len())
	assert.Equal(t, 3, frontier.HeapLen()) // 5, 3, 1 were pushed
	priority, ok := frontier.Priority(NewCandidate([]string{"a", "b"}, 0).Key())
	require.True(t, ok)
	assert.Equal(t, 1.0, priority)

	popped, err := frontier.PopMin()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, popped.Path())
	assert.False(t, popped.Removed())

	_, err = frontier.PopMin()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
	assert.Equal(t, 2, frontier.Discarded())
	assert.Equal(t, 0, frontier.HeapLen())
}

func TestFrontierIdempotentAdd(t *testing.T) {
	frontier := NewFrontier[int](OrderingNumeric)
	candidate := NewCandidate([]int{1}, 2)

	frontier.Add(candidate, 3)
	frontier.Add(candidate, 3)

	assert.Equal(t, 1, frontier.Len())
	assert.Equal(t, 1, frontier.HeapLen())
	popped, err := frontier.PopMin()
	require.NoError(t, err)
	assert.Same(t, candidate, popped)
	assert.Equal(t, 0, frontier.Len())
}

func TestFrontierPopsInPriorityOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	frontier := NewFrontier[int](OrderingNumeric)
	priorities := map[string]float64{}
	for i := 0; i < 300; i++ {
		candidate := NewCandidate([]int{i % 150}, 0)
		priority := float64(rng.Intn(50))
		frontier.Add(candidate, priority)
		if existing, ok := priorities[candidate.Key()]; !ok || priority < existing {
			priorities[candidate.Key()] = priority
		}
	}
	require.Equal(t, 150, frontier.Len())

	last := -1.0
	popped := 0
	for frontier.Len() > 0 {
		candidate, err := frontier.PopMin()
		require.NoError(t, err)
		priority := priorities[candidate.Key()]
		assert.GreaterOrEqual(t, priority, last)
		last = priority
		popped++
	}
	assert.Equal(t, 150, popped)
}

func TestFrontierTieBreaks(t *testing.T) {
	frontier := NewFrontier[string](OrderingNumeric)
	frontier.Add(NewCandidate([]string{"c"}, 3), 1)
	frontier.Add(NewCandidate([]string{"a"}, 1), 1)
	frontier.Add(NewCandidate([]string{"x"}, 2), 1)
	frontier.Add(NewCandidate([]string{"y"}, 2), 1)
	frontier.Add(NewCandidate([]string{"z"}, 9), 0)

	var order []string
	for frontier.Len() > 0 {
		candidate, err := frontier.PopMin()
		require.NoError(t, err)
		order = append(order, candidate.Path()[0])
	}
	assert.Equal(t, []string{"z", "a", "x", "y", "c"}, order)
}

func TestFrontierLegacyOrdering(t *testing.T) {
	numeric := NewFrontier[string](OrderingNumeric)
	legacy := NewFrontier[string](OrderingLegacy)
	for _, frontier := range []*Frontier[string]{numeric, legacy} {
		frontier.Add(NewCandidate([]string{"two"}, 2), 0)
		frontier.Add(NewCandidate([]string{"ten"}, 10), 0)
	}

	first, err := numeric.PopMin()
	require.NoError(t, err)
	assert.Equal(t, 2.0, first.Cost())

	first, err = legacy.PopMin()
	require.NoError(t, err)
	assert.Equal(t, 10.0, first.Cost())
}

func TestFrontierRemove(t *testing.T) {
	frontier := NewFrontier[int](OrderingNumeric)
	removed := NewCandidate([]int{1, 2}, 0)
	frontier.Add(removed, 5)
	frontier.Remove(removed)

	assert.True(t, removed.Removed())
	assert.Equal(t, 0, frontier.Len())
	assert.Equal(t, 1, frontier.HeapLen())

	// removing an absent key is a no-op
	frontier.Remove(NewCandidate([]int{9}, 0))

	replacement := NewCandidate([]int{1, 2}, 0)
	frontier.Add(replacement, 8)
	popped, err := frontier.PopMin()
	require.NoError(t, err)
	assert.Same(t, replacement, popped)
	assert.NotSame(t, removed, popped)

	_, err = frontier.PopMin()
	assert.True(t, errors.Is(err, ErrEmptyFrontier))
	assert.Equal(t, 1, frontier.Discarded())
}

func TestFrontierReAddAfterRemove(t *testing.T) {
	frontier := NewFrontier[int](OrderingNumeric)
	candidate := NewCandidate([]int{3}, 0)
	frontier.Add(candidate, 1)
	frontier.Remove(candidate)
	frontier.Add(candidate, 4)

	assert.False(t, candidate.Removed())
	assert.Equal(t, 1, frontier.Len())
	popped, err := frontier.PopMin()
	require.NoError(t, err)
	assert.Same(t, candidate, popped)

	_, err = frontier.PopMin()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestFrontierEmptyPop(t *testing.T) {
	var list CandidateList[int] = NewFrontier[int](OrderingNumeric)
	candidate, err := list.PopMin()
	assert.Nil(t, candidate)
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}
