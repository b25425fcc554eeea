package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendCopyDoesNotAlias(t *testing.T) {
	base := make([]int, 2, 8)
	base[0], base[1] = 1, 2

	left := AppendCopy(base, 3)
	right := AppendCopy(base, 4)

	assert.Equal(t, []int{1, 2, 3}, left)
	assert.Equal(t, []int{1, 2, 4}, right)
	assert.Equal(t, []int{1, 2}, base)
}

func TestStructuralKeyAvoidsDashCollision(t *testing.T) {
	joined := []string{"a-b"}
	split := []string{"a", "b"}

	assert.Equal(t, LegacyKey(joined), LegacyKey(split))
	assert.NotEqual(t, StructuralKey(joined), StructuralKey(split))
}

func TestStructuralKeyEmptyPath(t *testing.T) {
	assert.Equal(t, "", StructuralKey([]int{}))
	assert.Equal(t, "", LegacyKey([]int{}))
	assert.Equal(t, "1:7", StructuralKey([]int{7}))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "2", FormatCost(2))
	assert.Equal(t, "10", FormatCost(10))
	assert.Equal(t, "1.5", FormatCost(1.5))
	assert.Less(t, FormatCost(10), FormatCost(2))
}
