package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// AppendCopy returns a new path holding path followed by next.
// The result never shares a backing array with path.
func AppendCopy[StateType any](path []StateType, next StateType) []StateType {
	extended := make([]StateType, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, next)
}

// StructuralKey encodes each element as "<len>:<text>" with no separator.
// Distinct sequences of distinct string forms never share a key.
func StructuralKey[StateType any](path []StateType) string {
	var builder strings.Builder
	for _, element := range path {
		text := fmt.Sprint(element)
		builder.WriteString(strconv.Itoa(len(text)))
		builder.WriteByte(':')
		builder.WriteString(text)
	}
	return builder.String()
}

// LegacyKey joins the string forms of the elements with "-".
// Elements whose string form contains "-" can collide.
func LegacyKey[StateType any](path []StateType) string {
	parts := make([]string, len(path))
	for i, element := range path {
		parts[i] = fmt.Sprint(element)
	}
	return strings.Join(parts, "-")
}

// FormatCost renders a cost the way the legacy ordering compares it:
// shortest decimal form, so 2 is "2" and 10 is "10".
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
