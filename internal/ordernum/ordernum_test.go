package ordernum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	n := New()

	assert.True(t, strings.HasPrefix(n, "ORD-"), "order number should start with ORD-: %s", n)
	assert.Equal(t, strings.ToUpper(n), n, "order number should be uppercase: %s", n)

	parts := strings.Split(n, "-")
	require.Len(t, parts, 3, "order number should have prefix, timestamp and random parts: %s", n)
	assert.NotEmpty(t, parts[1])
	assert.NotEmpty(t, parts[2])
}

func TestNewDistinctness(t *testing.T) {
	const generations = 1000

	seen := make(map[string]struct{}, generations)
	for i := 0; i < generations; i++ {
		seen[New()] = struct{}{}
	}

	assert.Len(t, seen, generations, "rapidly generated order numbers should all be distinct")
}
