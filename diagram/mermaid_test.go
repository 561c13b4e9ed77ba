package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMermaidLassoWithPrefixAndCycle(t *testing.T) {
	var buf strings.Builder
	prefix := []string{"closed", "locked"}
	cycle := []string{"locked", "closed"}

	err := WriteMermaidLasso(prefix, cycle, func(s string) string { return s }, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	assert.Contains(t, out, "[*] --> closed")
	assert.Contains(t, out, "closed --> locked")
	assert.Contains(t, out, "locked --> closed")
}

func TestWriteMermaidLassoSelfLoop(t *testing.T) {
	var buf strings.Builder
	err := WriteMermaidLasso[string](nil, []string{"stuck"}, func(s string) string { return s }, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stuck --> stuck")
}

func TestWriteMermaidLassoRequiresNonEmptyCycle(t *testing.T) {
	var buf strings.Builder
	err := WriteMermaidLasso[string](nil, nil, func(s string) string { return s }, &buf)
	assert.Error(t, err)
}

func TestWriteMermaidLassoDedupesEdges(t *testing.T) {
	var buf strings.Builder
	cycle := []string{"a", "b", "a", "b"}
	err := WriteMermaidLasso[string](nil, cycle, func(s string) string { return s }, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "a --> b"))
}
