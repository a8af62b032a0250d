package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFirstDeclaredWins(t *testing.T) {
	t.Parallel()

	m := newMatcher([]Transition{
		{From: "a", On: "x", To: "b"},
		{From: "a", On: "y", To: "c"},
		{From: "a", On: "x", To: "c"},
	})

	index, found := m.Match("a", "x").Get()
	require.True(t, found)
	assert.Equal(t, 0, index)

	index, found = m.Match("a", "y").Get()
	require.True(t, found)
	assert.Equal(t, 1, index)
}

func TestMatchNotFound(t *testing.T) {
	t.Parallel()

	m := newMatcher([]Transition{
		{From: "a", On: "x", To: "b"},
	})

	assert.True(t, m.Match("a", "z").Empty())
	assert.True(t, m.Match("b", "x").Empty())
}

func TestMatchMemoizes(t *testing.T) {
	t.Parallel()

	m := newMatcher([]Transition{
		{From: "a", On: "x", To: "b"},
	})

	first := m.Match("a", "x")
	miss := m.Match("a", "z")

	m.mu.RLock()
	cached := len(m.cache)
	m.mu.RUnlock()

	// Both the hit and the miss are cached.
	assert.Equal(t, 2, cached)

	assert.Equal(t, first, m.Match("a", "x"))
	assert.Equal(t, miss, m.Match("a", "z"))
}
