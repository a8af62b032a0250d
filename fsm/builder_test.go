package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTransitions declares a small complete machine: two working states with
// full event coverage and two terminal states.
func testTransitions() []Transition {
	return []Transition{
		{From: "idle", On: "go", To: "running"},
		{From: "idle", On: "fail", To: "broken"},
		{From: "idle", On: "finish", To: "idle"},
		{From: "running", On: "finish", To: "done"},
		{From: "running", On: "go", To: "running"},
		{From: "running", On: "fail", To: "broken"},
	}
}

func registerAll(b *Builder, kinds ...StateKind) *Builder {
	for _, kind := range kinds {
		b.Register(kind, staticFactory(kind))
	}

	return b
}

func testBuilder() *Builder {
	b := NewBuilder("test").
		Transitions(testTransitions()...).
		Terminal("done", "broken")

	return registerAll(b, "idle", "running", "done", "broken")
}

func TestBuildSuccess(t *testing.T) {
	t.Parallel()

	table, err := testBuilder().Build()
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, "test", table.Name())
	assert.Len(t, table.Transitions(), 6)

	// Derived kind sets preserve first-occurrence order.
	assert.Equal(t, []StateKind{"idle", "running", "broken", "done"}, table.States())
	assert.Equal(t, []EventKind{"go", "fail", "finish"}, table.Events())
	assert.Equal(t, []StateKind{"done", "broken"}, table.TerminalStates())

	assert.True(t, table.HasState("running"))
	assert.False(t, table.HasState("missing"))
	assert.True(t, table.IsTerminal("broken"))
	assert.False(t, table.IsTerminal("idle"))
}

func TestBuildNameRequired(t *testing.T) {
	t.Parallel()

	table, err := NewBuilder("").
		Transition("a", "e", "b").
		Build()

	require.ErrorIs(t, err, ErrNameRequired)
	assert.Nil(t, table)
}

func TestBuildEmptyTable(t *testing.T) {
	t.Parallel()

	table, err := NewBuilder("empty").Build()

	require.ErrorIs(t, err, ErrEmptyTable)
	assert.Nil(t, table)
}

func TestBuildIncompleteTable(t *testing.T) {
	t.Parallel()

	// "running" has no rule for "fail"; the gate must refuse the whole table
	// and name the offending pair.
	b := NewBuilder("gapped").
		Transition("idle", "go", "running").
		Transition("idle", "fail", "broken").
		Transition("running", "go", "running").
		Terminal("broken")
	registerAll(b, "idle", "running", "broken")

	table, err := b.Build()

	require.ErrorIs(t, err, ErrIncompleteTable)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), `state "running"`)
	assert.Contains(t, err.Error(), `event "fail"`)
}

func TestBuildReportsEveryGap(t *testing.T) {
	t.Parallel()

	b := NewBuilder("gapped").
		Transition("a", "x", "b").
		Transition("b", "y", "a")
	registerAll(b, "a", "b")

	_, err := b.Build()
	require.ErrorIs(t, err, ErrIncompleteTable)

	// a misses y, b misses x; both gaps are in one error.
	assert.Contains(t, err.Error(), `state "a" has no transition for event "y"`)
	assert.Contains(t, err.Error(), `state "b" has no transition for event "x"`)
}

func TestBuildUnknownTerminal(t *testing.T) {
	t.Parallel()

	table, err := testBuilder().
		Terminal("phantom").
		Build()

	require.ErrorIs(t, err, ErrUnknownState)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), `"phantom"`)
}

func TestBuildMissingFactory(t *testing.T) {
	t.Parallel()

	b := NewBuilder("test").
		Transitions(testTransitions()...).
		Terminal("done", "broken")
	registerAll(b, "idle", "running", "done")

	table, err := b.Build()

	require.ErrorIs(t, err, ErrNoFactory)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestBuildStrictRejectsDuplicates(t *testing.T) {
	t.Parallel()

	b := NewBuilder("dup").
		Transition("a", "x", "b").
		Transition("a", "x", "a").
		Terminal("b").
		Strict()
	registerAll(b, "a", "b")

	table, err := b.Build()

	require.ErrorIs(t, err, ErrDuplicateTransition)
	assert.Nil(t, table)
}

func TestBuildPermissiveAllowsDuplicates(t *testing.T) {
	t.Parallel()

	b := NewBuilder("dup").
		Transition("a", "x", "b").
		Transition("a", "x", "a").
		Terminal("b")
	registerAll(b, "a", "b")

	table, err := b.Build()
	require.NoError(t, err)

	// First declared wins.
	index, found := table.Match("a", "x")
	require.True(t, found)
	assert.Equal(t, 0, index)
}

func TestTableTransitionsIsACopy(t *testing.T) {
	t.Parallel()

	table, err := testBuilder().Build()
	require.NoError(t, err)

	got := table.Transitions()
	got[0] = Transition{From: "mutated", On: "mutated", To: "mutated"}

	assert.Equal(t, Transition{From: "idle", On: "go", To: "running"}, table.TransitionAt(0))
}
