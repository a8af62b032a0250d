package conn_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-fsm/conn"
	"github.com/amp-labs/amp-fsm/fsm"
)

func newEngine(t *testing.T, opts ...fsm.Option) (*fsm.Engine, *fsm.Context) {
	t.Helper()

	table, err := conn.Table()
	require.NoError(t, err)

	mctx := fsm.NewContext().WithLogger(slogt.New(t))

	engine, err := fsm.New(table, mctx, opts...)
	require.NoError(t, err)

	return engine, mctx
}

func TestTable(t *testing.T) {
	t.Parallel()

	table, err := conn.Table()
	require.NoError(t, err)

	assert.Equal(t, "connect", table.Name())
	assert.Equal(t, []fsm.StateKind{
		conn.StateStart, conn.StateConnecting, conn.StateFailed, conn.StateConnected,
	}, table.States())
	assert.Equal(t, []fsm.EventKind{conn.EventSuccess, conn.EventFailure}, table.Events())
	assert.True(t, table.IsTerminal(conn.StateConnected))
	assert.True(t, table.IsTerminal(conn.StateFailed))
}

func TestConnectSucceeds(t *testing.T) {
	t.Parallel()

	var completed []fsm.StateKind

	engine, mctx := newEngine(t, fsm.WithCompletion(func(kind fsm.StateKind) {
		completed = append(completed, kind)
	}))

	// Start self-triggers success, so the machine is already connecting when
	// Start returns.
	require.NoError(t, engine.Start(t.Context(), conn.StateStart, "example.com"))

	current, ok := engine.Current()
	require.True(t, ok)
	assert.Equal(t, conn.StateConnecting, current)

	require.NoError(t, engine.Dispatch(t.Context(), conn.Success(7)))

	current, ok = engine.Current()
	require.True(t, ok)
	assert.Equal(t, conn.StateConnected, current)

	socket, ok := mctx.GetInt(conn.KeySocket)
	require.True(t, ok)
	assert.Equal(t, 7, socket)

	// Completion signals on the next event at the terminal state, once.
	require.NoError(t, engine.Dispatch(t.Context(), conn.Success(8)))
	require.NoError(t, engine.Dispatch(t.Context(), conn.Failure("late")))
	assert.Equal(t, []fsm.StateKind{conn.StateConnected}, completed)

	history := mctx.History()
	require.Len(t, history, 2)
	assert.Equal(t, conn.StateStart, history[0].From)
	assert.Equal(t, conn.StateConnecting, history[0].To)
	assert.Equal(t, conn.StateConnected, history[1].To)
}

func TestConnectFailsWhileConnecting(t *testing.T) {
	t.Parallel()

	engine, mctx := newEngine(t)

	require.NoError(t, engine.Start(t.Context(), conn.StateStart, "example.com"))
	require.NoError(t, engine.Dispatch(t.Context(), conn.Failure("connection refused")))

	current, ok := engine.Current()
	require.True(t, ok)
	assert.Equal(t, conn.StateFailed, current)

	reason, ok := mctx.GetString(conn.KeyReason)
	require.True(t, ok)
	assert.Equal(t, "connection refused", reason)
}

func TestFailedAbsorbsFurtherEvents(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	require.NoError(t, engine.Start(t.Context(), conn.StateStart, "example.com"))
	require.NoError(t, engine.Dispatch(t.Context(), conn.Failure("timeout")))

	// Nothing escapes a terminal state.
	require.NoError(t, engine.Dispatch(t.Context(), conn.Success(9)))
	require.NoError(t, engine.Dispatch(t.Context(), conn.Failure("again")))

	current, ok := engine.Current()
	require.True(t, ok)
	assert.Equal(t, conn.StateFailed, current)
}

func TestConnectedRejectsMissingSocket(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	require.NoError(t, engine.Start(t.Context(), conn.StateStart, "example.com"))

	err := engine.Dispatch(t.Context(), fsm.Event{Kind: conn.EventSuccess})
	require.Error(t, err)

	var terr *fsm.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, conn.StateConnected, terr.To)
}
