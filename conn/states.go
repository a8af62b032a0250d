package conn

import (
	"context"

	"github.com/amp-labs/amp-fsm/assert"
	"github.com/amp-labs/amp-fsm/fsm"
)

// startState opens the connection attempt. Its action immediately
// self-triggers a success event; the real outcome arrives later from the
// caller as an external dispatch.
type startState struct {
	mctx *fsm.Context
	host string
}

func newStart(mctx *fsm.Context, args ...any) fsm.State {
	s := &startState{mctx: mctx}

	if len(args) > 0 {
		if host, ok := args[0].(string); ok {
			s.host = host
		}
	}

	return s
}

func (s *startState) Kind() fsm.StateKind {
	return StateStart
}

func (s *startState) Act(_ context.Context, _ fsm.Event, next fsm.Continuation) error {
	s.mctx.Log("Opening connection", "host", s.host)

	return next(fsm.Event{Kind: EventSuccess})
}

// connectingState waits for the outcome of the attempt. It takes no action
// of its own; the next external event decides where the machine goes.
type connectingState struct {
	mctx *fsm.Context
}

func newConnecting(mctx *fsm.Context, _ ...any) fsm.State {
	return &connectingState{mctx: mctx}
}

func (s *connectingState) Kind() fsm.StateKind {
	return StateConnecting
}

func (s *connectingState) Act(_ context.Context, _ fsm.Event, _ fsm.Continuation) error {
	s.mctx.Log("Connecting")

	return nil
}

// connectedState records the socket delivered by the success event.
type connectedState struct {
	mctx *fsm.Context
}

func newConnected(mctx *fsm.Context, _ ...any) fsm.State {
	return &connectedState{mctx: mctx}
}

func (s *connectedState) Kind() fsm.StateKind {
	return StateConnected
}

func (s *connectedState) Act(_ context.Context, event fsm.Event, _ fsm.Continuation) error {
	socket, err := assert.Type[int](event.Payload)
	if err != nil {
		return err
	}

	s.mctx.Set(KeySocket, socket)
	s.mctx.Log("Connection established", "socket", socket)

	return nil
}

// failedState records the failure reason. Failure is a normal terminal
// outcome here, not an error: the action logs and returns nil.
type failedState struct {
	mctx *fsm.Context
}

func newFailed(mctx *fsm.Context, _ ...any) fsm.State {
	return &failedState{mctx: mctx}
}

func (s *failedState) Kind() fsm.StateKind {
	return StateFailed
}

func (s *failedState) Act(_ context.Context, event fsm.Event, _ fsm.Continuation) error {
	reason, _ := event.Payload.(string)

	s.mctx.Set(KeyReason, reason)
	s.mctx.Log("Connection failed", "reason", reason)

	return nil
}
