// Package conn is a small reference machine modeling a socket connection
// attempt. It exists to exercise the engine end to end: a start state that
// immediately self-triggers, an intermediate state awaiting the outcome, and
// two terminal states, one of which absorbs failures as ordinary events.
package conn

import "github.com/amp-labs/amp-fsm/fsm"

// State kinds of the connect machine.
const (
	StateStart      fsm.StateKind = "start"
	StateConnecting fsm.StateKind = "connecting"
	StateConnected  fsm.StateKind = "connected"
	StateFailed     fsm.StateKind = "failed"
)

// Event kinds of the connect machine. Failures travel the same channel as
// successes; there is no separate error path.
const (
	EventSuccess fsm.EventKind = "success"
	EventFailure fsm.EventKind = "failure"
)

// Context keys written by the terminal states.
const (
	KeySocket = "socket"
	KeyReason = "reason"
)

// Success builds a success event carrying the connected socket descriptor.
func Success(socket int) fsm.Event {
	return fsm.Event{Kind: EventSuccess, Payload: socket}
}

// Failure builds a failure event carrying the reason. It is dispatched like
// any other event and routed by the table, never thrown.
func Failure(reason string) fsm.Event {
	return fsm.Event{Kind: EventFailure, Payload: reason}
}
